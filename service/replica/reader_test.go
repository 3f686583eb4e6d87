package replica

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/QuangTung97/user-replica/config"
	"github.com/QuangTung97/user-replica/model"
	"github.com/QuangTung97/user-replica/pkg/cacheclient"
	"github.com/QuangTung97/user-replica/pkg/memtable"
	"github.com/QuangTung97/user-replica/repository"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newContext() context.Context {
	return context.Background()
}

var testNow = time.Date(2022, 5, 10, 10, 0, 0, 0, time.UTC)

type readerTest struct {
	provider *repository.ProviderMock
	repo     *repository.ReplicaMock
	cache    *cacheclient.CacheMock
	pipe     *cacheclient.PipelineMock
	mem      *memtable.MemTable

	reader *Reader
}

func newReaderTest(withRemote bool) *readerTest {
	r := &readerTest{
		provider: &repository.ProviderMock{},
		repo:     &repository.ReplicaMock{},
		cache:    &cacheclient.CacheMock{},
		pipe:     &cacheclient.PipelineMock{},
		mem:      memtable.New(512 * 1024),
	}

	r.provider.ReadonlyFunc = func(ctx context.Context) context.Context {
		return ctx
	}
	r.provider.TransactFunc = func(ctx context.Context, fn func(ctx context.Context) error) error {
		return fn(ctx)
	}
	r.cache.PipelineFunc = func() cacheclient.Pipeline {
		return r.pipe
	}
	r.pipe.FinishFunc = func() {}

	options := []ReaderOption{
		WithLocalCache(r.mem),
		WithClock(func() time.Time { return testNow }),
	}
	if withRemote {
		options = append(options, WithRemoteCache(r.cache))
	}

	r.reader = NewReader(r.provider, r.repo, config.CacheConfig{
		LocalTTLSeconds:    0,
		RemoteTTLSeconds:   3600,
		WaitLeaseDurations: []time.Duration{time.Millisecond, 2 * time.Millisecond},
	}, zap.NewNop(), options...)
	return r
}

func aliceReplica() model.UserReplica {
	return model.UserReplica{
		ID:          42,
		Username:    "alice",
		Email:       "alice@example.com",
		FullName:    sql.NullString{Valid: true, String: "Alice"},
		Role:        "STUDENT",
		IsActive:    true,
		SyncedAt:    testNow,
		SyncVersion: 1,
	}
}

func (r *readerTest) stubDB(result model.NullUserReplica, err error) {
	r.repo.GetReplicaFunc = func(ctx context.Context, id int64) (model.NullUserReplica, error) {
		return result, err
	}
}

func (r *readerTest) stubLeaseGet(outputs ...cacheclient.LeaseGetOutput) {
	r.pipe.LeaseGetFunc = func(key string) func() (cacheclient.LeaseGetOutput, error) {
		index := len(r.pipe.LeaseGetCalls()) - 1
		return func() (cacheclient.LeaseGetOutput, error) {
			return outputs[index], nil
		}
	}
}

func (r *readerTest) stubLeaseSet() {
	r.pipe.LeaseSetFunc = func(key string, value []byte, leaseID uint64, ttl uint32) func() error {
		return func() error { return nil }
	}
}

func TestReader_Get__Without_Remote_Cache__DB_Then_Local(t *testing.T) {
	r := newReaderTest(false)
	r.stubDB(model.NullUserReplica{Valid: true, Replica: aliceReplica()}, nil)

	result, err := r.reader.Get(newContext(), 42)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.NullUserReplica{Valid: true, Replica: aliceReplica()}, result)

	result, err = r.reader.Get(newContext(), 42)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, result.Valid)
	assert.Equal(t, "alice", result.Replica.Username)

	assert.Equal(t, 1, len(r.repo.GetReplicaCalls()))
	assert.Equal(t, 0, len(r.cache.PipelineCalls()))
}

func TestReader_Get__Lease_Granted__Set_Cache(t *testing.T) {
	r := newReaderTest(true)
	r.stubDB(model.NullUserReplica{Valid: true, Replica: aliceReplica()}, nil)
	r.stubLeaseGet(cacheclient.LeaseGetOutput{Type: cacheclient.LeaseGetTypeGranted, LeaseID: 88})
	r.stubLeaseSet()

	result, err := r.reader.Get(newContext(), 42)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, result.Valid)

	assert.Equal(t, "usr:42", r.pipe.LeaseGetCalls()[0].Key)

	sets := r.pipe.LeaseSetCalls()
	assert.Equal(t, 1, len(sets))
	assert.Equal(t, "usr:42", sets[0].Key)
	assert.Equal(t, uint64(88), sets[0].LeaseID)
	assert.Equal(t, uint32(3600), sets[0].Ttl)

	cached, ok := decodeEntry(sets[0].Value)
	assert.Equal(t, true, ok)
	assert.Equal(t, "alice", cached.Replica.Username)

	assert.Equal(t, 1, len(r.pipe.FinishCalls()))
}

func TestReader_Get__Lease_OK__From_Remote_Cache(t *testing.T) {
	r := newReaderTest(true)
	r.stubLeaseGet(cacheclient.LeaseGetOutput{
		Type: cacheclient.LeaseGetTypeOK,
		Data: encodeEntry(model.NullUserReplica{Valid: true, Replica: aliceReplica()}),
	})

	result, err := r.reader.Get(newContext(), 42)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, result.Valid)
	assert.Equal(t, "Alice", result.Replica.FullName.String)
	assert.Equal(t, 0, len(r.repo.GetReplicaCalls()))

	// second call served from the local cache
	_, err = r.reader.Get(newContext(), 42)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(r.pipe.LeaseGetCalls()))
}

func TestReader_Get__Rejected_Then_OK(t *testing.T) {
	r := newReaderTest(true)
	r.stubLeaseGet(
		cacheclient.LeaseGetOutput{Type: cacheclient.LeaseGetTypeRejected},
		cacheclient.LeaseGetOutput{
			Type: cacheclient.LeaseGetTypeOK,
			Data: encodeEntry(model.NullUserReplica{}),
		},
	)

	result, err := r.reader.Get(newContext(), 42)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.NullUserReplica{}, result)
	assert.Equal(t, 2, len(r.pipe.LeaseGetCalls()))
	assert.Equal(t, 0, len(r.repo.GetReplicaCalls()))
}

func TestReader_Get__Rejected_All__Fallback_DB(t *testing.T) {
	r := newReaderTest(true)
	r.stubDB(model.NullUserReplica{Valid: true, Replica: aliceReplica()}, nil)
	rejected := cacheclient.LeaseGetOutput{Type: cacheclient.LeaseGetTypeRejected}
	r.stubLeaseGet(rejected, rejected, rejected)

	result, err := r.reader.Get(newContext(), 42)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, result.Valid)
	assert.Equal(t, 3, len(r.pipe.LeaseGetCalls()))
	assert.Equal(t, 1, len(r.repo.GetReplicaCalls()))
	assert.Equal(t, 0, len(r.pipe.LeaseSetCalls()))
}

func TestReader_Get__Cache_Error__Fallback_DB(t *testing.T) {
	r := newReaderTest(true)
	r.stubDB(model.NullUserReplica{}, nil)
	r.pipe.LeaseGetFunc = func(key string) func() (cacheclient.LeaseGetOutput, error) {
		return func() (cacheclient.LeaseGetOutput, error) {
			return cacheclient.LeaseGetOutput{}, errors.New("memcached down")
		}
	}

	result, err := r.reader.Get(newContext(), 42)
	assert.Equal(t, nil, err)
	assert.Equal(t, false, result.Valid)
	assert.Equal(t, 1, len(r.repo.GetReplicaCalls()))
}

func TestReader_Get__DB_Error(t *testing.T) {
	r := newReaderTest(false)
	r.stubDB(model.NullUserReplica{}, errors.New("db down"))

	_, err := r.reader.Get(newContext(), 42)
	assert.Equal(t, "get replica of user 42: db down", err.Error())
}

func TestReader_GetOrCreate__Existing(t *testing.T) {
	r := newReaderTest(false)
	r.stubDB(model.NullUserReplica{Valid: true, Replica: aliceReplica()}, nil)

	result, err := r.reader.GetOrCreate(newContext(), 42)
	assert.Equal(t, nil, err)
	assert.Equal(t, aliceReplica(), result)
	assert.Equal(t, 0, len(r.repo.InsertPlaceholderCalls()))
}

func TestReader_GetOrCreate__Missing__Insert_Placeholder_And_Invalidate(t *testing.T) {
	r := newReaderTest(true)

	placeholder := model.NewPlaceholderReplica(5, testNow)

	dbCalls := 0
	r.repo.GetReplicaFunc = func(ctx context.Context, id int64) (model.NullUserReplica, error) {
		dbCalls++
		if dbCalls == 1 {
			return model.NullUserReplica{}, nil
		}
		return model.NullUserReplica{Valid: true, Replica: placeholder}, nil
	}
	r.repo.InsertPlaceholderFunc = func(ctx context.Context, replica model.UserReplica) (bool, error) {
		return true, nil
	}
	r.stubLeaseGet(cacheclient.LeaseGetOutput{Type: cacheclient.LeaseGetTypeGranted, LeaseID: 1})
	r.stubLeaseSet()
	r.pipe.DeleteFunc = func(key string) func() error {
		return func() error { return nil }
	}

	result, err := r.reader.GetOrCreate(newContext(), 5)
	assert.Equal(t, nil, err)
	assert.Equal(t, placeholder, result)
	assert.Equal(t, true, result.IsPlaceholder())

	assert.Equal(t, 1, len(r.provider.TransactCalls()))
	assert.Equal(t, placeholder, r.repo.InsertPlaceholderCalls()[0].Replica)
	assert.Equal(t, "usr:5", r.pipe.DeleteCalls()[0].Key)

	_, ok := r.mem.Get("usr:5")
	assert.Equal(t, false, ok)
}

func TestReader_GetOrCreate__Insert_Error(t *testing.T) {
	r := newReaderTest(false)
	r.stubDB(model.NullUserReplica{}, nil)
	r.repo.InsertPlaceholderFunc = func(ctx context.Context, replica model.UserReplica) (bool, error) {
		return false, errors.New("db down")
	}

	_, err := r.reader.GetOrCreate(newContext(), 5)
	assert.Equal(t, "insert placeholder of user 5: db down", err.Error())
}

func TestReader_Invalidate__Both_Levels(t *testing.T) {
	r := newReaderTest(true)
	r.pipe.DeleteFunc = func(key string) func() error {
		return func() error { return errors.New("memcached down") }
	}

	r.mem.Set("usr:42", []byte("data"), 0)
	r.reader.Invalidate(newContext(), 42)

	_, ok := r.mem.Get("usr:42")
	assert.Equal(t, false, ok)
	assert.Equal(t, 1, len(r.pipe.DeleteCalls()))
	assert.Equal(t, 1, len(r.pipe.FinishCalls()))
}
