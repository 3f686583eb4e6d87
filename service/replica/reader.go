package replica

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/QuangTung97/user-replica/config"
	"github.com/QuangTung97/user-replica/model"
	"github.com/QuangTung97/user-replica/pkg/cacheclient"
	"github.com/QuangTung97/user-replica/pkg/memtable"
	"github.com/QuangTung97/user-replica/repository"
	"go.uber.org/zap"
)

//go:generate moq -out replica_mocks.go . IReader

// IReader is the read side of the replica store used by the local business code
type IReader interface {
	Get(ctx context.Context, id int64) (model.NullUserReplica, error)
	GetOrCreate(ctx context.Context, id int64) (model.UserReplica, error)
	Invalidate(ctx context.Context, id int64)
}

// Reader reads through a local cache and a memcached lease before hitting the database
type Reader struct {
	provider    repository.Provider
	replicaRepo repository.Replica

	cache cacheclient.Cache
	mem   *memtable.MemTable
	conf  config.CacheConfig

	now    func() time.Time
	logger *zap.Logger
}

var _ IReader = &Reader{}

// ReaderOption ...
type ReaderOption func(r *Reader)

// WithRemoteCache enables the memcached level
func WithRemoteCache(cache cacheclient.Cache) ReaderOption {
	return func(r *Reader) {
		r.cache = cache
	}
}

// WithLocalCache enables the in process level
func WithLocalCache(mem *memtable.MemTable) ReaderOption {
	return func(r *Reader) {
		r.mem = mem
	}
}

// WithClock ...
func WithClock(now func() time.Time) ReaderOption {
	return func(r *Reader) {
		r.now = now
	}
}

// NewReader ...
func NewReader(
	provider repository.Provider, replicaRepo repository.Replica,
	conf config.CacheConfig, logger *zap.Logger, options ...ReaderOption,
) *Reader {
	r := &Reader{
		provider:    provider,
		replicaRepo: replicaRepo,
		conf:        conf,

		now:    time.Now,
		logger: logger,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

type cacheEntry struct {
	Found   bool              `json:"found"`
	Replica model.UserReplica `json:"replica"`
}

func replicaKey(id int64) string {
	return fmt.Sprintf("usr:%d", id)
}

func encodeEntry(r model.NullUserReplica) []byte {
	data, err := json.Marshal(cacheEntry{Found: r.Valid, Replica: r.Replica})
	if err != nil {
		panic(err)
	}
	return data
}

func decodeEntry(data []byte) (model.NullUserReplica, bool) {
	var e cacheEntry
	if err := json.Unmarshal(data, &e); err != nil {
		return model.NullUserReplica{}, false
	}
	return model.NullUserReplica{Valid: e.Found, Replica: e.Replica}, true
}

// Get returns an invalid value when the user has not been replicated yet
func (r *Reader) Get(ctx context.Context, id int64) (model.NullUserReplica, error) {
	key := replicaKey(id)

	if r.mem != nil {
		if data, ok := r.mem.Get(key); ok {
			if result, ok := decodeEntry(data); ok {
				return result, nil
			}
		}
	}

	if r.cache == nil {
		return r.getAndSetLocal(ctx, id)
	}

	pipe := r.cache.Pipeline()
	defer pipe.Finish()

	for i := 0; ; i++ {
		output, err := pipe.LeaseGet(key)()
		if err != nil {
			r.logger.Warn("lease get error", zap.String("key", key), zap.Error(err))
			return r.getAndSetLocal(ctx, id)
		}

		switch output.Type {
		case cacheclient.LeaseGetTypeOK:
			result, ok := decodeEntry(output.Data)
			if !ok {
				return r.getAndSetLocal(ctx, id)
			}
			r.setLocal(key, output.Data)
			return result, nil

		case cacheclient.LeaseGetTypeGranted:
			result, err := r.getFromDB(ctx, id)
			if err != nil {
				return model.NullUserReplica{}, err
			}
			data := encodeEntry(result)
			if err := pipe.LeaseSet(key, data, output.LeaseID, r.conf.RemoteTTLSeconds)(); err != nil {
				r.logger.Warn("lease set error", zap.String("key", key), zap.Error(err))
			}
			r.setLocal(key, data)
			return result, nil

		default:
		}

		if i >= len(r.conf.WaitLeaseDurations) {
			return r.getFromDB(ctx, id)
		}

		select {
		case <-ctx.Done():
			return model.NullUserReplica{}, ctx.Err()
		case <-time.After(r.conf.WaitLeaseDurations[i]):
		}
	}
}

// GetOrCreate never fails on a user that has not been replicated yet, a placeholder row is stored instead
func (r *Reader) GetOrCreate(ctx context.Context, id int64) (model.UserReplica, error) {
	result, err := r.Get(ctx, id)
	if err != nil {
		return model.UserReplica{}, err
	}
	if result.Valid {
		return result.Replica, nil
	}

	placeholder := model.NewPlaceholderReplica(id, r.now())

	var inserted bool
	err = r.provider.Transact(ctx, func(ctx context.Context) error {
		var err error
		inserted, err = r.replicaRepo.InsertPlaceholder(ctx, placeholder)
		return err
	})
	if err != nil {
		return model.UserReplica{}, fmt.Errorf("insert placeholder of user %d: %w", id, err)
	}

	r.Invalidate(ctx, id)
	if inserted {
		r.logger.Info("inserted placeholder replica", zap.Int64("entity_id", id))
	}

	result, err = r.getFromDB(ctx, id)
	if err != nil {
		return model.UserReplica{}, err
	}
	if !result.Valid {
		return placeholder, nil
	}
	return result.Replica, nil
}

// Invalidate is best effort, errors are only logged
func (r *Reader) Invalidate(_ context.Context, id int64) {
	key := replicaKey(id)

	if r.mem != nil {
		r.mem.Delete(key)
	}
	if r.cache == nil {
		return
	}

	pipe := r.cache.Pipeline()
	defer pipe.Finish()

	if err := pipe.Delete(key)(); err != nil {
		r.logger.Warn("delete cache key error", zap.String("key", key), zap.Error(err))
	}
}

func (r *Reader) getFromDB(ctx context.Context, id int64) (model.NullUserReplica, error) {
	result, err := r.replicaRepo.GetReplica(r.provider.Readonly(ctx), id)
	if err != nil {
		return model.NullUserReplica{}, fmt.Errorf("get replica of user %d: %w", id, err)
	}
	return result, nil
}

func (r *Reader) getAndSetLocal(ctx context.Context, id int64) (model.NullUserReplica, error) {
	result, err := r.getFromDB(ctx, id)
	if err != nil {
		return model.NullUserReplica{}, err
	}
	r.setLocal(replicaKey(id), encodeEntry(result))
	return result, nil
}

func (r *Reader) setLocal(key string, data []byte) {
	if r.mem == nil {
		return
	}
	r.mem.Set(key, data, r.conf.LocalTTLSeconds)
}
