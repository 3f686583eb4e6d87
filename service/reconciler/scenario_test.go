package reconciler

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"

	"github.com/QuangTung97/user-replica/config"
	"github.com/QuangTung97/user-replica/model"
	"github.com/QuangTung97/user-replica/pkg/eventbus"
	"github.com/QuangTung97/user-replica/repository"
	"github.com/QuangTung97/user-replica/service/publisher"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

//----------------------------------------------------------
// in memory replica store
//----------------------------------------------------------

type memReplicaRepo struct {
	mut  sync.Mutex
	rows map[int64]model.UserReplica
}

var _ repository.Replica = &memReplicaRepo{}

func newMemReplicaRepo() *memReplicaRepo {
	return &memReplicaRepo{rows: map[int64]model.UserReplica{}}
}

func (m *memReplicaRepo) GetReplica(_ context.Context, id int64) (model.NullUserReplica, error) {
	m.mut.Lock()
	defer m.mut.Unlock()
	r, ok := m.rows[id]
	return model.NullUserReplica{Valid: ok, Replica: r}, nil
}

func (m *memReplicaRepo) LockReplica(ctx context.Context, id int64) (model.NullUserReplica, error) {
	return m.GetReplica(ctx, id)
}

func (m *memReplicaRepo) InsertReplica(_ context.Context, replica model.UserReplica) error {
	m.mut.Lock()
	defer m.mut.Unlock()
	m.rows[replica.ID] = replica
	return nil
}

func (m *memReplicaRepo) UpdateReplica(ctx context.Context, replica model.UserReplica) error {
	return m.InsertReplica(ctx, replica)
}

func (m *memReplicaRepo) InsertPlaceholder(_ context.Context, replica model.UserReplica) (bool, error) {
	m.mut.Lock()
	defer m.mut.Unlock()
	if _, ok := m.rows[replica.ID]; ok {
		return false, nil
	}
	m.rows[replica.ID] = replica
	return true, nil
}

//----------------------------------------------------------
// owner publisher -> captured messages -> consumer handler
//----------------------------------------------------------

type scenarioTest struct {
	sender   *publisher.SenderMock
	pub      *publisher.Publisher
	repo     *memReplicaRepo
	handler  *Handler
	messages [][]byte
}

func newScenarioTest(policy config.StaleVersionPolicy) *scenarioTest {
	s := &scenarioTest{
		sender: &publisher.SenderMock{},
		repo:   newMemReplicaRepo(),
	}
	s.sender.SendFunc = func(ctx context.Context, subject string, msgID string, data []byte) error {
		s.messages = append(s.messages, data)
		return nil
	}

	s.pub = publisher.New(s.sender, eventbus.NewTopology("user", "identity"), "identity",
		zap.NewNop(), prometheus.NewRegistry())

	provider := &repository.ProviderMock{
		TransactFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
	invalidator := &CacheInvalidatorMock{
		InvalidateFunc: func(ctx context.Context, id int64) {},
	}

	rec := NewReconciler(provider, s.repo, invalidator, policy, zap.NewNop(), prometheus.NewRegistry())
	s.handler = NewHandler(rec, zap.NewNop())
	return s
}

func (s *scenarioTest) deliverAll(t *testing.T) {
	for _, m := range s.messages {
		assert.Equal(t, nil, s.handler.Handle(newContext(), m))
	}
	s.messages = nil
}

func (s *scenarioTest) replica(id int64) model.UserReplica {
	r, _ := s.repo.GetReplica(newContext(), id)
	return r.Replica
}

func TestScenario__Alice_Lifecycle(t *testing.T) {
	s := newScenarioTest(config.StaleVersionApply)

	alice := model.User{
		ID:        42,
		Username:  "alice",
		Email:     "alice@example.com",
		Role:      model.RoleStudent,
		IsEnabled: true,
		Version:   1,
	}

	s.pub.PublishCreated(newContext(), alice)
	s.deliverAll(t)

	r := s.replica(42)
	assert.Equal(t, "alice", r.Username)
	assert.Equal(t, "alice@example.com", r.Email)
	assert.Equal(t, "STUDENT", r.Role)
	assert.Equal(t, true, r.IsActive)
	assert.Equal(t, int64(1), r.SyncVersion)

	// profile update delivered twice
	alice.FullName = sql.NullString{Valid: true, String: "Alice Nguyen"}
	alice.Version = 2
	s.pub.PublishUpdated(newContext(), alice)
	s.messages = append(s.messages, s.messages[0])
	s.deliverAll(t)

	r = s.replica(42)
	assert.Equal(t, "Alice Nguyen", r.FullName.String)
	assert.Equal(t, int64(2), r.SyncVersion)

	alice.Role = model.RoleTeacher
	alice.Version = 3
	s.pub.PublishRoleChanged(newContext(), alice, model.RoleStudent)
	s.deliverAll(t)
	assert.Equal(t, "TEACHER", s.replica(42).Role)

	alice.IsEnabled = false
	alice.Version = 4
	s.pub.PublishDeactivated(newContext(), alice)
	s.deliverAll(t)
	assert.Equal(t, false, s.replica(42).IsActive)

	alice.IsEnabled = true
	alice.Version = 5
	s.pub.PublishActivated(newContext(), alice)
	s.deliverAll(t)
	assert.Equal(t, true, s.replica(42).IsActive)

	alice.Version = 6
	s.pub.PublishPasswordChanged(newContext(), alice)
	s.deliverAll(t)
	assert.Equal(t, int64(5), s.replica(42).SyncVersion)

	alice.Version = 7
	s.pub.PublishDeleted(newContext(), alice)
	s.deliverAll(t)

	r = s.replica(42)
	assert.Equal(t, false, r.IsActive)
	assert.Equal(t, "alice", r.Username)
	assert.Equal(t, "Alice Nguyen", r.FullName.String)
	assert.Equal(t, "TEACHER", r.Role)
	assert.Equal(t, int64(7), r.SyncVersion)

	// a late duplicate of DELETED converges to the same row
	s.pub.PublishDeleted(newContext(), alice)
	s.deliverAll(t)
	after := s.replica(42)
	after.SyncedAt = r.SyncedAt
	assert.Equal(t, r, after)
}

func TestScenario__Updated_Before_Created(t *testing.T) {
	s := newScenarioTest(config.StaleVersionApply)

	updated := model.Envelope{
		EntityID:  7,
		EventType: model.EventTypeUpdated,
		FullName:  model.StringPtr("B"),
	}
	created := model.Envelope{
		EntityID:  7,
		EventType: model.EventTypeCreated,
		Username:  model.StringPtr("u7"),
		FullName:  model.StringPtr("A"),
	}

	for _, env := range []model.Envelope{updated, created} {
		data, err := env.Encode()
		assert.Equal(t, nil, err)
		assert.Equal(t, nil, s.handler.Handle(newContext(), data))
	}

	r := s.replica(7)
	assert.Equal(t, "u7", r.Username)
	assert.Equal(t, "A", r.FullName.String)
	assert.Equal(t, true, r.IsActive)
}

func TestScenario__Placeholder_Then_Created(t *testing.T) {
	s := newScenarioTest(config.StaleVersionApply)

	inserted, err := s.repo.InsertPlaceholder(newContext(), model.NewPlaceholderReplica(9, time1))
	assert.Equal(t, nil, err)
	assert.Equal(t, true, inserted)

	s.pub.PublishCreated(newContext(), model.User{
		ID:        9,
		Username:  "bob",
		Email:     "bob@example.com",
		Role:      model.RoleAdmin,
		IsEnabled: true,
		Version:   1,
	})
	s.deliverAll(t)

	r := s.replica(9)
	assert.Equal(t, "bob", r.Username)
	assert.Equal(t, "ADMIN", r.Role)
	assert.Equal(t, false, r.FullName.Valid)
	assert.Equal(t, false, r.IsPlaceholder())
}

func TestHandler__Invalid_Payload_Returns_Error(t *testing.T) {
	s := newScenarioTest(config.StaleVersionApply)

	err := s.handler.Handle(newContext(), []byte(`{"eventType":"CREATED"}`))
	assert.True(t, errors.Is(err, model.ErrInvalidEnvelope))
	assert.Equal(t, 0, len(s.repo.rows))
}

func TestHandler__Legacy_Envelope_With_Bad_Timestamp_Applied(t *testing.T) {
	s := newScenarioTest(config.StaleVersionApply)

	core, logs := observer.New(zap.WarnLevel)
	s.handler.logger = zap.New(core)

	err := s.handler.Handle(newContext(), []byte(`{
		"userId": 7,
		"eventType": "USER_CREATED",
		"username": "u7",
		"timestamp": {"epochSecond": 1652176800}
	}`))
	assert.Equal(t, nil, err)
	assert.Equal(t, "u7", s.replica(7).Username)

	entries := logs.FilterMessage("invalid envelope timestamp, using zero time").All()
	assert.Equal(t, 1, len(entries))
	assert.Equal(t, int64(7), entries[0].ContextMap()["entity_id"])
}
