package reconciler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/QuangTung97/user-replica/config"
	"github.com/QuangTung97/user-replica/model"
	"github.com/QuangTung97/user-replica/repository"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

func newContext() context.Context {
	return context.Background()
}

type reconcilerTest struct {
	provider    *repository.ProviderMock
	repo        *repository.ReplicaMock
	invalidator *CacheInvalidatorMock

	reconciler *Reconciler
}

func newReconcilerTest(policy config.StaleVersionPolicy) *reconcilerTest {
	r := &reconcilerTest{
		provider:    &repository.ProviderMock{},
		repo:        &repository.ReplicaMock{},
		invalidator: &CacheInvalidatorMock{},
	}

	r.provider.TransactFunc = func(ctx context.Context, fn func(ctx context.Context) error) error {
		return fn(ctx)
	}
	r.invalidator.InvalidateFunc = func(ctx context.Context, id int64) {}

	r.reconciler = NewReconciler(r.provider, r.repo, r.invalidator, policy,
		zap.NewNop(), prometheus.NewRegistry(),
		WithClock(func() time.Time { return time2 }),
	)
	return r
}

func (r *reconcilerTest) stubLock(result model.NullUserReplica, err error) {
	r.repo.LockReplicaFunc = func(ctx context.Context, id int64) (model.NullUserReplica, error) {
		return result, err
	}
}

func (r *reconcilerTest) stubWrites() {
	r.repo.InsertReplicaFunc = func(ctx context.Context, replica model.UserReplica) error {
		return nil
	}
	r.repo.UpdateReplicaFunc = func(ctx context.Context, replica model.UserReplica) error {
		return nil
	}
}

func (r *reconcilerTest) count(eventType string, action Action) float64 {
	return testutil.ToFloat64(r.reconciler.reconcileTotal.WithLabelValues(eventType, string(action)))
}

func TestReconciler_Apply__Created_Insert_In_Transaction(t *testing.T) {
	r := newReconcilerTest(config.StaleVersionApply)
	r.stubLock(model.NullUserReplica{}, nil)
	r.stubWrites()

	action, err := r.reconciler.Apply(newContext(), model.Envelope{
		EntityID:  42,
		EventType: model.EventTypeCreated,
		Username:  model.StringPtr("alice"),
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, ActionInsert, action)

	assert.Equal(t, 1, len(r.provider.TransactCalls()))
	assert.Equal(t, int64(42), r.repo.LockReplicaCalls()[0].Id)

	inserts := r.repo.InsertReplicaCalls()
	assert.Equal(t, 1, len(inserts))
	assert.Equal(t, "alice", inserts[0].Replica.Username)
	assert.Equal(t, time2, inserts[0].Replica.SyncedAt)
	assert.Equal(t, 0, len(r.repo.UpdateReplicaCalls()))

	assert.Equal(t, 1, len(r.invalidator.InvalidateCalls()))
	assert.Equal(t, int64(42), r.invalidator.InvalidateCalls()[0].Id)

	assert.Equal(t, float64(1), r.count("CREATED", ActionInsert))
}

func TestReconciler_Apply__Updated_Existing_Row(t *testing.T) {
	r := newReconcilerTest(config.StaleVersionApply)
	r.stubLock(existingOf(aliceReplica()), nil)
	r.stubWrites()

	action, err := r.reconciler.Apply(newContext(), model.Envelope{
		EntityID:  42,
		EventType: model.EventTypeUpdated,
		Bio:       model.StringPtr("hi"),
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, ActionUpdate, action)

	updates := r.repo.UpdateReplicaCalls()
	assert.Equal(t, 1, len(updates))
	assert.Equal(t, "hi", updates[0].Replica.Bio.String)
	assert.Equal(t, "Alice", updates[0].Replica.FullName.String)
}

func TestReconciler_Apply__Deleted_Not_Found__Noop_Without_Write(t *testing.T) {
	r := newReconcilerTest(config.StaleVersionApply)
	r.stubLock(model.NullUserReplica{}, nil)

	action, err := r.reconciler.Apply(newContext(), model.Envelope{
		EntityID:  42,
		EventType: model.EventTypeDeleted,
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, ActionNoop, action)
	assert.Equal(t, 0, len(r.invalidator.InvalidateCalls()))
	assert.Equal(t, float64(1), r.count("DELETED", ActionNoop))
}

func TestReconciler_Apply__Deleted_Soft_Delete(t *testing.T) {
	r := newReconcilerTest(config.StaleVersionApply)
	r.stubLock(existingOf(aliceReplica()), nil)
	r.stubWrites()

	action, err := r.reconciler.Apply(newContext(), model.Envelope{
		EntityID:  42,
		EventType: model.EventTypeDeleted,
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, ActionSoftDelete, action)
	assert.Equal(t, false, r.repo.UpdateReplicaCalls()[0].Replica.IsActive)
	assert.Equal(t, 1, len(r.invalidator.InvalidateCalls()))
}

func TestReconciler_Apply__Unknown_And_Password_Changed__Ack_Without_DB(t *testing.T) {
	r := newReconcilerTest(config.StaleVersionApply)

	action, err := r.reconciler.Apply(newContext(), model.Envelope{
		EntityID:  42,
		EventType: "MERGED",
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, ActionNoop, action)

	action, err = r.reconciler.Apply(newContext(), model.Envelope{
		EntityID:  42,
		EventType: model.EventTypePasswordChanged,
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, ActionNoop, action)

	assert.Equal(t, 0, len(r.provider.TransactCalls()))
	assert.Equal(t, float64(1), r.count("UNKNOWN", ActionNoop))
	assert.Equal(t, float64(1), r.count("PASSWORD_CHANGED", ActionNoop))
}

func TestReconciler_Apply__Lock_Error_Returned(t *testing.T) {
	r := newReconcilerTest(config.StaleVersionApply)
	dbErr := errors.New("lock wait timeout")
	r.stubLock(model.NullUserReplica{}, dbErr)

	action, err := r.reconciler.Apply(newContext(), model.Envelope{
		EntityID:  42,
		EventType: model.EventTypeUpdated,
	})
	assert.True(t, errors.Is(err, dbErr))
	assert.Equal(t, "apply UPDATED of user 42: lock wait timeout", err.Error())
	assert.Equal(t, Action(""), action)
	assert.Equal(t, 0, len(r.invalidator.InvalidateCalls()))
}

func TestReconciler_Apply__Insert_Error_Returned(t *testing.T) {
	r := newReconcilerTest(config.StaleVersionApply)
	r.stubLock(model.NullUserReplica{}, nil)

	dupErr := errors.New("duplicate entry for key username")
	r.repo.InsertReplicaFunc = func(ctx context.Context, replica model.UserReplica) error {
		return dupErr
	}

	_, err := r.reconciler.Apply(newContext(), model.Envelope{
		EntityID:  42,
		EventType: model.EventTypeCreated,
	})
	assert.True(t, errors.Is(err, dupErr))
	assert.Equal(t, 0, len(r.invalidator.InvalidateCalls()))
}

func TestReconciler_Apply__Skip_Stale_Version(t *testing.T) {
	r := newReconcilerTest(config.StaleVersionSkip)

	existing := aliceReplica()
	existing.SyncVersion = 5
	r.stubLock(existingOf(existing), nil)

	action, err := r.reconciler.Apply(newContext(), model.Envelope{
		EntityID:  42,
		EventType: model.EventTypeUpdated,
		FullName:  model.StringPtr("old"),
		Version:   model.Int64Ptr(4),
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, ActionSkip, action)
	assert.Equal(t, 0, len(r.repo.UpdateReplicaCalls()))
	assert.Equal(t, 0, len(r.invalidator.InvalidateCalls()))
	assert.Equal(t, float64(1), r.count("UPDATED", ActionSkip))
}

func TestReconciler__Default_Policy_Apply(t *testing.T) {
	r := NewReconciler(nil, nil, nil, "", zap.NewNop(), prometheus.NewRegistry())
	assert.Equal(t, config.StaleVersionApply, r.policy)
}

func TestIReconcilerWrapper__Apply(t *testing.T) {
	inner := &IReconcilerMock{}
	inner.ApplyFunc = func(ctx context.Context, env model.Envelope) (Action, error) {
		return ActionUpdate, nil
	}

	w := NewIReconcilerWrapper(inner, trace.NewNoopTracerProvider().Tracer("test"), "reconciler::")
	action, err := w.Apply(newContext(), model.Envelope{EntityID: 1, EventType: model.EventTypeUpdated})
	assert.Equal(t, nil, err)
	assert.Equal(t, ActionUpdate, action)
	assert.Equal(t, 1, len(inner.ApplyCalls()))
}
