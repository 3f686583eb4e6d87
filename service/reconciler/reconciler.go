package reconciler

import (
	"context"
	"fmt"
	"time"

	"github.com/QuangTung97/user-replica/config"
	"github.com/QuangTung97/user-replica/model"
	"github.com/QuangTung97/user-replica/repository"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

//go:generate otelwrap --out reconciler_wrappers.go . IReconciler
//go:generate moq -out reconciler_mocks.go . IReconciler CacheInvalidator

// IReconciler applies envelopes to the replica store
type IReconciler interface {
	Apply(ctx context.Context, env model.Envelope) (Action, error)
}

// CacheInvalidator drops cached copies of a replica
type CacheInvalidator interface {
	Invalidate(ctx context.Context, id int64)
}

// Reconciler ...
type Reconciler struct {
	provider    repository.Provider
	replicaRepo repository.Replica
	invalidator CacheInvalidator

	policy config.StaleVersionPolicy
	now    func() time.Time
	logger *zap.Logger

	reconcileTotal *prometheus.CounterVec
}

var _ IReconciler = &Reconciler{}

// Option ...
type Option func(r *Reconciler)

// WithClock ...
func WithClock(now func() time.Time) Option {
	return func(r *Reconciler) {
		r.now = now
	}
}

// NewReconciler ...
func NewReconciler(
	provider repository.Provider, replicaRepo repository.Replica, invalidator CacheInvalidator,
	policy config.StaleVersionPolicy, logger *zap.Logger, registerer prometheus.Registerer,
	options ...Option,
) *Reconciler {
	if policy == "" {
		policy = config.StaleVersionApply
	}

	r := &Reconciler{
		provider:    provider,
		replicaRepo: replicaRepo,
		invalidator: invalidator,

		policy: policy,
		now:    time.Now,
		logger: logger,

		reconcileTotal: promauto.With(registerer).NewCounterVec(prometheus.CounterOpts{
			Name: "user_replica_reconcile_total",
			Help: "Number of applied user envelopes by type and action",
		}, []string{"event_type", "action"}),
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// Apply runs the read-modify-write of one replica row in a single transaction.
// Not found paths are not errors, any returned error means the envelope should be redelivered.
func (r *Reconciler) Apply(ctx context.Context, env model.Envelope) (Action, error) {
	logger := r.logger.With(
		zap.String("event_id", env.EventID),
		zap.Int64("entity_id", env.EntityID),
		zap.String("event_type", string(env.EventType)),
	)

	if !env.EventType.Known() {
		logger.Warn("unknown event type, acknowledged")
		r.count(env.EventType, ActionNoop)
		return ActionNoop, nil
	}

	if env.EventType == model.EventTypePasswordChanged {
		logger.Debug("password changed, nothing to replicate")
		r.count(env.EventType, ActionNoop)
		return ActionNoop, nil
	}

	var decision Decision
	err := r.provider.Transact(ctx, func(ctx context.Context) error {
		existing, err := r.replicaRepo.LockReplica(ctx, env.EntityID)
		if err != nil {
			return err
		}

		decision = Decide(existing, env, r.now(), r.policy)

		switch decision.Action {
		case ActionInsert:
			return r.replicaRepo.InsertReplica(ctx, decision.Replica)
		case ActionUpdate, ActionSoftDelete:
			return r.replicaRepo.UpdateReplica(ctx, decision.Replica)
		default:
			return nil
		}
	})
	if err != nil {
		return "", fmt.Errorf("apply %s of user %d: %w", env.EventType, env.EntityID, err)
	}

	switch decision.Action {
	case ActionInsert, ActionUpdate, ActionSoftDelete:
		r.invalidator.Invalidate(ctx, env.EntityID)
		logger.Info("applied envelope",
			zap.String("action", string(decision.Action)),
			zap.Int64("sync_version", decision.Replica.SyncVersion),
		)
	case ActionSkip:
		logger.Info("stale envelope skipped",
			zap.Int64("version", env.EffectiveVersion()),
			zap.Int64("sync_version", decision.Replica.SyncVersion),
		)
	default:
		logger.Info("replica not found, nothing to apply")
	}

	r.count(env.EventType, decision.Action)
	return decision.Action, nil
}

func (r *Reconciler) count(eventType model.EventType, action Action) {
	label := string(eventType)
	if !eventType.Known() {
		label = "UNKNOWN"
	}
	r.reconcileTotal.WithLabelValues(label, string(action)).Inc()
}
