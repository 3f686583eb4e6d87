package reconciler

import (
	"context"

	"github.com/QuangTung97/user-replica/model"
	"github.com/QuangTung97/user-replica/pkg/eventbus"
	"github.com/QuangTung97/user-replica/pkg/otellib"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

// Handler decodes deliveries of the sync queue and passes them to the reconciler
type Handler struct {
	reconciler IReconciler
	logger     *zap.Logger
}

var _ eventbus.Handler = &Handler{}

// NewHandler wraps the reconciler with a tracing span
func NewHandler(reconciler IReconciler, logger *zap.Logger) *Handler {
	return &Handler{
		reconciler: NewIReconcilerWrapper(reconciler,
			otel.GetTracerProvider().Tracer("reconciler"), "reconciler::"),
		logger: logger,
	}
}

// Handle returns decode errors too, they end in the dead letter queue after the last delivery
func (h *Handler) Handle(ctx context.Context, data []byte) error {
	ctx = otellib.ToContext(ctx, h.logger)

	env, err := model.DecodeEnvelope(data)
	if err != nil {
		otellib.Extract(ctx).Warn("decode envelope error", zap.Error(err))
		return err
	}
	if raw := env.Timestamp.Invalid(); raw != "" {
		otellib.Extract(ctx).Warn("invalid envelope timestamp, using zero time",
			zap.Int64("entity_id", env.EntityID),
			zap.String("timestamp", raw),
		)
	}

	_, err = h.reconciler.Apply(ctx, env)
	if err != nil {
		otellib.WrapError(ctx, err)
		return err
	}
	return nil
}
