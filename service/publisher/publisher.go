package publisher

import (
	"context"
	"database/sql"
	"time"

	"github.com/QuangTung97/user-replica/model"
	"github.com/QuangTung97/user-replica/pkg/eventbus"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

//go:generate moq -out publisher_mocks.go . Sender IPublisher

// Sender sends one message to the broker
type Sender interface {
	Send(ctx context.Context, subject string, msgID string, data []byte) error
}

var _ Sender = &eventbus.Client{}

// IPublisher announces committed mutations of users.
// Failures are logged and counted, never returned.
type IPublisher interface {
	PublishCreated(ctx context.Context, user model.User)
	PublishUpdated(ctx context.Context, user model.User)
	PublishDeleted(ctx context.Context, user model.User)
	PublishRoleChanged(ctx context.Context, user model.User, oldRole model.Role)
	PublishActivated(ctx context.Context, user model.User)
	PublishDeactivated(ctx context.Context, user model.User)
	PublishPasswordChanged(ctx context.Context, user model.User)
}

const (
	statusOK    = "ok"
	statusError = "error"
)

// Publisher ...
type Publisher struct {
	sender Sender
	topo   eventbus.Topology
	source string
	logger *zap.Logger

	now   func() time.Time
	newID func() string

	publishTotal *prometheus.CounterVec
}

var _ IPublisher = &Publisher{}

// Option ...
type Option func(p *Publisher)

// WithClock ...
func WithClock(now func() time.Time) Option {
	return func(p *Publisher) {
		p.now = now
	}
}

// WithIDGenerator ...
func WithIDGenerator(newID func() string) Option {
	return func(p *Publisher) {
		p.newID = newID
	}
}

// New ...
func New(
	sender Sender, topo eventbus.Topology, source string,
	logger *zap.Logger, registerer prometheus.Registerer, options ...Option,
) *Publisher {
	p := &Publisher{
		sender: sender,
		topo:   topo,
		source: source,
		logger: logger,

		now:   time.Now,
		newID: uuid.NewString,

		publishTotal: promauto.With(registerer).NewCounterVec(prometheus.CounterOpts{
			Name: "user_replica_publish_total",
			Help: "Number of published user events by type and status",
		}, []string{"event_type", "status"}),
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// PublishCreated ...
func (p *Publisher) PublishCreated(ctx context.Context, user model.User) {
	p.publish(ctx, p.fullSnapshot(model.EventTypeCreated, user))
}

// PublishUpdated ...
func (p *Publisher) PublishUpdated(ctx context.Context, user model.User) {
	p.publish(ctx, p.fullSnapshot(model.EventTypeUpdated, user))
}

// PublishDeleted ...
func (p *Publisher) PublishDeleted(ctx context.Context, user model.User) {
	env := p.newEnvelope(model.EventTypeDeleted, user)
	env.Username = model.StringPtr(user.Username)
	env.IsEnabled = model.BoolPtr(false)
	p.publish(ctx, env)
}

// PublishRoleChanged ...
func (p *Publisher) PublishRoleChanged(ctx context.Context, user model.User, oldRole model.Role) {
	env := p.newEnvelope(model.EventTypeRoleChanged, user)
	env.Username = model.StringPtr(user.Username)
	env.Role = model.StringPtr(string(user.Role))

	p.logger.Info("publish role changed",
		zap.Int64("entity_id", user.ID),
		zap.String("old_role", string(oldRole)),
		zap.String("new_role", string(user.Role)),
	)
	p.publish(ctx, env)
}

// PublishActivated ...
func (p *Publisher) PublishActivated(ctx context.Context, user model.User) {
	env := p.newEnvelope(model.EventTypeActivated, user)
	env.Username = model.StringPtr(user.Username)
	env.IsEnabled = model.BoolPtr(true)
	p.publish(ctx, env)
}

// PublishDeactivated ...
func (p *Publisher) PublishDeactivated(ctx context.Context, user model.User) {
	env := p.newEnvelope(model.EventTypeDeactivated, user)
	env.Username = model.StringPtr(user.Username)
	env.IsEnabled = model.BoolPtr(false)
	p.publish(ctx, env)
}

// PublishPasswordChanged carries no replicable field
func (p *Publisher) PublishPasswordChanged(ctx context.Context, user model.User) {
	p.publish(ctx, p.newEnvelope(model.EventTypePasswordChanged, user))
}

func (p *Publisher) newEnvelope(eventType model.EventType, user model.User) model.Envelope {
	return model.Envelope{
		EventID:   p.newID(),
		EntityID:  user.ID,
		EventType: eventType,
		Timestamp: model.Timestamp{Time: p.now()},
		Version:   model.Int64Ptr(user.Version),
		Source:    p.source,
	}
}

func nullStringPtr(s sql.NullString) *string {
	if !s.Valid {
		// empty string clears the field at the replicas
		return model.StringPtr("")
	}
	return model.StringPtr(s.String)
}

func (p *Publisher) fullSnapshot(eventType model.EventType, user model.User) model.Envelope {
	env := p.newEnvelope(eventType, user)
	env.Username = model.StringPtr(user.Username)
	env.Email = model.StringPtr(user.Email)
	env.FullName = nullStringPtr(user.FullName)
	env.Bio = nullStringPtr(user.Bio)
	env.AvatarURL = nullStringPtr(user.AvatarURL)
	env.Role = model.StringPtr(string(user.Role))
	env.IsEnabled = model.BoolPtr(user.IsEnabled)
	env.IsVerified = model.BoolPtr(user.IsVerified)
	return env
}

func (p *Publisher) publish(ctx context.Context, env model.Envelope) {
	subject := p.topo.RoutingKey(env.EventType)
	logger := p.logger.With(
		zap.String("event_id", env.EventID),
		zap.Int64("entity_id", env.EntityID),
		zap.String("event_type", string(env.EventType)),
		zap.String("subject", subject),
	)

	data, err := env.Encode()
	if err != nil {
		logger.Error("encode envelope error", zap.Error(err))
		p.publishTotal.WithLabelValues(string(env.EventType), statusError).Inc()
		return
	}

	err = p.sender.Send(ctx, subject, env.EventID, data)
	if err != nil {
		logger.Error("publish event error", zap.Error(err))
		p.publishTotal.WithLabelValues(string(env.EventType), statusError).Inc()
		return
	}

	logger.Debug("published event")
	p.publishTotal.WithLabelValues(string(env.EventType), statusOK).Inc()
}
