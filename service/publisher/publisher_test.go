package publisher

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/QuangTung97/user-replica/model"
	"github.com/QuangTung97/user-replica/pkg/eventbus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newContext() context.Context {
	return context.Background()
}

type publisherTest struct {
	sender *SenderMock
	pub    *Publisher
}

var testNow = time.Date(2022, 5, 10, 10, 0, 0, 0, time.UTC)

func newPublisherTest() *publisherTest {
	sender := &SenderMock{}
	sender.SendFunc = func(ctx context.Context, subject string, msgID string, data []byte) error {
		return nil
	}

	return &publisherTest{
		sender: sender,
		pub: New(sender, eventbus.NewTopology("user", "identity"), "identity",
			zap.NewNop(), prometheus.NewRegistry(),
			WithClock(func() time.Time { return testNow }),
			WithIDGenerator(func() string { return "event-1" }),
		),
	}
}

func (p *publisherTest) sentEnvelope(t *testing.T) model.Envelope {
	calls := p.sender.SendCalls()
	assert.Equal(t, 1, len(calls))
	env, err := model.DecodeEnvelope(calls[0].Data)
	assert.Equal(t, nil, err)
	return env
}

func newUser() model.User {
	return model.User{
		ID:         42,
		Username:   "alice",
		Email:      "alice@example.com",
		FullName:   sql.NullString{Valid: true, String: "Alice"},
		Role:       model.RoleStudent,
		IsEnabled:  true,
		IsVerified: false,
		Version:    3,
	}
}

func TestPublisher_PublishCreated__Full_Snapshot(t *testing.T) {
	p := newPublisherTest()

	p.pub.PublishCreated(newContext(), newUser())

	calls := p.sender.SendCalls()
	assert.Equal(t, 1, len(calls))
	assert.Equal(t, "user.created", calls[0].Subject)
	assert.Equal(t, "event-1", calls[0].MsgID)

	assert.Equal(t, model.Envelope{
		EventID:    "event-1",
		EntityID:   42,
		EventType:  model.EventTypeCreated,
		Username:   model.StringPtr("alice"),
		Email:      model.StringPtr("alice@example.com"),
		FullName:   model.StringPtr("Alice"),
		Bio:        model.StringPtr(""),
		AvatarURL:  model.StringPtr(""),
		Role:       model.StringPtr("STUDENT"),
		IsEnabled:  model.BoolPtr(true),
		IsVerified: model.BoolPtr(false),
		Timestamp:  model.Timestamp{Time: testNow},
		Version:    model.Int64Ptr(3),
		Source:     "identity",
	}, p.sentEnvelope(t))

	assert.Equal(t, float64(1), testutil.ToFloat64(
		p.pub.publishTotal.WithLabelValues("CREATED", statusOK)))
}

func TestPublisher_PublishUpdated(t *testing.T) {
	p := newPublisherTest()

	p.pub.PublishUpdated(newContext(), newUser())

	assert.Equal(t, "user.updated", p.sender.SendCalls()[0].Subject)
	env := p.sentEnvelope(t)
	assert.Equal(t, model.EventTypeUpdated, env.EventType)
	assert.Equal(t, model.StringPtr("alice@example.com"), env.Email)
}

func TestPublisher_PublishDeleted(t *testing.T) {
	p := newPublisherTest()

	p.pub.PublishDeleted(newContext(), newUser())

	assert.Equal(t, "user.deleted", p.sender.SendCalls()[0].Subject)
	assert.Equal(t, model.Envelope{
		EventID:   "event-1",
		EntityID:  42,
		EventType: model.EventTypeDeleted,
		Username:  model.StringPtr("alice"),
		IsEnabled: model.BoolPtr(false),
		Timestamp: model.Timestamp{Time: testNow},
		Version:   model.Int64Ptr(3),
		Source:    "identity",
	}, p.sentEnvelope(t))
}

func TestPublisher_PublishRoleChanged(t *testing.T) {
	p := newPublisherTest()

	user := newUser()
	user.Role = model.RoleAdmin
	p.pub.PublishRoleChanged(newContext(), user, model.RoleStudent)

	assert.Equal(t, "user.role.changed", p.sender.SendCalls()[0].Subject)
	env := p.sentEnvelope(t)
	assert.Equal(t, model.EventTypeRoleChanged, env.EventType)
	assert.Equal(t, model.StringPtr("ADMIN"), env.Role)
	assert.Equal(t, model.StringPtr("alice"), env.Username)
	assert.Nil(t, env.Email)
}

func TestPublisher_PublishActivated_Deactivated(t *testing.T) {
	p := newPublisherTest()

	p.pub.PublishActivated(newContext(), newUser())
	p.pub.PublishDeactivated(newContext(), newUser())

	calls := p.sender.SendCalls()
	assert.Equal(t, 2, len(calls))
	assert.Equal(t, "user.activated", calls[0].Subject)
	assert.Equal(t, "user.deactivated", calls[1].Subject)

	env, err := model.DecodeEnvelope(calls[1].Data)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.BoolPtr(false), env.IsEnabled)
}

func TestPublisher_PublishPasswordChanged__No_Replicable_Field(t *testing.T) {
	p := newPublisherTest()

	p.pub.PublishPasswordChanged(newContext(), newUser())

	assert.Equal(t, "user.password.changed", p.sender.SendCalls()[0].Subject)
	assert.Equal(t, model.Envelope{
		EventID:   "event-1",
		EntityID:  42,
		EventType: model.EventTypePasswordChanged,
		Timestamp: model.Timestamp{Time: testNow},
		Version:   model.Int64Ptr(3),
		Source:    "identity",
	}, p.sentEnvelope(t))
}

func TestPublisher__Send_Error_Is_Not_Returned(t *testing.T) {
	p := newPublisherTest()
	p.sender.SendFunc = func(ctx context.Context, subject string, msgID string, data []byte) error {
		return errors.New("broker down")
	}

	assert.NotPanics(t, func() {
		p.pub.PublishCreated(newContext(), newUser())
	})

	assert.Equal(t, 1, len(p.sender.SendCalls()))
	assert.Equal(t, float64(1), testutil.ToFloat64(
		p.pub.publishTotal.WithLabelValues("CREATED", statusError)))
	assert.Equal(t, float64(0), testutil.ToFloat64(
		p.pub.publishTotal.WithLabelValues("CREATED", statusOK)))
}

func TestPublisher__Default_Event_ID_Unique(t *testing.T) {
	sender := &SenderMock{
		SendFunc: func(ctx context.Context, subject string, msgID string, data []byte) error {
			return nil
		},
	}
	pub := New(sender, eventbus.NewTopology("user", "identity"), "identity",
		zap.NewNop(), prometheus.NewRegistry())

	pub.PublishUpdated(newContext(), newUser())
	pub.PublishUpdated(newContext(), newUser())

	calls := sender.SendCalls()
	assert.Equal(t, 2, len(calls))
	assert.NotEqual(t, "", calls[0].MsgID)
	assert.NotEqual(t, calls[0].MsgID, calls[1].MsgID)
}
