package eventbus

import (
	"context"
	"errors"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

//go:generate moq -out eventbus_mocks.go . Source DeadLetterSink Handler

// Delivery is one delivery attempt of a message
type Delivery interface {
	Subject() string
	Data() []byte

	// NumDelivered starts from 1
	NumDelivered() uint64

	Ack() error
	Nak() error
	NakWithDelay(delay time.Duration) error
	Term() error
}

// Source pulls deliveries from a queue
type Source interface {
	Fetch(ctx context.Context, batch int, maxWait time.Duration) ([]Delivery, error)
}

// DeadLetterSink ...
type DeadLetterSink interface {
	PublishDeadLetter(ctx context.Context, letter DeadLetter) error
}

var _ DeadLetterSink = &Client{}

type jetStreamSource struct {
	consumer jetstream.Consumer
}

// NewJetStreamSource ...
func NewJetStreamSource(consumer jetstream.Consumer) Source {
	return &jetStreamSource{consumer: consumer}
}

// Fetch returns an empty batch when no message arrived within maxWait
func (s *jetStreamSource) Fetch(ctx context.Context, batch int, maxWait time.Duration) ([]Delivery, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	msgs, err := s.consumer.Fetch(batch, jetstream.FetchMaxWait(maxWait))
	if err != nil {
		return nil, err
	}

	result := make([]Delivery, 0, batch)
	for msg := range msgs.Messages() {
		result = append(result, jetStreamDelivery{msg: msg})
	}

	err = msgs.Error()
	if err != nil && !isFetchTimeout(err) {
		return result, err
	}
	return result, nil
}

func isFetchTimeout(err error) bool {
	return errors.Is(err, nats.ErrTimeout) || errors.Is(err, jetstream.ErrNoMessages)
}

type jetStreamDelivery struct {
	msg jetstream.Msg
}

func (d jetStreamDelivery) Subject() string {
	return d.msg.Subject()
}

func (d jetStreamDelivery) Data() []byte {
	return d.msg.Data()
}

func (d jetStreamDelivery) NumDelivered() uint64 {
	meta, err := d.msg.Metadata()
	if err != nil {
		return 1
	}
	return meta.NumDelivered
}

func (d jetStreamDelivery) Ack() error {
	return d.msg.Ack()
}

func (d jetStreamDelivery) Nak() error {
	return d.msg.Nak()
}

func (d jetStreamDelivery) NakWithDelay(delay time.Duration) error {
	return d.msg.NakWithDelay(delay)
}

func (d jetStreamDelivery) Term() error {
	return d.msg.Term()
}
