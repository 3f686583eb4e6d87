package eventbus

import (
	"strings"
	"time"

	"github.com/QuangTung97/user-replica/config"
	"github.com/QuangTung97/user-replica/model"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	streamMaxAge           = 7 * 24 * time.Hour
	deadLetterStreamMaxAge = 30 * 24 * time.Hour
	duplicateWindow        = 2 * time.Minute
)

// Topology names the broker resources for one entity type and one consuming service.
// The stream plays the role of the exchange, the durable consumer plays the role of the queue.
type Topology struct {
	Entity  string
	Service string
}

// NewTopology ...
func NewTopology(entity string, service string) Topology {
	return Topology{
		Entity:  strings.ToLower(entity),
		Service: service,
	}
}

// StreamName e.g. USER
func (t Topology) StreamName() string {
	return strings.ToUpper(t.Entity)
}

// StreamSubjects ...
func (t Topology) StreamSubjects() []string {
	return []string{t.Entity + ".>"}
}

// RoutingKey e.g. user.role.changed
func (t Topology) RoutingKey(eventType model.EventType) string {
	return t.Entity + "." + eventType.RoutingKeySuffix()
}

// RoutingKeys for the given event types
func (t Topology) RoutingKeys(eventTypes []model.EventType) []string {
	keys := make([]string, 0, len(eventTypes))
	for _, e := range eventTypes {
		keys = append(keys, t.RoutingKey(e))
	}
	return keys
}

// QueueName e.g. user.sync.discussion
func (t Topology) QueueName() string {
	return t.Entity + ".sync." + t.Service
}

// ConsumerName is the durable name of the queue, dots are not allowed in durable names
func (t Topology) ConsumerName() string {
	return strings.ReplaceAll(t.QueueName(), ".", "_")
}

// DeadLetterStreamName e.g. DLQ_USER
func (t Topology) DeadLetterStreamName() string {
	return "DLQ_" + t.StreamName()
}

// DeadLetterSubject of the queue, e.g. dlq.user.sync.discussion
func (t Topology) DeadLetterSubject() string {
	return "dlq." + t.QueueName()
}

// StreamConfig ...
func (t Topology) StreamConfig() jetstream.StreamConfig {
	return jetstream.StreamConfig{
		Name:       t.StreamName(),
		Subjects:   t.StreamSubjects(),
		Retention:  jetstream.LimitsPolicy,
		Storage:    jetstream.FileStorage,
		MaxAge:     streamMaxAge,
		Duplicates: duplicateWindow,
	}
}

// DeadLetterStreamConfig ...
func (t Topology) DeadLetterStreamConfig() jetstream.StreamConfig {
	return jetstream.StreamConfig{
		Name:      t.DeadLetterStreamName(),
		Subjects:  []string{"dlq." + t.Entity + ".>"},
		Retention: jetstream.LimitsPolicy,
		Storage:   jetstream.FileStorage,
		MaxAge:    deadLetterStreamMaxAge,
	}
}

// unlimitedDeliveries leaves the delivery budget to the Consumer, which dead-letters on conf.MaxDeliver
const unlimitedDeliveries = -1

// ConsumerConfig binds the queue to the routing keys of interest
func (t Topology) ConsumerConfig(conf config.SyncConfig, eventTypes []model.EventType) jetstream.ConsumerConfig {
	return jetstream.ConsumerConfig{
		Durable:        t.ConsumerName(),
		Description:    t.QueueName(),
		FilterSubjects: t.RoutingKeys(eventTypes),
		AckPolicy:      jetstream.AckExplicitPolicy,
		DeliverPolicy:  jetstream.DeliverAllPolicy,
		AckWait:        conf.AckWait,
		MaxDeliver:     unlimitedDeliveries,
		MaxAckPending:  conf.Workers * conf.FetchBatch * 2,
	}
}
