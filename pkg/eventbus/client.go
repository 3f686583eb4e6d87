package eventbus

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/QuangTung97/user-replica/config"
	"github.com/QuangTung97/user-replica/model"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"
)

// Headers set on dead-lettered messages
const (
	HeaderOriginalSubject = "X-Original-Subject"
	HeaderDeliveryCount   = "X-Delivery-Count"
	HeaderError           = "X-Error"
	HeaderQueue           = "X-Queue"
)

// DeadLetter is a message that exhausted its deliveries
type DeadLetter struct {
	Subject         string
	OriginalSubject string
	Queue           string
	Deliveries      uint64
	Err             string
	Data            []byte
}

// Client is the process wide broker connection, created at start and closed at shutdown
type Client struct {
	nc     *nats.Conn
	js     jetstream.JetStream
	logger *zap.Logger

	publishTimeout time.Duration
}

// Connect ...
func Connect(conf config.NATSConfig, logger *zap.Logger) (*Client, error) {
	nc, err := nats.Connect(conf.URL,
		nats.Name(conf.Name),
		nats.Timeout(conf.ConnectTimeout),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("NATS disconnected", zap.Error(err))
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("NATS reconnected")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("create jetstream: %w", err)
	}

	publishTimeout := conf.PublishTimeout
	if publishTimeout <= 0 {
		publishTimeout = 5 * time.Second
	}

	return &Client{
		nc:     nc,
		js:     js,
		logger: logger,

		publishTimeout: publishTimeout,
	}, nil
}

// Close ...
func (c *Client) Close() {
	c.nc.Close()
}

// EnsureStream declares the exchange, used by publishers
func (c *Client) EnsureStream(ctx context.Context, topo Topology) error {
	_, err := c.js.CreateOrUpdateStream(ctx, topo.StreamConfig())
	if err != nil {
		return fmt.Errorf("create stream %s: %w", topo.StreamName(), err)
	}
	return nil
}

// EnsureConsumerTopology declares the exchange, the dead-letter stream and the durable queue
func (c *Client) EnsureConsumerTopology(
	ctx context.Context, topo Topology, conf config.SyncConfig, eventTypes []model.EventType,
) (Source, error) {
	if err := c.EnsureStream(ctx, topo); err != nil {
		return nil, err
	}

	_, err := c.js.CreateOrUpdateStream(ctx, topo.DeadLetterStreamConfig())
	if err != nil {
		return nil, fmt.Errorf("create stream %s: %w", topo.DeadLetterStreamName(), err)
	}

	cons, err := c.js.CreateOrUpdateConsumer(ctx, topo.StreamName(), topo.ConsumerConfig(conf, eventTypes))
	if err != nil {
		return nil, fmt.Errorf("create consumer %s: %w", topo.ConsumerName(), err)
	}

	c.logger.Info("declared consumer topology",
		zap.String("stream", topo.StreamName()),
		zap.String("queue", topo.QueueName()),
		zap.String("dead_letter", topo.DeadLetterSubject()),
	)
	return NewJetStreamSource(cons), nil
}

// Send publishes data, msgID is used for broker side deduplication
func (c *Client) Send(ctx context.Context, subject string, msgID string, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, c.publishTimeout)
	defer cancel()

	var opts []jetstream.PublishOpt
	if msgID != "" {
		opts = append(opts, jetstream.WithMsgID(msgID))
	}

	_, err := c.js.Publish(ctx, subject, data, opts...)
	if err != nil {
		return fmt.Errorf("publish to %s: %w", subject, err)
	}
	return nil
}

// PublishDeadLetter keeps the original payload and describes the failure in headers
func (c *Client) PublishDeadLetter(ctx context.Context, letter DeadLetter) error {
	ctx, cancel := context.WithTimeout(ctx, c.publishTimeout)
	defer cancel()

	msg := nats.NewMsg(letter.Subject)
	msg.Data = letter.Data
	msg.Header.Set(HeaderOriginalSubject, letter.OriginalSubject)
	msg.Header.Set(HeaderDeliveryCount, strconv.FormatUint(letter.Deliveries, 10))
	msg.Header.Set(HeaderError, letter.Err)
	msg.Header.Set(HeaderQueue, letter.Queue)

	_, err := c.js.PublishMsg(ctx, msg)
	if err != nil {
		return fmt.Errorf("publish dead letter to %s: %w", letter.Subject, err)
	}
	return nil
}
