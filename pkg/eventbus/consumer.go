package eventbus

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/QuangTung97/user-replica/config"
	"github.com/QuangTung97/user-replica/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// Handler applies one message, a returned error makes the message redelivered
type Handler interface {
	Handle(ctx context.Context, data []byte) error
}

// HandlerFunc ...
type HandlerFunc func(ctx context.Context, data []byte) error

// Handle ...
func (f HandlerFunc) Handle(ctx context.Context, data []byte) error {
	return f(ctx, data)
}

const (
	resultAck        = "ack"
	resultRetry      = "retry"
	resultDeadLetter = "dead_letter"
)

const fetchErrorSleep = time.Second

// Consumer runs a fetch loop and a fixed set of workers.
// Messages with the same entity id are always handled by the same worker, in fetch order.
type Consumer struct {
	source  Source
	dlq     DeadLetterSink
	handler Handler
	topo    Topology
	conf    config.SyncConfig
	logger  *zap.Logger

	consumeTotal *prometheus.CounterVec

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewConsumer ...
func NewConsumer(
	source Source, dlq DeadLetterSink, handler Handler,
	topo Topology, conf config.SyncConfig,
	logger *zap.Logger, registerer prometheus.Registerer,
) *Consumer {
	if conf.Workers <= 0 {
		conf.Workers = 1
	}
	if conf.FetchBatch <= 0 {
		conf.FetchBatch = 1
	}

	return &Consumer{
		source:  source,
		dlq:     dlq,
		handler: handler,
		topo:    topo,
		conf:    conf,
		logger:  logger.With(zap.String("queue", topo.QueueName())),

		consumeTotal: promauto.With(registerer).NewCounterVec(prometheus.CounterOpts{
			Name: "user_replica_consume_total",
			Help: "Number of consumed deliveries by result",
			ConstLabels: prometheus.Labels{
				"queue": topo.QueueName(),
			},
		}, []string{"result"}),
	}
}

// Start runs in background until Stop is called.
// Stop cancels only the fetch loop, fetched deliveries are still handled with a live context.
func (c *Consumer) Start(ctx context.Context) {
	processCtx := context.WithoutCancel(ctx)
	ctx, c.cancel = context.WithCancel(ctx)

	workers := make([]chan Delivery, c.conf.Workers)
	for i := range workers {
		workers[i] = make(chan Delivery, c.conf.FetchBatch)
	}

	c.wg.Add(len(workers))
	for _, ch := range workers {
		go func(ch <-chan Delivery) {
			defer c.wg.Done()
			for d := range ch {
				c.process(processCtx, d)
			}
		}(ch)
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer func() {
			for _, ch := range workers {
				close(ch)
			}
		}()
		c.fetchLoop(ctx, workers)
	}()

	c.logger.Info("started consumer", zap.Int("workers", c.conf.Workers))
}

// Stop cancels the fetch loop and waits for in flight deliveries
func (c *Consumer) Stop() {
	if c.cancel != nil {
		c.cancel()
	}
	c.wg.Wait()
	c.logger.Info("stopped consumer")
}

func (c *Consumer) fetchLoop(ctx context.Context, workers []chan Delivery) {
	for {
		if ctx.Err() != nil {
			return
		}

		deliveries, err := c.source.Fetch(ctx, c.conf.FetchBatch, c.conf.FetchMaxWait)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			c.logger.Warn("fetch messages error", zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(fetchErrorSleep):
			}
		}

		for _, d := range deliveries {
			workers[c.workerOf(d.Data())] <- d
		}
	}
}

func (c *Consumer) workerOf(data []byte) int {
	id, ok := peekEntityID(data)
	if !ok {
		return 0
	}
	return util.PartitionOf(id, c.conf.Workers)
}

func peekEntityID(data []byte) (int64, bool) {
	var v struct {
		EntityID int64 `json:"entityId"`
		UserID   int64 `json:"userId"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return 0, false
	}
	if v.EntityID == 0 {
		return v.UserID, true
	}
	return v.EntityID, true
}

func (c *Consumer) process(ctx context.Context, d Delivery) {
	err := c.handler.Handle(ctx, d.Data())
	if err == nil {
		if ackErr := d.Ack(); ackErr != nil {
			c.logger.Warn("ack error", zap.String("subject", d.Subject()), zap.Error(ackErr))
		}
		c.consumeTotal.WithLabelValues(resultAck).Inc()
		return
	}

	n := d.NumDelivered()
	logger := c.logger.With(
		zap.String("subject", d.Subject()),
		zap.Uint64("num_delivered", n),
		zap.Error(err),
	)

	if c.conf.MaxDeliver <= 0 || n < uint64(c.conf.MaxDeliver) {
		logger.Warn("handle message failed, will be redelivered")
		c.retry(d, n, logger)
		c.consumeTotal.WithLabelValues(resultRetry).Inc()
		return
	}

	logger.Error("handle message failed on last delivery, move to dead letter")

	dlqErr := c.dlq.PublishDeadLetter(ctx, DeadLetter{
		Subject:         c.topo.DeadLetterSubject(),
		OriginalSubject: d.Subject(),
		Queue:           c.topo.QueueName(),
		Deliveries:      n,
		Err:             err.Error(),
		Data:            d.Data(),
	})
	if dlqErr != nil {
		logger.Error("publish dead letter error, will be redelivered", zap.NamedError("dlq_error", dlqErr))
		c.retry(d, n, logger)
		c.consumeTotal.WithLabelValues(resultRetry).Inc()
		return
	}

	if termErr := d.Term(); termErr != nil {
		logger.Warn("term error", zap.NamedError("term_error", termErr))
	}
	c.consumeTotal.WithLabelValues(resultDeadLetter).Inc()
}

func (c *Consumer) retry(d Delivery, numDelivered uint64, logger *zap.Logger) {
	delay := backoffDelay(c.conf.Backoff, numDelivered)

	var err error
	if delay <= 0 {
		err = d.Nak()
	} else {
		err = d.NakWithDelay(delay)
	}
	if err != nil {
		logger.Warn("nak error", zap.NamedError("nak_error", err))
	}
}

// backoffDelay returns backoff[n-1], the last value is repeated
func backoffDelay(backoff []time.Duration, numDelivered uint64) time.Duration {
	if len(backoff) == 0 {
		return 0
	}
	index := int(numDelivered) - 1
	if index < 0 {
		index = 0
	}
	if index >= len(backoff) {
		index = len(backoff) - 1
	}
	return backoff[index]
}
