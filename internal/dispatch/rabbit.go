// Package dispatch publishes cancellation jobs to RabbitMQ. The
// publisher is the CancellationDispatcher port implementation; the
// matching consumer lives in internal/worker.
package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/logger"

	"github.com/carlosallexandre/gostack-gobarber/internal/domain"
)

// CancellationQueue is the durable queue shared with the worker.
const CancellationQueue = "gobarber.cancellations"

type RabbitDispatcher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	logger  logger.Logger
	mu      sync.Mutex
}

func NewRabbitDispatcher(url string, log logger.Logger) (*RabbitDispatcher, error) {
	if url == "" {
		log.Warn("rabbitmq url is empty, cancellation dispatch disabled")
		return &RabbitDispatcher{channel: nil, logger: log}, nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if _, err = ch.QueueDeclare(
		CancellationQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	log.Info("rabbitmq dispatcher connected",
		logger.String("queue", CancellationQueue),
	)

	return &RabbitDispatcher{
		conn:    conn,
		channel: ch,
		queue:   CancellationQueue,
		logger:  log,
	}, nil
}

func (d *RabbitDispatcher) EnqueueCancellation(ctx context.Context, job *domain.CancellationJob) error {
	if d.channel == nil {
		d.logger.Debug("cancellation job skipped (dispatcher disabled)",
			logger.String("appointment_id", job.Appointment.ID),
		)
		return nil
	}

	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal cancellation job: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	err = d.channel.PublishWithContext(ctx,
		"",      // default exchange
		d.queue, // routing key = queue
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish cancellation job: %w", err)
	}

	d.logger.Debug("cancellation job enqueued",
		logger.String("appointment_id", job.Appointment.ID),
	)

	return nil
}

func (d *RabbitDispatcher) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.channel != nil {
		if err := d.channel.Close(); err != nil {
			d.logger.Warn("error closing rabbitmq channel", logger.String("error", err.Error()))
		}
	}
	if d.conn != nil {
		return d.conn.Close()
	}

	return nil
}
