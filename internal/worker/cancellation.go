// Package worker consumes cancellation jobs from the queue and sends
// the cancellation email. It runs next to the HTTP server and stops
// with the app context.
package worker

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/logger"

	"github.com/carlosallexandre/gostack-gobarber/internal/dispatch"
	"github.com/carlosallexandre/gostack-gobarber/internal/domain"
)

type Mailer interface {
	SendCancellationEmail(ctx context.Context, job *domain.CancellationJob) error
}

type CancellationWorker struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	mailer  Mailer
	logger  logger.Logger
}

func New(url string, mailer Mailer, logger logger.Logger) (*CancellationWorker, error) {
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
		dispatch.CancellationQueue,
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

	return &CancellationWorker{
		conn:    conn,
		channel: ch,
		queue:   dispatch.CancellationQueue,
		mailer:  mailer,
		logger:  logger,
	}, nil
}

func (w *CancellationWorker) Start(ctx context.Context) error {
	deliveries, err := w.channel.Consume(
		w.queue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume queue: %w", err)
	}

	w.logger.Info("cancellation worker started",
		logger.String("queue", w.queue),
	)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("cancellation worker stopped")
			return nil
		case d, ok := <-deliveries:
			if !ok {
				w.logger.Warn("cancellation queue channel closed")
				return nil
			}
			w.handle(ctx, d)
		}
	}
}

func (w *CancellationWorker) handle(ctx context.Context, d amqp.Delivery) {
	var job domain.CancellationJob
	if err := json.Unmarshal(d.Body, &job); err != nil {
		w.logger.Error("failed to decode cancellation job",
			logger.String("error", err.Error()),
		)
		_ = d.Nack(false, false) // broken payload, do not requeue
		return
	}

	if err := w.mailer.SendCancellationEmail(ctx, &job); err != nil {
		w.logger.Error("failed to send cancellation email",
			logger.String("appointment_id", job.Appointment.ID),
			logger.String("error", err.Error()),
		)
		_ = d.Nack(false, false)
		return
	}

	w.logger.Info("cancellation email sent",
		logger.String("appointment_id", job.Appointment.ID),
	)
	_ = d.Ack(false)
}

func (w *CancellationWorker) Close() error {
	if w.channel != nil {
		if err := w.channel.Close(); err != nil {
			w.logger.Warn("error closing worker channel", logger.String("error", err.Error()))
		}
	}
	if w.conn != nil {
		return w.conn.Close()
	}

	return nil
}
