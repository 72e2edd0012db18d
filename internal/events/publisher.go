package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/saeid-a/HealthMetricsBack/internal/models"
)

const publishTimeout = 5 * time.Second

// Publisher emits measurement-created events to an AMQP queue. The
// connection is established lazily on first publish and re-established after
// broker failures; a failed publish is reported to the caller, who treats it
// as best-effort.
type Publisher struct {
	url   string
	queue string

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
}

type measurementCreatedEvent struct {
	Type        string              `json:"type"`
	Measurement *models.Measurement `json:"measurement"`
}

func NewPublisher(url, queue string) *Publisher {
	return &Publisher{
		url:   url,
		queue: queue,
	}
}

func (p *Publisher) MeasurementCreated(measurement *models.Measurement) error {
	payload, err := json.Marshal(measurementCreatedEvent{
		Type:        "measurement_created",
		Measurement: measurement,
	})
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	return p.publish(payload)
}

func (p *Publisher) publish(payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensureChannel(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	err := p.channel.PublishWithContext(
		ctx,
		"",      // exchange
		p.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        payload,
		},
	)
	if err != nil {
		p.reset()
		return fmt.Errorf("publish to %s: %w", p.queue, err)
	}
	return nil
}

func (p *Publisher) ensureChannel() error {
	if p.channel != nil && !p.channel.IsClosed() {
		return nil
	}
	p.reset()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("dial amqp: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("open channel: %w", err)
	}

	if _, err := channel.QueueDeclare(
		p.queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	); err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return fmt.Errorf("declare queue %s: %w", p.queue, err)
	}

	p.conn = conn
	p.channel = channel
	return nil
}

func (p *Publisher) reset() {
	if p.channel != nil {
		_ = p.channel.Close()
		p.channel = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

func (p *Publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
}
