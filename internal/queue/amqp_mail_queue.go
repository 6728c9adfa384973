package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"theatre-booking/internal/model"
	"theatre-booking/pkg/logger"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// AMQPMailQueue publishes to a durable RabbitMQ queue on the default exchange.
type AMQPMailQueue struct {
	url       string
	queueName string
	prefetch  int

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewAMQPMailQueue(url, queueName string) (MailQueue, error) {
	q := &AMQPMailQueue{
		url:       url,
		queueName: queueName,
		prefetch:  20,
	}
	if err := q.connect(); err != nil {
		return nil, err
	}
	return q, nil
}

// connect (re)opens the publishing channel; caller must not hold mu.
func (q *AMQPMailQueue) connect() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.connectLocked()
}

func (q *AMQPMailQueue) connectLocked() error {
	if q.conn != nil && !q.conn.IsClosed() && q.ch != nil && !q.ch.IsClosed() {
		return nil
	}

	conn, err := amqp.Dial(q.url)
	if err != nil {
		return fmt.Errorf("amqp dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("amqp channel: %w", err)
	}

	if err := declareMailQueue(ch, q.queueName); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return err
	}

	q.conn = conn
	q.ch = ch
	return nil
}

func declareMailQueue(ch *amqp.Channel, name string) error {
	// durable, not auto-deleted, not exclusive
	if _, err := ch.QueueDeclare(name, true, false, false, false, nil); err != nil {
		return fmt.Errorf("amqp queue declare: %w", err)
	}
	return nil
}

func (q *AMQPMailQueue) PublishMail(ctx context.Context, msg *model.MailMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal mail: %w", err)
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if err := q.connectLocked(); err != nil {
		return err
	}

	return q.ch.PublishWithContext(ctx, "", q.queueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		MessageId:    msg.ID,
		Body:         body,
	})
}

// SubscribeMail consumes on its own connection and reconnects with backoff until ctx ends.
func (q *AMQPMailQueue) SubscribeMail(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		log := logger.WithComponent("mq")
		backoff := time.Second

		for ctx.Err() == nil {
			err := q.consume(ctx, out)
			if ctx.Err() != nil {
				return
			}
			log.Warn("amqp consumer stopped, reconnecting", zap.Error(err), zap.Duration("backoff", backoff))

			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
		}
	}()

	return out, nil
}

func (q *AMQPMailQueue) consume(ctx context.Context, out chan<- Delivery) error {
	conn, err := amqp.Dial(q.url)
	if err != nil {
		return fmt.Errorf("amqp dial: %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("amqp channel: %w", err)
	}
	defer ch.Close()

	if err := ch.Qos(q.prefetch, 0, false); err != nil {
		return fmt.Errorf("amqp qos: %w", err)
	}
	if err := declareMailQueue(ch, q.queueName); err != nil {
		return err
	}

	msgs, err := ch.Consume(q.queueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("amqp consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return errors.New("amqp deliveries channel closed")
			}

			var mail model.MailMessage
			if err := json.Unmarshal(d.Body, &mail); err != nil {
				logger.WithComponent("mq").Warn("unmarshal mail failed", zap.String("message_id", d.MessageId), zap.Error(err))
				_ = d.Nack(false, false)
				continue
			}

			delivery := d
			select {
			case out <- Delivery{
				Data: &mail,
				Ack:  func() { _ = delivery.Ack(false) },
				Nack: func(requeue bool) { _ = delivery.Nack(false, requeue) },
			}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

func (q *AMQPMailQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.ch != nil {
		_ = q.ch.Close()
	}
	if q.conn != nil {
		return q.conn.Close()
	}
	return nil
}
