package queue

import (
	"context"
	"theatre-booking/internal/model"
)

type Delivery struct {
	Data *model.MailMessage
	Ack  func()
	Nack func(requeue bool)
}

type MailQueue interface {
	// PublishMail enqueues a message for the mail worker.
	PublishMail(ctx context.Context, msg *model.MailMessage) error
	// SubscribeMail streams deliveries until ctx is cancelled.
	SubscribeMail(ctx context.Context) (<-chan Delivery, error)
}

// MemoryMailQueue is a channel-backed queue for single-process setups and tests.
type MemoryMailQueue struct {
	ch chan *model.MailMessage
}

func NewMemoryMailQueue(bufferSize int) MailQueue {
	return &MemoryMailQueue{
		ch: make(chan *model.MailMessage, bufferSize),
	}
}

func (q *MemoryMailQueue) PublishMail(ctx context.Context, msg *model.MailMessage) error {
	select {
	case q.ch <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *MemoryMailQueue) SubscribeMail(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-q.ch:
				if !ok {
					return
				}

				d := Delivery{
					Data: msg,
					Ack:  func() {},
					Nack: func(requeue bool) {
						if !requeue {
							return
						}
						// never block the consumer on a full buffer
						select {
						case q.ch <- msg:
						default:
						}
					},
				}

				select {
				case out <- d:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
