package worker

import (
	"context"
	"theatre-booking/internal/mail"
	"theatre-booking/internal/queue"
	"theatre-booking/pkg/logger"

	"go.uber.org/zap"
)

type MailWorker interface {
	// Start subscribes to the queue and processes deliveries in the background until ctx ends.
	Start(ctx context.Context) error
}

type MailWorkerImpl struct {
	sender mail.Sender
	queue  queue.MailQueue
}

func NewMailWorker(sender mail.Sender, queue queue.MailQueue) MailWorker {
	return &MailWorkerImpl{
		sender: sender,
		queue:  queue,
	}
}

func (w *MailWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.SubscribeMail(ctx)
	if err != nil {
		return err
	}

	go func() {
		log := logger.WithComponent("worker")
		for msg := range msgs {
			if err := w.sender.Send(ctx, msg.Data); err != nil {
				// transient provider failure: let the queue redeliver
				log.Warn("send mail failed", zap.String("id", msg.Data.ID), zap.Error(err))
				msg.Nack(true)
				continue
			}
			msg.Ack()
		}
		log.Info("mail worker stopped")
	}()

	return nil
}
