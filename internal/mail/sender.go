package mail

import (
	"context"
	"theatre-booking/internal/model"
	"theatre-booking/pkg/logger"

	"go.uber.org/zap"
)

// Sender delivers a queued message to its destination.
type Sender interface {
	Send(ctx context.Context, msg *model.MailMessage) error
}

// LogSender writes the message to the log instead of handing it to a provider.
type LogSender struct {
	from string
}

func NewLogSender(from string) Sender {
	return &LogSender{from: from}
}

func (s *LogSender) Send(ctx context.Context, msg *model.MailMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	logger.WithComponent("mail").Info("magic link mail",
		zap.String("id", msg.ID),
		zap.String("from", s.from),
		zap.String("to", msg.Destination),
		zap.String("subject", msg.Subject),
		zap.String("link", msg.Link),
	)
	return nil
}
