package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	mailmocks "theatre-booking/internal/mail/mocks"
	"theatre-booking/internal/model"
	"theatre-booking/internal/queue"
	"theatre-booking/internal/worker"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func waitFor(t *testing.T, ch <-chan string, want string) {
	t.Helper()
	select {
	case got := <-ch:
		require.Equal(t, want, got)
	case <-time.After(time.Second):
		t.Fatalf("worker did not send %s in time", want)
	}
}

func TestMailWorker_SendsQueuedMail(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := queue.NewMemoryMailQueue(4)
	sent := make(chan string, 1)

	sender := mailmocks.NewMockSender(t)
	sender.EXPECT().Send(mock.Anything, mock.AnythingOfType("*model.MailMessage")).
		Run(func(_ context.Context, msg *model.MailMessage) { sent <- msg.ID }).
		Return(nil).Once()

	require.NoError(t, worker.NewMailWorker(sender, q).Start(ctx))
	require.NoError(t, q.PublishMail(ctx, &model.MailMessage{ID: "mail-1", Destination: "a@example.com"}))

	waitFor(t, sent, "mail-1")
}

func TestMailWorker_RetriesFailedSend(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := queue.NewMemoryMailQueue(4)
	sent := make(chan string, 2)
	record := func(_ context.Context, msg *model.MailMessage) { sent <- msg.ID }

	sender := mailmocks.NewMockSender(t)
	sender.EXPECT().Send(mock.Anything, mock.Anything).Run(record).Return(errors.New("smtp unavailable")).Once()
	sender.EXPECT().Send(mock.Anything, mock.Anything).Run(record).Return(nil).Once()

	require.NoError(t, worker.NewMailWorker(sender, q).Start(ctx))
	require.NoError(t, q.PublishMail(ctx, &model.MailMessage{ID: "mail-2"}))

	waitFor(t, sent, "mail-2")
	waitFor(t, sent, "mail-2")
}

func TestMailWorker_SubscribeError(t *testing.T) {
	q := &failingQueue{err: errors.New("broker down")}
	err := worker.NewMailWorker(mailmocks.NewMockSender(t), q).Start(context.Background())
	require.EqualError(t, err, "broker down")
}

type failingQueue struct {
	queue.MailQueue
	err error
}

func (f *failingQueue) SubscribeMail(ctx context.Context) (<-chan queue.Delivery, error) {
	return nil, f.err
}
