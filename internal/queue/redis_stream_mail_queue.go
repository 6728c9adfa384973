package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"theatre-booking/internal/model"
	"theatre-booking/pkg/logger"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	StreamKey          = "mail:stream"
	ConsumerGroupName  = "mail-workers"
	ConsumerNamePrefix = "worker"
	messageField       = "mail"
)

// RedisStreamConfig tunes retry behaviour; zero fields fall back to defaults.
type RedisStreamConfig struct {
	ClaimMinIdleTime   time.Duration // idle time in the PEL before XAUTOCLAIM picks a message up
	MaxRetryCount      int           // deliveries after which a message is dropped as poison
	ReadGroupBlockTime time.Duration // XReadGroup block
}

func defaultRedisStreamConfig() RedisStreamConfig {
	return RedisStreamConfig{
		ClaimMinIdleTime:   5 * time.Second,
		MaxRetryCount:      5,
		ReadGroupBlockTime: 2 * time.Second,
	}
}

type RedisStreamMailQueue struct {
	client       *redis.Client
	streamKey    string
	groupName    string
	consumerName string
	cfg          RedisStreamConfig
}

// NewRedisStreamMailQueue builds the stream-backed queue. A nil config uses the defaults.
func NewRedisStreamMailQueue(client *redis.Client, consumerID string, config *RedisStreamConfig) (MailQueue, error) {
	if consumerID == "" {
		consumerID = uuid.New().String()
	}
	cfg := defaultRedisStreamConfig()
	if config != nil {
		if config.ClaimMinIdleTime > 0 {
			cfg.ClaimMinIdleTime = config.ClaimMinIdleTime
		}
		if config.MaxRetryCount > 0 {
			cfg.MaxRetryCount = config.MaxRetryCount
		}
		if config.ReadGroupBlockTime > 0 {
			cfg.ReadGroupBlockTime = config.ReadGroupBlockTime
		}
	}
	q := &RedisStreamMailQueue{
		client:       client,
		streamKey:    StreamKey,
		groupName:    ConsumerGroupName,
		consumerName: fmt.Sprintf("%s:%s", ConsumerNamePrefix, consumerID),
		cfg:          cfg,
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := q.ensureConsumerGroup(ctx); err != nil {
		return nil, fmt.Errorf("ensure consumer group: %w", err)
	}
	return q, nil
}

func (q *RedisStreamMailQueue) ensureConsumerGroup(ctx context.Context) error {
	err := q.client.XGroupCreateMkStream(ctx, q.streamKey, q.groupName, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return err
	}
	return nil
}

func (q *RedisStreamMailQueue) PublishMail(ctx context.Context, msg *model.MailMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal mail: %w", err)
	}
	_, err = q.client.XAdd(ctx, &redis.XAddArgs{
		Stream: q.streamKey,
		ID:     "*",
		Values: map[string]interface{}{messageField: string(body)},
	}).Result()
	if err != nil {
		return fmt.Errorf("xadd: %w", err)
	}
	return nil
}

func (q *RedisStreamMailQueue) SubscribeMail(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)
	go func() {
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.runAutoClaim(ctx, out)
		}()
		q.runReadLoop(ctx, out)
		// out may only close once the claimer can no longer send
		wg.Wait()
		close(out)
	}()
	return out, nil
}

// runReadLoop only reads new entries; pending ones come back through runAutoClaim.
func (q *RedisStreamMailQueue) runReadLoop(ctx context.Context, out chan<- Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
			q.readAndDeliver(ctx, out)
		}
	}
}

func (q *RedisStreamMailQueue) readAndDeliver(ctx context.Context, out chan<- Delivery) {
	streams, err := q.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    q.groupName,
		Consumer: q.consumerName,
		Streams:  []string{q.streamKey, ">"},
		Count:    10,
		Block:    q.cfg.ReadGroupBlockTime,
	}).Result()

	if err == redis.Nil {
		return
	}
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		logger.WithComponent("mq").Error("XReadGroup failed", zap.Error(err))
		time.Sleep(time.Second)
		return
	}

	for _, stream := range streams {
		if stream.Stream != q.streamKey {
			continue
		}
		if !q.deliver(ctx, out, stream.Messages, false) {
			return
		}
	}
}

// deliver pushes messages to out; false means ctx ended first.
func (q *RedisStreamMailQueue) deliver(ctx context.Context, out chan<- Delivery, msgs []redis.XMessage, redelivered bool) bool {
	for _, msg := range msgs {
		if redelivered && q.exhausted(ctx, msg.ID) {
			continue
		}
		d := q.newDelivery(ctx, msg)
		if d == nil {
			continue
		}
		select {
		case out <- *d:
		case <-ctx.Done():
			return false
		}
	}
	return true
}

// exhausted acks and drops a message delivered MaxRetryCount times or more.
func (q *RedisStreamMailQueue) exhausted(ctx context.Context, messageID string) bool {
	pending, err := q.client.XPendingExt(ctx, &redis.XPendingExtArgs{
		Stream: q.streamKey,
		Group:  q.groupName,
		Start:  messageID,
		End:    messageID,
		Count:  1,
	}).Result()
	if err != nil && err != redis.Nil {
		logger.WithComponent("mq").Warn("XPendingExt failed", zap.String("message_id", messageID), zap.Error(err))
		return false
	}
	if len(pending) == 0 || int(pending[0].RetryCount) < q.cfg.MaxRetryCount {
		return false
	}

	logger.WithComponent("mq").Warn("discard poison message",
		zap.String("message_id", messageID),
		zap.Int64("retries", pending[0].RetryCount),
		zap.Int("max_retries", q.cfg.MaxRetryCount),
	)
	_ = q.client.XAck(ctx, q.streamKey, q.groupName, messageID).Err()
	return true
}

// runAutoClaim periodically takes over messages left unacked longer than ClaimMinIdleTime.
func (q *RedisStreamMailQueue) runAutoClaim(ctx context.Context, out chan<- Delivery) {
	ticker := time.NewTicker(q.cfg.ClaimMinIdleTime)
	defer ticker.Stop()
	cursor := "0-0"

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		claimed, next, err := q.client.XAutoClaim(ctx, &redis.XAutoClaimArgs{
			Stream:   q.streamKey,
			Group:    q.groupName,
			Consumer: q.consumerName,
			MinIdle:  q.cfg.ClaimMinIdleTime,
			Count:    10,
			Start:    cursor,
		}).Result()
		if err != nil && err != redis.Nil {
			if ctx.Err() == nil {
				logger.WithComponent("mq").Error("XAutoClaim failed", zap.Error(err))
			}
			continue
		}

		cursor = next
		if cursor == "" {
			cursor = "0-0"
		}

		if !q.deliver(ctx, out, claimed, true) {
			return
		}
	}
}

func (q *RedisStreamMailQueue) newDelivery(ctx context.Context, msg redis.XMessage) *Delivery {
	body, ok := msg.Values[messageField].(string)
	if !ok {
		logger.WithComponent("mq").Warn("invalid message: missing mail field", zap.String("message_id", msg.ID))
		_ = q.client.XAck(ctx, q.streamKey, q.groupName, msg.ID).Err()
		return nil
	}
	var mail model.MailMessage
	if err := json.Unmarshal([]byte(body), &mail); err != nil {
		logger.WithComponent("mq").Warn("unmarshal mail failed", zap.String("message_id", msg.ID), zap.Error(err))
		_ = q.client.XAck(ctx, q.streamKey, q.groupName, msg.ID).Err()
		return nil
	}
	msgID := msg.ID
	return &Delivery{
		Data: &mail,
		Ack: func() {
			if err := q.client.XAck(ctx, q.streamKey, q.groupName, msgID).Err(); err != nil {
				logger.WithComponent("mq").Error("XAck failed", zap.String("message_id", msgID), zap.Error(err))
			}
		},
		Nack: func(requeue bool) {
			if requeue {
				// stays in the PEL; XAUTOCLAIM redelivers it after ClaimMinIdleTime
				logger.WithComponent("mq").Info("message nack(requeue), will retry", zap.String("message_id", msgID), zap.Duration("claim_min_idle", q.cfg.ClaimMinIdleTime))
				return
			}
			if err := q.client.XAck(ctx, q.streamKey, q.groupName, msgID).Err(); err != nil {
				logger.WithComponent("mq").Error("XAck discard failed", zap.String("message_id", msgID), zap.Error(err))
			}
		},
	}
}
