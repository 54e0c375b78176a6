package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

type SyncMessage struct {
	AccountID   int64
	SyncRunID   int64
	WindowStart time.Time
	WindowEnd   time.Time
	TraceID     *string
	Attempt     int
}

type Producer interface {
	Enqueue(ctx context.Context, msg SyncMessage) error
	Close() error
}

type redisProducer struct {
	client *redis.Client
	stream string
	logger *slog.Logger
}

func NewRedisProducer(client *redis.Client, stream string, logger *slog.Logger) Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return &redisProducer{
		client: client,
		stream: stream,
		logger: logger,
	}
}

func (p *redisProducer) Enqueue(ctx context.Context, msg SyncMessage) error {
	attempt := msg.Attempt
	if attempt <= 0 {
		attempt = 1
	}

	fields := map[string]any{
		"task_type":    string(TaskTypeAccountSync),
		"account_id":   msg.AccountID,
		"sync_run_id":  msg.SyncRunID,
		"window_start": msg.WindowStart.UTC().Format(time.RFC3339),
		"window_end":   msg.WindowEnd.UTC().Format(time.RFC3339),
		"attempt":      attempt,
	}

	if msg.TraceID != nil && *msg.TraceID != "" {
		fields["trace_id"] = *msg.TraceID
	}

	if err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: fields,
	}).Err(); err != nil {
		return fmt.Errorf("enqueue sync: %w", err)
	}

	p.logger.InfoContext(ctx, "enqueued account sync", "account_id", msg.AccountID, "sync_run_id", msg.SyncRunID, "attempt", attempt)
	return nil
}

func (p *redisProducer) Close() error {
	return p.client.Close()
}
