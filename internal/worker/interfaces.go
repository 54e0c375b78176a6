package worker

import (
	"context"

	"github.com/vosamoilenko/activity-bar-sub003/internal/queue"
)

// Consumer abstracts the message queue for testability.
type Consumer interface {
	Read(ctx context.Context) ([]queue.Message, error)
	Ack(ctx context.Context, msg queue.Message) error
	Requeue(ctx context.Context, msg queue.Message, errMsg string) error
	SendDLQ(ctx context.Context, msg queue.Message, errMsg string) error
}

// SyncProcessor abstracts the fetch-classify-store pass for testability.
type SyncProcessor interface {
	Process(ctx context.Context, msg queue.Message) error
}
