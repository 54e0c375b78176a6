package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/vosamoilenko/activity-bar-sub003/common/id"
	"github.com/vosamoilenko/activity-bar-sub003/internal/model"
	"github.com/vosamoilenko/activity-bar-sub003/internal/queue"
	"github.com/vosamoilenko/activity-bar-sub003/internal/store"
)

var (
	ErrAccountDisabled = errors.New("account is disabled")
	ErrInvalidWindow   = errors.New("window end must be after window start")
	ErrSyncRunNotFound = errors.New("sync run not found")
)

// defaultWindowDays bounds a sync request that omits the fetch window.
const defaultWindowDays = 7

type EnqueueSyncParams struct {
	AccountID   int64
	WindowStart time.Time
	WindowEnd   time.Time
	TraceID     *string
}

type SyncService interface {
	// Enqueue creates a pending sync run and schedules it for the worker.
	Enqueue(ctx context.Context, params EnqueueSyncParams) (*model.SyncRun, error)
	GetRun(ctx context.Context, id int64) (*model.SyncRun, error)
	ListRuns(ctx context.Context, accountID int64, limit int32) ([]model.SyncRun, error)
}

type syncService struct {
	accounts store.AccountStore
	syncRuns store.SyncRunStore
	txRunner TxRunner
	queue    queue.Producer
	logger   *slog.Logger
}

func NewSyncService(accounts store.AccountStore, syncRuns store.SyncRunStore, txRunner TxRunner, queue queue.Producer, logger *slog.Logger) SyncService {
	if logger == nil {
		logger = slog.Default()
	}
	return &syncService{
		accounts: accounts,
		syncRuns: syncRuns,
		txRunner: txRunner,
		queue:    queue,
		logger:   logger,
	}
}

func (s *syncService) Enqueue(ctx context.Context, params EnqueueSyncParams) (*model.SyncRun, error) {
	account, err := s.accounts.GetByID(ctx, params.AccountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("fetching account: %w", err)
	}
	if !account.IsEnabled {
		return nil, ErrAccountDisabled
	}
	if account.Provider != model.ProviderGitLab {
		return nil, fmt.Errorf("sync not supported for provider %q", account.Provider)
	}

	// Each bound defaults independently so a partial window never falls
	// back to the zero time and an unbounded fetch.
	window := model.FetchWindow{Start: params.WindowStart, End: params.WindowEnd}
	if window.End.IsZero() {
		window.End = time.Now().UTC()
	}
	if window.Start.IsZero() {
		window.Start = window.End.AddDate(0, 0, -defaultWindowDays)
	}
	if !window.End.After(window.Start) {
		return nil, ErrInvalidWindow
	}

	var run *model.SyncRun
	if err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		var err error
		run, err = sp.SyncRuns().Create(ctx, &model.SyncRun{
			ID:          id.New(),
			AccountID:   account.ID,
			WindowStart: window.Start,
			WindowEnd:   window.End,
		})
		if err != nil {
			return fmt.Errorf("creating sync run: %w", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	if err := s.queue.Enqueue(ctx, queue.SyncMessage{
		AccountID:   account.ID,
		SyncRunID:   run.ID,
		WindowStart: window.Start,
		WindowEnd:   window.End,
		TraceID:     params.TraceID,
		Attempt:     1,
	}); err != nil {
		return nil, fmt.Errorf("enqueueing sync: %w", err)
	}

	s.logger.InfoContext(ctx, "sync run scheduled", "account_id", account.ID, "sync_run_id", run.ID)
	return run, nil
}

func (s *syncService) GetRun(ctx context.Context, id int64) (*model.SyncRun, error) {
	run, err := s.syncRuns.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSyncRunNotFound
		}
		return nil, fmt.Errorf("fetching sync run: %w", err)
	}
	return run, nil
}

func (s *syncService) ListRuns(ctx context.Context, accountID int64, limit int32) ([]model.SyncRun, error) {
	if _, err := s.accounts.GetByID(ctx, accountID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return s.syncRuns.ListByAccount(ctx, accountID, limit)
}
