package store

import (
	"context"
	"errors"
	"time"

	"github.com/vosamoilenko/activity-bar-sub003/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// AccountStore defines the contract for provider account data access
type AccountStore interface {
	GetByID(ctx context.Context, id int64) (*model.Account, error)
	GetBySlug(ctx context.Context, slug string) (*model.Account, error)
	Create(ctx context.Context, account *model.Account) (*model.Account, error)
	SetEnabled(ctx context.Context, id int64, enabled bool) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]model.Account, error)
}

// ActivityStore defines the contract for normalized activity data access
type ActivityStore interface {
	GetByID(ctx context.Context, id int64) (*model.Activity, error)
	// Insert stores an activity unless its dedupe key already exists.
	// The bool reports whether a new row was created.
	Insert(ctx context.Context, activity *model.Activity) (bool, error)
	List(ctx context.Context, filter ActivityFilter) ([]model.Activity, error)
	CountByType(ctx context.Context, accountID int64, from, to time.Time) ([]model.ActivitySummary, error)
}

// ActivityFilter narrows activity listings. Zero-valued fields match all.
type ActivityFilter struct {
	AccountID int64
	Type      model.ActivityType
	From      time.Time
	To        time.Time
	Limit     int32
}

// SyncRunStore defines the contract for sync run data access
type SyncRunStore interface {
	GetByID(ctx context.Context, id int64) (*model.SyncRun, error)
	Create(ctx context.Context, run *model.SyncRun) (*model.SyncRun, error)
	// Claim transitions a pending run to running. The bool reports whether
	// the claim succeeded; a completed or failed run cannot be claimed.
	Claim(ctx context.Context, id int64) (bool, *model.SyncRun, error)
	Finish(ctx context.Context, id int64, eventsFetched, activitiesCreated, unclassified int32) error
	Fail(ctx context.Context, id int64, errMsg *string) error
	ListByAccount(ctx context.Context, accountID int64, limit int32) ([]model.SyncRun, error)
}
