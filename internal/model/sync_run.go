package model

import "time"

type SyncRunStatus string

const (
	SyncRunStatusPending   SyncRunStatus = "pending"
	SyncRunStatusRunning   SyncRunStatus = "running"
	SyncRunStatusCompleted SyncRunStatus = "completed"
	SyncRunStatusFailed    SyncRunStatus = "failed"
)

// FetchWindow bounds which provider events a sync retrieves.
type FetchWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SyncRun records one fetch-classify-store pass over an account's events.
// Unclassified counts events whose action/target pair has no mapping; they
// are dropped by policy, not errors.
type SyncRun struct {
	ID                int64         `json:"id"`
	AccountID         int64         `json:"account_id"`
	WindowStart       time.Time     `json:"window_start"`
	WindowEnd         time.Time     `json:"window_end"`
	Status            SyncRunStatus `json:"status"`
	EventsFetched     int32         `json:"events_fetched"`
	ActivitiesCreated int32         `json:"activities_created"`
	Unclassified      int32         `json:"unclassified"`
	Error             *string       `json:"error,omitempty"`
	StartedAt         *time.Time    `json:"started_at,omitempty"`
	FinishedAt        *time.Time    `json:"finished_at,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
}
