package dto

import "time"

type TriggerSyncRequest struct {
	WindowStart *time.Time `json:"window_start,omitempty"`
	WindowEnd   *time.Time `json:"window_end,omitempty"`
}

type TriggerSyncResponse struct {
	SyncRunID   int64     `json:"sync_run_id"`
	AccountID   int64     `json:"account_id"`
	WindowStart time.Time `json:"window_start"`
	WindowEnd   time.Time `json:"window_end"`
	Status      string    `json:"status"`
}
