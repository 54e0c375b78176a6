package model

import (
	"encoding/json"
	"time"
)

// ActivityType is the provider-agnostic tag the aggregator groups
// heterogeneous provider events under.
type ActivityType string

const (
	ActivityCommit             ActivityType = "commit"
	ActivityPullRequest        ActivityType = "pull_request"
	ActivityCodeReview         ActivityType = "code_review"
	ActivityIssue              ActivityType = "issue"
	ActivityIssueComment       ActivityType = "issue_comment"
	ActivityPullRequestComment ActivityType = "pull_request_comment"
)

// Activity is one normalized unit of developer activity. Payload keeps the
// raw provider event for audit and reprocessing.
type Activity struct {
	ID                int64           `json:"id"`
	AccountID         int64           `json:"account_id"`
	Provider          Provider        `json:"provider"`
	Type              ActivityType    `json:"type"`
	ActionName        string          `json:"action_name"`
	TargetType        *string         `json:"target_type,omitempty"`
	TargetID          *int64          `json:"target_id,omitempty"`
	TargetIID         *int64          `json:"target_iid,omitempty"`
	TargetTitle       *string         `json:"target_title,omitempty"`
	ExternalProjectID *string         `json:"external_project_id,omitempty"`
	AuthorUsername    *string         `json:"author_username,omitempty"`
	DedupeKey         string          `json:"dedupe_key"`
	Payload           json.RawMessage `json:"payload,omitempty"`
	OccurredAt        time.Time       `json:"occurred_at"`
	CreatedAt         time.Time       `json:"created_at"`
}

// ActivitySummary is a per-type count over a query window.
type ActivitySummary struct {
	Type  ActivityType `json:"type"`
	Count int64        `json:"count"`
}
