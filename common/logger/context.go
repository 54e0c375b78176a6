package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within
// a context. Fields flow through context enrichment, so business context
// (account_id, sync_run_id, etc.) shows up in every log statement without
// being threaded through call sites.
type LogFields struct {
	AccountID    *int64  // provider account ID
	SyncRunID    *int64  // sync run that triggered this work
	MessageID    *string // Redis stream message ID
	ActivityType *string // unified activity type (e.g. "commit", "issue")
	Provider     *string // provider ("gitlab", "github")
	Component    string  // component name (e.g. "activitybar.worker.processor")
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking
// precedence. Context timeouts and cancellation are preserved.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.AccountID != nil {
		result.AccountID = next.AccountID
	}
	if next.SyncRunID != nil {
		result.SyncRunID = next.SyncRunID
	}
	if next.MessageID != nil {
		result.MessageID = next.MessageID
	}
	if next.ActivityType != nil {
		result.ActivityType = next.ActivityType
	}
	if next.Provider != nil {
		result.Provider = next.Provider
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value.
// Useful for setting LogFields inline.
func Ptr[T any](v T) *T {
	return &v
}

// Truncate truncates a string to maxLen characters, appending "..." if
// truncated. Useful for logging potentially long payloads.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
