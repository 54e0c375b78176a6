package worker

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/vosamoilenko/activity-bar-sub003/common/id"
	"github.com/vosamoilenko/activity-bar-sub003/internal/mapper"
	"github.com/vosamoilenko/activity-bar-sub003/internal/model"
	"github.com/vosamoilenko/activity-bar-sub003/internal/queue"
	"github.com/vosamoilenko/activity-bar-sub003/internal/search"
	"github.com/vosamoilenko/activity-bar-sub003/internal/service/provider"
	"github.com/vosamoilenko/activity-bar-sub003/internal/store"
)

// syncProcessor runs one sync: claim the run, fetch the account's events,
// classify them, and store the classified ones as activities. Events whose
// action/target pair has no mapping are counted and dropped.
type syncProcessor struct {
	accounts   store.AccountStore
	activities store.ActivityStore
	syncRuns   store.SyncRunStore
	gitlab     provider.GitLabService
	mapper     mapper.EventMapper
	index      search.Index // nil when search is not configured
	logger     *slog.Logger
}

func NewSyncProcessor(
	accounts store.AccountStore,
	activities store.ActivityStore,
	syncRuns store.SyncRunStore,
	gitlab provider.GitLabService,
	eventMapper mapper.EventMapper,
	index search.Index,
	logger *slog.Logger,
) SyncProcessor {
	if logger == nil {
		logger = slog.Default()
	}
	return &syncProcessor{
		accounts:   accounts,
		activities: activities,
		syncRuns:   syncRuns,
		gitlab:     gitlab,
		mapper:     eventMapper,
		index:      index,
		logger:     logger,
	}
}

func (p *syncProcessor) Process(ctx context.Context, msg queue.Message) error {
	claimed, run, err := p.syncRuns.Claim(ctx, msg.SyncRunID)
	if err != nil {
		return fmt.Errorf("claiming sync run: %w", err)
	}
	if !claimed {
		// Run already completed or failed, nothing to do.
		p.logger.InfoContext(ctx, "sync run not claimable, skipping", "sync_run_id", msg.SyncRunID)
		return nil
	}

	account, err := p.accounts.GetByID(ctx, run.AccountID)
	if err != nil {
		return p.failRun(ctx, run.ID, fmt.Errorf("fetching account: %w", err))
	}
	if !account.IsEnabled {
		return p.failRun(ctx, run.ID, fmt.Errorf("account %d is disabled", account.ID))
	}

	window := model.FetchWindow{Start: run.WindowStart, End: run.WindowEnd}
	events, err := p.gitlab.FetchContributionEvents(ctx, account, window)
	if err != nil {
		// Fetch failures are retryable; the run stays running so a
		// requeued message can claim it again.
		return fmt.Errorf("fetching events: %w", err)
	}

	var created, unclassified int32
	for _, event := range events {
		activityType, ok := p.mapper.Classify(event.ActionName, event.TargetType)
		if !ok {
			unclassified++
			p.logger.DebugContext(ctx, "event not classified",
				"action_name", event.ActionName,
				"target_type", event.TargetType,
				"event_id", event.ID)
			continue
		}

		activity := p.buildActivity(account, event, activityType)
		inserted, err := p.activities.Insert(ctx, activity)
		if err != nil {
			return fmt.Errorf("storing activity: %w", err)
		}
		if !inserted {
			continue
		}
		created++

		if p.index != nil {
			if err := p.index.IndexActivity(ctx, activity); err != nil {
				// Search is best effort; the activity is already stored.
				p.logger.WarnContext(ctx, "failed to index activity",
					"error", err,
					"activity_id", activity.ID)
			}
		}
	}

	if err := p.syncRuns.Finish(ctx, run.ID, int32(len(events)), created, unclassified); err != nil {
		return fmt.Errorf("finishing sync run: %w", err)
	}

	p.logger.InfoContext(ctx, "sync run completed",
		"sync_run_id", run.ID,
		"account_id", account.ID,
		"events_fetched", len(events),
		"activities_created", created,
		"unclassified", unclassified)

	return nil
}

func (p *syncProcessor) buildActivity(account *model.Account, event provider.Event, activityType model.ActivityType) *model.Activity {
	activity := &model.Activity{
		ID:         id.New(),
		AccountID:  account.ID,
		Provider:   account.Provider,
		Type:       activityType,
		ActionName: event.ActionName,
		TargetID:   event.TargetID,
		TargetIID:  event.TargetIID,
		DedupeKey:  computeDedupeKey(account.Provider, event),
		Payload:    event.Raw,
		OccurredAt: event.CreatedAt,
	}

	if event.TargetType != "" {
		targetType := event.TargetType
		activity.TargetType = &targetType
	}
	if event.TargetTitle != "" {
		title := event.TargetTitle
		activity.TargetTitle = &title
	}
	if event.ProjectID != 0 {
		projectID := strconv.FormatInt(event.ProjectID, 10)
		activity.ExternalProjectID = &projectID
	}
	if event.AuthorUsername != "" {
		author := event.AuthorUsername
		activity.AuthorUsername = &author
	}

	return activity
}

// computeDedupeKey prefers the provider's own event ID; events without one
// fall back to a hash of the raw payload.
func computeDedupeKey(prov model.Provider, event provider.Event) string {
	if event.ID != 0 {
		return fmt.Sprintf("%s:event:%d", prov, event.ID)
	}

	hash := sha256.Sum256(event.Raw)
	return fmt.Sprintf("%s:%s", prov, hex.EncodeToString(hash[:]))
}

func (p *syncProcessor) failRun(ctx context.Context, runID int64, cause error) error {
	errMsg := cause.Error()
	if err := p.syncRuns.Fail(ctx, runID, &errMsg); err != nil {
		p.logger.ErrorContext(ctx, "failed to mark sync run failed",
			"error", err,
			"sync_run_id", runID)
	}
	return cause
}
