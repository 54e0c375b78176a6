package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/vosamoilenko/activity-bar-sub003/core/db/sqlc"
	"github.com/vosamoilenko/activity-bar-sub003/internal/model"
)

type syncRunStore struct {
	queries *sqlc.Queries
}

func newSyncRunStore(queries *sqlc.Queries) SyncRunStore {
	return &syncRunStore{queries: queries}
}

func (s *syncRunStore) GetByID(ctx context.Context, id int64) (*model.SyncRun, error) {
	row, err := s.queries.GetSyncRun(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toSyncRunModel(row), nil
}

func (s *syncRunStore) Create(ctx context.Context, run *model.SyncRun) (*model.SyncRun, error) {
	row, err := s.queries.CreateSyncRun(ctx, sqlc.CreateSyncRunParams{
		ID:          run.ID,
		AccountID:   run.AccountID,
		WindowStart: toTimestamptz(run.WindowStart),
		WindowEnd:   toTimestamptz(run.WindowEnd),
	})
	if err != nil {
		return nil, err
	}
	return toSyncRunModel(row), nil
}

func (s *syncRunStore) Claim(ctx context.Context, id int64) (bool, *model.SyncRun, error) {
	row, err := s.queries.StartSyncRun(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Run already finished or failed
			return false, nil, nil
		}
		return false, nil, err
	}
	return true, toSyncRunModel(row), nil
}

func (s *syncRunStore) Finish(ctx context.Context, id int64, eventsFetched, activitiesCreated, unclassified int32) error {
	return s.queries.FinishSyncRun(ctx, sqlc.FinishSyncRunParams{
		ID:                id,
		EventsFetched:     eventsFetched,
		ActivitiesCreated: activitiesCreated,
		Unclassified:      unclassified,
	})
}

func (s *syncRunStore) Fail(ctx context.Context, id int64, errMsg *string) error {
	return s.queries.FailSyncRun(ctx, sqlc.FailSyncRunParams{
		ID:    id,
		Error: errMsg,
	})
}

func (s *syncRunStore) ListByAccount(ctx context.Context, accountID int64, limit int32) ([]model.SyncRun, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.queries.ListSyncRunsByAccount(ctx, sqlc.ListSyncRunsByAccountParams{
		AccountID: accountID,
		Limit:     limit,
	})
	if err != nil {
		return nil, err
	}
	runs := make([]model.SyncRun, 0, len(rows))
	for _, row := range rows {
		runs = append(runs, *toSyncRunModel(row))
	}
	return runs, nil
}

func toSyncRunModel(row sqlc.SyncRun) *model.SyncRun {
	run := &model.SyncRun{
		ID:                row.ID,
		AccountID:         row.AccountID,
		WindowStart:       row.WindowStart.Time,
		WindowEnd:         row.WindowEnd.Time,
		Status:            model.SyncRunStatus(row.Status),
		EventsFetched:     row.EventsFetched,
		ActivitiesCreated: row.ActivitiesCreated,
		Unclassified:      row.Unclassified,
		Error:             row.Error,
		CreatedAt:         row.CreatedAt.Time,
	}
	if row.StartedAt.Valid {
		t := row.StartedAt.Time
		run.StartedAt = &t
	}
	if row.FinishedAt.Valid {
		t := row.FinishedAt.Time
		run.FinishedAt = &t
	}
	return run
}
