package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/vosamoilenko/activity-bar-sub003/core/db/sqlc"
	"github.com/vosamoilenko/activity-bar-sub003/internal/model"
)

type activityStore struct {
	queries *sqlc.Queries
}

func newActivityStore(queries *sqlc.Queries) ActivityStore {
	return &activityStore{queries: queries}
}

func (s *activityStore) GetByID(ctx context.Context, id int64) (*model.Activity, error) {
	row, err := s.queries.GetActivity(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toActivityModel(row), nil
}

func (s *activityStore) Insert(ctx context.Context, activity *model.Activity) (bool, error) {
	rowsAffected, err := s.queries.InsertActivity(ctx, sqlc.InsertActivityParams{
		ID:                activity.ID,
		AccountID:         activity.AccountID,
		Provider:          string(activity.Provider),
		ActivityType:      string(activity.Type),
		ActionName:        activity.ActionName,
		TargetType:        activity.TargetType,
		TargetID:          activity.TargetID,
		TargetIid:         activity.TargetIID,
		TargetTitle:       activity.TargetTitle,
		ExternalProjectID: activity.ExternalProjectID,
		AuthorUsername:    activity.AuthorUsername,
		DedupeKey:         activity.DedupeKey,
		Payload:           activity.Payload,
		OccurredAt:        toTimestamptz(activity.OccurredAt),
	})
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

func (s *activityStore) List(ctx context.Context, filter ActivityFilter) ([]model.Activity, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.queries.ListActivities(ctx, sqlc.ListActivitiesParams{
		AccountID:    filter.AccountID,
		ActivityType: string(filter.Type),
		OccurredAt:   toTimestamptz(filter.From),
		OccurredAt2:  toTimestamptz(filter.To),
		Limit:        limit,
	})
	if err != nil {
		return nil, err
	}
	activities := make([]model.Activity, 0, len(rows))
	for _, row := range rows {
		activities = append(activities, *toActivityModel(row))
	}
	return activities, nil
}

func (s *activityStore) CountByType(ctx context.Context, accountID int64, from, to time.Time) ([]model.ActivitySummary, error) {
	rows, err := s.queries.CountActivitiesByType(ctx, sqlc.CountActivitiesByTypeParams{
		AccountID:   accountID,
		OccurredAt:  toTimestamptz(from),
		OccurredAt2: toTimestamptz(to),
	})
	if err != nil {
		return nil, err
	}
	summaries := make([]model.ActivitySummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, model.ActivitySummary{
			Type:  model.ActivityType(row.ActivityType),
			Count: row.Count,
		})
	}
	return summaries, nil
}

func toActivityModel(row sqlc.Activity) *model.Activity {
	return &model.Activity{
		ID:                row.ID,
		AccountID:         row.AccountID,
		Provider:          model.Provider(row.Provider),
		Type:              model.ActivityType(row.ActivityType),
		ActionName:        row.ActionName,
		TargetType:        row.TargetType,
		TargetID:          row.TargetID,
		TargetIID:         row.TargetIid,
		TargetTitle:       row.TargetTitle,
		ExternalProjectID: row.ExternalProjectID,
		AuthorUsername:    row.AuthorUsername,
		DedupeKey:         row.DedupeKey,
		Payload:           row.Payload,
		OccurredAt:        row.OccurredAt.Time,
		CreatedAt:         row.CreatedAt.Time,
	}
}

func toTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
