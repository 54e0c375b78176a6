package service

import (
	"context"
	"time"

	"github.com/vosamoilenko/activity-bar-sub003/internal/model"
	"github.com/vosamoilenko/activity-bar-sub003/internal/store"
)

type ActivityQuery struct {
	AccountID int64
	Type      model.ActivityType
	From      time.Time
	To        time.Time
	Limit     int32
}

type ActivityService interface {
	List(ctx context.Context, query ActivityQuery) ([]model.Activity, error)
	Summary(ctx context.Context, accountID int64, from, to time.Time) ([]model.ActivitySummary, error)
}

type activityService struct {
	activities store.ActivityStore
}

func NewActivityService(activities store.ActivityStore) ActivityService {
	return &activityService{activities: activities}
}

func (s *activityService) List(ctx context.Context, query ActivityQuery) ([]model.Activity, error) {
	from, to := normalizeRange(query.From, query.To)
	return s.activities.List(ctx, store.ActivityFilter{
		AccountID: query.AccountID,
		Type:      query.Type,
		From:      from,
		To:        to,
		Limit:     query.Limit,
	})
}

func (s *activityService) Summary(ctx context.Context, accountID int64, from, to time.Time) ([]model.ActivitySummary, error) {
	from, to = normalizeRange(from, to)
	return s.activities.CountByType(ctx, accountID, from, to)
}

// normalizeRange defaults an open range to the last 30 days.
func normalizeRange(from, to time.Time) (time.Time, time.Time) {
	if to.IsZero() {
		to = time.Now().UTC()
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -30)
	}
	return from, to
}
