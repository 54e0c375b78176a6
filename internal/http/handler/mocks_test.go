package handler_test

import (
	"context"
	"time"

	"github.com/vosamoilenko/activity-bar-sub003/internal/model"
	"github.com/vosamoilenko/activity-bar-sub003/internal/search"
	"github.com/vosamoilenko/activity-bar-sub003/internal/service"
)

type mockAccountService struct {
	createFn         func(ctx context.Context, params service.CreateAccountParams) (*model.Account, error)
	getByIDFn        func(ctx context.Context, id int64) (*model.Account, error)
	listFn           func(ctx context.Context) ([]model.Account, error)
	setEnabledFn     func(ctx context.Context, id int64, enabled bool) error
	deleteFn         func(ctx context.Context, id int64) error
	testConnectionFn func(ctx context.Context, id int64) (*service.ConnectionResult, error)
}

func (m *mockAccountService) Create(ctx context.Context, params service.CreateAccountParams) (*model.Account, error) {
	if m.createFn != nil {
		return m.createFn(ctx, params)
	}
	return nil, nil
}

func (m *mockAccountService) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, service.ErrAccountNotFound
}

func (m *mockAccountService) List(ctx context.Context) ([]model.Account, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []model.Account{}, nil
}

func (m *mockAccountService) SetEnabled(ctx context.Context, id int64, enabled bool) error {
	if m.setEnabledFn != nil {
		return m.setEnabledFn(ctx, id, enabled)
	}
	return nil
}

func (m *mockAccountService) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockAccountService) TestConnection(ctx context.Context, id int64) (*service.ConnectionResult, error) {
	if m.testConnectionFn != nil {
		return m.testConnectionFn(ctx, id)
	}
	return &service.ConnectionResult{}, nil
}

type mockSyncService struct {
	enqueueFn  func(ctx context.Context, params service.EnqueueSyncParams) (*model.SyncRun, error)
	getRunFn   func(ctx context.Context, id int64) (*model.SyncRun, error)
	listRunsFn func(ctx context.Context, accountID int64, limit int32) ([]model.SyncRun, error)
}

func (m *mockSyncService) Enqueue(ctx context.Context, params service.EnqueueSyncParams) (*model.SyncRun, error) {
	if m.enqueueFn != nil {
		return m.enqueueFn(ctx, params)
	}
	return nil, nil
}

func (m *mockSyncService) GetRun(ctx context.Context, id int64) (*model.SyncRun, error) {
	if m.getRunFn != nil {
		return m.getRunFn(ctx, id)
	}
	return nil, service.ErrSyncRunNotFound
}

func (m *mockSyncService) ListRuns(ctx context.Context, accountID int64, limit int32) ([]model.SyncRun, error) {
	if m.listRunsFn != nil {
		return m.listRunsFn(ctx, accountID, limit)
	}
	return []model.SyncRun{}, nil
}

type mockActivityService struct {
	listFn    func(ctx context.Context, query service.ActivityQuery) ([]model.Activity, error)
	summaryFn func(ctx context.Context, accountID int64, from, to time.Time) ([]model.ActivitySummary, error)
}

func (m *mockActivityService) List(ctx context.Context, query service.ActivityQuery) ([]model.Activity, error) {
	if m.listFn != nil {
		return m.listFn(ctx, query)
	}
	return []model.Activity{}, nil
}

func (m *mockActivityService) Summary(ctx context.Context, accountID int64, from, to time.Time) ([]model.ActivitySummary, error) {
	if m.summaryFn != nil {
		return m.summaryFn(ctx, accountID, from, to)
	}
	return []model.ActivitySummary{}, nil
}

type mockSearchIndex struct {
	searchFn func(ctx context.Context, query string, limit int) ([]search.Hit, error)
}

func (m *mockSearchIndex) EnsureCollection(ctx context.Context) error { return nil }

func (m *mockSearchIndex) IndexActivity(ctx context.Context, activity *model.Activity) error {
	return nil
}

func (m *mockSearchIndex) Search(ctx context.Context, query string, limit int) ([]search.Hit, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, query, limit)
	}
	return []search.Hit{}, nil
}
