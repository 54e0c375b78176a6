package worker_test

import (
	"context"
	"time"

	"github.com/vosamoilenko/activity-bar-sub003/internal/model"
	"github.com/vosamoilenko/activity-bar-sub003/internal/queue"
	"github.com/vosamoilenko/activity-bar-sub003/internal/service/provider"
	"github.com/vosamoilenko/activity-bar-sub003/internal/store"
)

type mockConsumer struct {
	readFn      func(ctx context.Context, calls int) ([]queue.Message, error)
	readCalls   int
	ackedIDs    []string
	requeued    []string
	requeueErrs []string
	dlqIDs      []string
	dlqErrs     []string
}

func (m *mockConsumer) Read(ctx context.Context) ([]queue.Message, error) {
	m.readCalls++
	if m.readFn != nil {
		return m.readFn(ctx, m.readCalls)
	}
	return []queue.Message{}, nil
}

func (m *mockConsumer) Ack(ctx context.Context, msg queue.Message) error {
	m.ackedIDs = append(m.ackedIDs, msg.ID)
	return nil
}

func (m *mockConsumer) Requeue(ctx context.Context, msg queue.Message, errMsg string) error {
	m.requeued = append(m.requeued, msg.ID)
	m.requeueErrs = append(m.requeueErrs, errMsg)
	return nil
}

func (m *mockConsumer) SendDLQ(ctx context.Context, msg queue.Message, errMsg string) error {
	m.dlqIDs = append(m.dlqIDs, msg.ID)
	m.dlqErrs = append(m.dlqErrs, errMsg)
	return nil
}

type mockProcessor struct {
	processFn func(ctx context.Context, msg queue.Message) error
	processed []queue.Message
}

func (m *mockProcessor) Process(ctx context.Context, msg queue.Message) error {
	m.processed = append(m.processed, msg)
	if m.processFn != nil {
		return m.processFn(ctx, msg)
	}
	return nil
}

type mockAccountStore struct {
	getByIDFn func(ctx context.Context, id int64) (*model.Account, error)
}

func (m *mockAccountStore) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockAccountStore) GetBySlug(ctx context.Context, slug string) (*model.Account, error) {
	return nil, store.ErrNotFound
}

func (m *mockAccountStore) Create(ctx context.Context, account *model.Account) (*model.Account, error) {
	return account, nil
}

func (m *mockAccountStore) SetEnabled(ctx context.Context, id int64, enabled bool) error {
	return nil
}

func (m *mockAccountStore) Delete(ctx context.Context, id int64) error {
	return nil
}

func (m *mockAccountStore) List(ctx context.Context) ([]model.Account, error) {
	return []model.Account{}, nil
}

type mockActivityStore struct {
	insertFn func(ctx context.Context, activity *model.Activity) (bool, error)
	inserted []*model.Activity
}

func (m *mockActivityStore) GetByID(ctx context.Context, id int64) (*model.Activity, error) {
	return nil, store.ErrNotFound
}

func (m *mockActivityStore) Insert(ctx context.Context, activity *model.Activity) (bool, error) {
	m.inserted = append(m.inserted, activity)
	if m.insertFn != nil {
		return m.insertFn(ctx, activity)
	}
	return true, nil
}

func (m *mockActivityStore) List(ctx context.Context, filter store.ActivityFilter) ([]model.Activity, error) {
	return []model.Activity{}, nil
}

func (m *mockActivityStore) CountByType(ctx context.Context, accountID int64, from, to time.Time) ([]model.ActivitySummary, error) {
	return []model.ActivitySummary{}, nil
}

type mockSyncRunStore struct {
	claimFn  func(ctx context.Context, id int64) (bool, *model.SyncRun, error)
	finishFn func(ctx context.Context, id int64, eventsFetched, activitiesCreated, unclassified int32) error
	failedID *int64
	failMsg  *string
}

func (m *mockSyncRunStore) GetByID(ctx context.Context, id int64) (*model.SyncRun, error) {
	return nil, store.ErrNotFound
}

func (m *mockSyncRunStore) Create(ctx context.Context, run *model.SyncRun) (*model.SyncRun, error) {
	return run, nil
}

func (m *mockSyncRunStore) Claim(ctx context.Context, id int64) (bool, *model.SyncRun, error) {
	if m.claimFn != nil {
		return m.claimFn(ctx, id)
	}
	return false, nil, nil
}

func (m *mockSyncRunStore) Finish(ctx context.Context, id int64, eventsFetched, activitiesCreated, unclassified int32) error {
	if m.finishFn != nil {
		return m.finishFn(ctx, id, eventsFetched, activitiesCreated, unclassified)
	}
	return nil
}

func (m *mockSyncRunStore) Fail(ctx context.Context, id int64, errMsg *string) error {
	m.failedID = &id
	m.failMsg = errMsg
	return nil
}

func (m *mockSyncRunStore) ListByAccount(ctx context.Context, accountID int64, limit int32) ([]model.SyncRun, error) {
	return []model.SyncRun{}, nil
}

type mockGitLabService struct {
	fetchFn func(ctx context.Context, account *model.Account, window model.FetchWindow) ([]provider.Event, error)
}

func (m *mockGitLabService) TestConnection(ctx context.Context, baseURL, token string) (*provider.ConnectionInfo, error) {
	return &provider.ConnectionInfo{Username: "dev"}, nil
}

func (m *mockGitLabService) FetchContributionEvents(ctx context.Context, account *model.Account, window model.FetchWindow) ([]provider.Event, error) {
	if m.fetchFn != nil {
		return m.fetchFn(ctx, account, window)
	}
	return []provider.Event{}, nil
}
