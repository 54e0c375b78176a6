package worker_test

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/vosamoilenko/activity-bar-sub003/common/id"
	"github.com/vosamoilenko/activity-bar-sub003/internal/mapper"
	"github.com/vosamoilenko/activity-bar-sub003/internal/model"
	"github.com/vosamoilenko/activity-bar-sub003/internal/queue"
	"github.com/vosamoilenko/activity-bar-sub003/internal/service/provider"
	"github.com/vosamoilenko/activity-bar-sub003/internal/worker"
)

var _ = Describe("SyncProcessor", func() {
	var (
		processor      worker.SyncProcessor
		mockAccounts   *mockAccountStore
		mockActivities *mockActivityStore
		mockRuns       *mockSyncRunStore
		mockGitLab     *mockGitLabService
		ctx            context.Context
		msg            queue.Message
	)

	windowStart := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2026, 8, 8, 0, 0, 0, 0, time.UTC)

	BeforeEach(func() {
		ctx = context.Background()
		mockAccounts = &mockAccountStore{}
		mockActivities = &mockActivityStore{}
		mockRuns = &mockSyncRunStore{}
		mockGitLab = &mockGitLabService{}

		err := id.Init(1)
		Expect(err).NotTo(HaveOccurred())

		msg = queue.Message{
			ID:          "1-0",
			TaskType:    queue.TaskTypeAccountSync,
			AccountID:   42,
			SyncRunID:   100,
			WindowStart: windowStart,
			WindowEnd:   windowEnd,
			Attempt:     1,
		}

		mockRuns.claimFn = func(ctx context.Context, runID int64) (bool, *model.SyncRun, error) {
			return true, &model.SyncRun{
				ID:          runID,
				AccountID:   42,
				WindowStart: windowStart,
				WindowEnd:   windowEnd,
				Status:      model.SyncRunStatusRunning,
			}, nil
		}

		mockAccounts.getByIDFn = func(ctx context.Context, accountID int64) (*model.Account, error) {
			return &model.Account{
				ID:        accountID,
				Provider:  model.ProviderGitLab,
				BaseURL:   "https://gitlab.com",
				Token:     "glpat-secret",
				IsEnabled: true,
			}, nil
		}

		processor = worker.NewSyncProcessor(
			mockAccounts,
			mockActivities,
			mockRuns,
			mockGitLab,
			mapper.NewGitLabEventMapper(),
			nil,
			nil,
		)
	})

	gitlabEvent := func(eventID int64, actionName, targetType, title string) provider.Event {
		return provider.Event{
			ID:          eventID,
			ActionName:  actionName,
			TargetType:  targetType,
			TargetTitle: title,
			ProjectID:   7,
			CreatedAt:   windowStart.Add(time.Hour),
			Raw:         json.RawMessage(`{"id":` + "1" + `}`),
		}
	}

	Context("with a mix of classified and unclassified events", func() {
		BeforeEach(func() {
			mockGitLab.fetchFn = func(ctx context.Context, account *model.Account, window model.FetchWindow) ([]provider.Event, error) {
				return []provider.Event{
					gitlabEvent(1, "pushed", "", ""),
					gitlabEvent(2, "merged", "MergeRequest", "Add retries"),
					gitlabEvent(3, "approved", "MergeRequest", "Fix race"),
					gitlabEvent(4, "joined", "", ""),
					gitlabEvent(5, "created", "WikiPage", "Runbook"),
				}, nil
			}
		})

		It("stores the classified events and counts the rest", func() {
			var finished struct {
				fetched, created, unclassified int32
			}
			mockRuns.finishFn = func(ctx context.Context, runID int64, eventsFetched, activitiesCreated, unclassified int32) error {
				finished.fetched = eventsFetched
				finished.created = activitiesCreated
				finished.unclassified = unclassified
				return nil
			}

			err := processor.Process(ctx, msg)

			Expect(err).NotTo(HaveOccurred())
			Expect(mockActivities.inserted).To(HaveLen(3))
			Expect(finished.fetched).To(Equal(int32(5)))
			Expect(finished.created).To(Equal(int32(3)))
			Expect(finished.unclassified).To(Equal(int32(2)))

			Expect(mockActivities.inserted[0].Type).To(Equal(model.ActivityCommit))
			Expect(mockActivities.inserted[1].Type).To(Equal(model.ActivityPullRequest))
			Expect(mockActivities.inserted[2].Type).To(Equal(model.ActivityCodeReview))
		})

		It("derives the dedupe key from the provider event id", func() {
			err := processor.Process(ctx, msg)

			Expect(err).NotTo(HaveOccurred())
			Expect(mockActivities.inserted[0].DedupeKey).To(Equal("gitlab:event:1"))
			Expect(mockActivities.inserted[1].DedupeKey).To(Equal("gitlab:event:2"))
		})

		It("does not count duplicates as created", func() {
			mockActivities.insertFn = func(ctx context.Context, activity *model.Activity) (bool, error) {
				return false, nil
			}

			var created int32 = -1
			mockRuns.finishFn = func(ctx context.Context, runID int64, eventsFetched, activitiesCreated, unclassified int32) error {
				created = activitiesCreated
				return nil
			}

			err := processor.Process(ctx, msg)

			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(Equal(int32(0)))
		})
	})

	Context("when the run is not claimable", func() {
		BeforeEach(func() {
			mockRuns.claimFn = func(ctx context.Context, runID int64) (bool, *model.SyncRun, error) {
				return false, nil, nil
			}
		})

		It("skips without fetching", func() {
			fetched := false
			mockGitLab.fetchFn = func(ctx context.Context, account *model.Account, window model.FetchWindow) ([]provider.Event, error) {
				fetched = true
				return nil, nil
			}

			err := processor.Process(ctx, msg)

			Expect(err).NotTo(HaveOccurred())
			Expect(fetched).To(BeFalse())
		})
	})

	Context("when the account is disabled", func() {
		BeforeEach(func() {
			mockAccounts.getByIDFn = func(ctx context.Context, accountID int64) (*model.Account, error) {
				return &model.Account{ID: accountID, Provider: model.ProviderGitLab, IsEnabled: false}, nil
			}
		})

		It("fails the run", func() {
			err := processor.Process(ctx, msg)

			Expect(err).To(HaveOccurred())
			Expect(mockRuns.failedID).NotTo(BeNil())
			Expect(*mockRuns.failedID).To(Equal(int64(100)))
			Expect(mockRuns.failMsg).NotTo(BeNil())
		})
	})

	Context("when fetching events fails", func() {
		BeforeEach(func() {
			mockGitLab.fetchFn = func(ctx context.Context, account *model.Account, window model.FetchWindow) ([]provider.Event, error) {
				return nil, errors.New("gitlab unavailable")
			}
		})

		It("returns the error without failing the run", func() {
			err := processor.Process(ctx, msg)

			Expect(err).To(HaveOccurred())
			Expect(mockRuns.failedID).To(BeNil())
		})
	})
})
