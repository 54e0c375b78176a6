package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/vosamoilenko/activity-bar-sub003/internal/http/handler"
	"github.com/vosamoilenko/activity-bar-sub003/internal/model"
	"github.com/vosamoilenko/activity-bar-sub003/internal/service"
)

var _ = Describe("SyncHandler", func() {
	var (
		router *gin.Engine
		svc    *mockSyncService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockSyncService{}
		h := handler.NewSyncHandler(svc, "X-Trace-Id")

		router.POST("/accounts/:id/sync", h.Trigger)
		router.GET("/accounts/:id/sync-runs", h.ListRuns)
		router.GET("/sync-runs/:id", h.GetRun)
	})

	It("triggers a sync with an empty body", func() {
		var got service.EnqueueSyncParams
		svc.enqueueFn = func(_ context.Context, params service.EnqueueSyncParams) (*model.SyncRun, error) {
			got = params
			return &model.SyncRun{
				ID:          99,
				AccountID:   params.AccountID,
				WindowStart: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
				WindowEnd:   time.Date(2026, 8, 8, 0, 0, 0, 0, time.UTC),
				Status:      model.SyncRunStatusPending,
			}, nil
		}

		req := httptest.NewRequest(http.MethodPost, "/accounts/5/sync", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusAccepted))
		Expect(got.AccountID).To(Equal(int64(5)))
		Expect(got.WindowStart.IsZero()).To(BeTrue())

		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["sync_run_id"]).To(Equal(float64(99)))
		Expect(resp["status"]).To(Equal("pending"))
	})

	It("passes an explicit window through", func() {
		var got service.EnqueueSyncParams
		svc.enqueueFn = func(_ context.Context, params service.EnqueueSyncParams) (*model.SyncRun, error) {
			got = params
			return &model.SyncRun{ID: 1, AccountID: params.AccountID, Status: model.SyncRunStatusPending}, nil
		}

		body, _ := json.Marshal(map[string]string{
			"window_start": "2026-08-01T00:00:00Z",
			"window_end":   "2026-08-08T00:00:00Z",
		})
		req := httptest.NewRequest(http.MethodPost, "/accounts/5/sync", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusAccepted))
		Expect(got.WindowStart).To(Equal(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)))
		Expect(got.WindowEnd).To(Equal(time.Date(2026, 8, 8, 0, 0, 0, 0, time.UTC)))
	})

	It("forwards the trace header", func() {
		var got service.EnqueueSyncParams
		svc.enqueueFn = func(_ context.Context, params service.EnqueueSyncParams) (*model.SyncRun, error) {
			got = params
			return &model.SyncRun{ID: 1, Status: model.SyncRunStatusPending}, nil
		}

		req := httptest.NewRequest(http.MethodPost, "/accounts/5/sync", nil)
		req.Header.Set("X-Trace-Id", "trace-abc")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusAccepted))
		Expect(got.TraceID).NotTo(BeNil())
		Expect(*got.TraceID).To(Equal("trace-abc"))
	})

	It("returns 404 for an unknown account", func() {
		svc.enqueueFn = func(_ context.Context, _ service.EnqueueSyncParams) (*model.SyncRun, error) {
			return nil, service.ErrAccountNotFound
		}

		req := httptest.NewRequest(http.MethodPost, "/accounts/5/sync", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("returns 409 for a disabled account", func() {
		svc.enqueueFn = func(_ context.Context, _ service.EnqueueSyncParams) (*model.SyncRun, error) {
			return nil, service.ErrAccountDisabled
		}

		req := httptest.NewRequest(http.MethodPost, "/accounts/5/sync", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusConflict))
	})

	It("returns 400 for an inverted window", func() {
		svc.enqueueFn = func(_ context.Context, _ service.EnqueueSyncParams) (*model.SyncRun, error) {
			return nil, service.ErrInvalidWindow
		}

		req := httptest.NewRequest(http.MethodPost, "/accounts/5/sync", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 404 for an unknown sync run", func() {
		svc.getRunFn = func(_ context.Context, _ int64) (*model.SyncRun, error) {
			return nil, service.ErrSyncRunNotFound
		}

		req := httptest.NewRequest(http.MethodGet, "/sync-runs/99", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("returns 500 when fetching a sync run fails", func() {
		svc.getRunFn = func(_ context.Context, _ int64) (*model.SyncRun, error) {
			return nil, errors.New("connection refused")
		}

		req := httptest.NewRequest(http.MethodGet, "/sync-runs/99", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
	})

	It("fetches a sync run", func() {
		svc.getRunFn = func(_ context.Context, id int64) (*model.SyncRun, error) {
			Expect(id).To(Equal(int64(99)))
			return &model.SyncRun{ID: 99, Status: model.SyncRunStatusCompleted, ActivitiesCreated: 3}, nil
		}

		req := httptest.NewRequest(http.MethodGet, "/sync-runs/99", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["activities_created"]).To(Equal(float64(3)))
	})

	It("lists sync runs with a limit", func() {
		var gotLimit int32
		svc.listRunsFn = func(_ context.Context, accountID int64, limit int32) ([]model.SyncRun, error) {
			Expect(accountID).To(Equal(int64(5)))
			gotLimit = limit
			return []model.SyncRun{{ID: 1}, {ID: 2}}, nil
		}

		req := httptest.NewRequest(http.MethodGet, "/accounts/5/sync-runs?limit=10", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(gotLimit).To(Equal(int32(10)))
		var resp map[string][]map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["sync_runs"]).To(HaveLen(2))
	})

	It("rejects a non-numeric limit", func() {
		req := httptest.NewRequest(http.MethodGet, "/accounts/5/sync-runs?limit=abc", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})
})
