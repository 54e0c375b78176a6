package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/vosamoilenko/activity-bar-sub003/internal/http/handler"
	"github.com/vosamoilenko/activity-bar-sub003/internal/model"
	"github.com/vosamoilenko/activity-bar-sub003/internal/search"
	"github.com/vosamoilenko/activity-bar-sub003/internal/service"
)

var _ = Describe("ActivityHandler", func() {
	var (
		router *gin.Engine
		svc    *mockActivityService
		index  *mockSearchIndex
	)

	setup := func(withSearch bool) {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockActivityService{}
		index = &mockSearchIndex{}

		var h *handler.ActivityHandler
		if withSearch {
			h = handler.NewActivityHandler(svc, index)
		} else {
			h = handler.NewActivityHandler(svc, nil)
		}

		router.GET("/activities", h.List)
		router.GET("/activities/summary", h.Summary)
		router.GET("/activities/search", h.Search)
	}

	BeforeEach(func() {
		setup(true)
	})

	It("lists activities with query filters", func() {
		var got service.ActivityQuery
		svc.listFn = func(_ context.Context, query service.ActivityQuery) ([]model.Activity, error) {
			got = query
			return []model.Activity{{ID: 1, Type: model.ActivityCommit}}, nil
		}

		req := httptest.NewRequest(http.MethodGet,
			"/activities?account_id=5&type=commit&from=2026-08-01T00:00:00Z&limit=10", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(got.AccountID).To(Equal(int64(5)))
		Expect(got.Type).To(Equal(model.ActivityCommit))
		Expect(got.From).To(Equal(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)))
		Expect(got.Limit).To(Equal(int32(10)))

		var resp map[string][]map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["activities"]).To(HaveLen(1))
	})

	It("rejects an unparseable from timestamp", func() {
		req := httptest.NewRequest(http.MethodGet, "/activities?from=yesterday", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("summarizes activity counts", func() {
		svc.summaryFn = func(_ context.Context, accountID int64, _, _ time.Time) ([]model.ActivitySummary, error) {
			Expect(accountID).To(Equal(int64(5)))
			return []model.ActivitySummary{
				{Type: model.ActivityCommit, Count: 12},
				{Type: model.ActivityPullRequest, Count: 3},
			}, nil
		}

		req := httptest.NewRequest(http.MethodGet, "/activities/summary?account_id=5", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp map[string][]map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["summary"]).To(HaveLen(2))
	})

	It("searches activity titles", func() {
		index.searchFn = func(_ context.Context, query string, limit int) ([]search.Hit, error) {
			Expect(query).To(Equal("rate limiter"))
			Expect(limit).To(Equal(5))
			return []search.Hit{{ActivityID: 7, Type: "pull_request", TargetTitle: "Add rate limiter"}}, nil
		}

		req := httptest.NewRequest(http.MethodGet, "/activities/search?q=rate+limiter&limit=5", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp map[string][]map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["hits"]).To(HaveLen(1))
	})

	It("requires a search query", func() {
		req := httptest.NewRequest(http.MethodGet, "/activities/search", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 503 when search is not configured", func() {
		setup(false)

		req := httptest.NewRequest(http.MethodGet, "/activities/search?q=anything", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
	})
})
