package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/vosamoilenko/activity-bar-sub003/internal/http/handler"
	"github.com/vosamoilenko/activity-bar-sub003/internal/model"
	"github.com/vosamoilenko/activity-bar-sub003/internal/service"
)

var _ = Describe("AccountHandler", func() {
	var (
		router *gin.Engine
		svc    *mockAccountService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockAccountService{}
		h := handler.NewAccountHandler(svc)

		router.POST("/accounts", h.Create)
		router.GET("/accounts", h.List)
		router.GET("/accounts/:id", h.Get)
		router.PATCH("/accounts/:id/enabled", h.SetEnabled)
		router.DELETE("/accounts/:id", h.Delete)
		router.POST("/accounts/:id/test-connection", h.TestConnection)
	})

	It("creates an account", func() {
		svc.createFn = func(_ context.Context, params service.CreateAccountParams) (*model.Account, error) {
			Expect(params.Name).To(Equal("Work GitLab"))
			Expect(params.Provider).To(Equal("gitlab"))
			return &model.Account{
				ID:        1,
				Name:      params.Name,
				Slug:      "work-gitlab",
				Provider:  model.ProviderGitLab,
				BaseURL:   "https://gitlab.com",
				IsEnabled: true,
			}, nil
		}

		body, _ := json.Marshal(map[string]string{
			"name":     "Work GitLab",
			"provider": "gitlab",
			"token":    "glpat-secret",
		})
		req := httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusCreated))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["slug"]).To(Equal("work-gitlab"))
		Expect(resp).NotTo(HaveKey("token"))
	})

	It("returns 400 when required fields are missing", func() {
		body, _ := json.Marshal(map[string]string{"name": "Work GitLab"})
		req := httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 409 when the account name is already taken", func() {
		svc.createFn = func(_ context.Context, _ service.CreateAccountParams) (*model.Account, error) {
			return nil, service.ErrSlugTaken
		}

		body, _ := json.Marshal(map[string]string{
			"name":     "Work GitLab",
			"provider": "gitlab",
			"token":    "glpat-secret",
		})
		req := httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusConflict))
	})

	It("lists accounts", func() {
		svc.listFn = func(_ context.Context) ([]model.Account, error) {
			return []model.Account{{ID: 1, Name: "Work GitLab", Slug: "work-gitlab"}}, nil
		}

		req := httptest.NewRequest(http.MethodGet, "/accounts", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp map[string][]map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["accounts"]).To(HaveLen(1))
	})

	It("returns 404 for an unknown account", func() {
		req := httptest.NewRequest(http.MethodGet, "/accounts/42", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("returns 400 for a non-numeric id", func() {
		req := httptest.NewRequest(http.MethodGet, "/accounts/abc", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("disables an account", func() {
		var gotID int64
		var gotEnabled bool
		svc.setEnabledFn = func(_ context.Context, id int64, enabled bool) error {
			gotID = id
			gotEnabled = enabled
			return nil
		}

		body, _ := json.Marshal(map[string]bool{"enabled": false})
		req := httptest.NewRequest(http.MethodPatch, "/accounts/7/enabled", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(gotID).To(Equal(int64(7)))
		Expect(gotEnabled).To(BeFalse())
	})

	It("deletes an account", func() {
		svc.deleteFn = func(_ context.Context, id int64) error {
			Expect(id).To(Equal(int64(3)))
			return nil
		}

		req := httptest.NewRequest(http.MethodDelete, "/accounts/3", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNoContent))
	})

	It("reports a successful connection test", func() {
		svc.testConnectionFn = func(_ context.Context, _ int64) (*service.ConnectionResult, error) {
			return &service.ConnectionResult{Username: "jdoe", Name: "Jane Doe"}, nil
		}

		req := httptest.NewRequest(http.MethodPost, "/accounts/1/test-connection", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["connected"]).To(BeTrue())
		Expect(resp["username"]).To(Equal("jdoe"))
	})

	It("reports an upstream rejection without a server error", func() {
		svc.testConnectionFn = func(_ context.Context, _ int64) (*service.ConnectionResult, error) {
			return nil, errors.New("401 Unauthorized")
		}

		req := httptest.NewRequest(http.MethodPost, "/accounts/1/test-connection", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["connected"]).To(BeFalse())
		Expect(resp["error"]).To(ContainSubstring("401"))
	})
})
