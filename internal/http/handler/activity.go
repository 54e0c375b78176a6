package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vosamoilenko/activity-bar-sub003/internal/model"
	"github.com/vosamoilenko/activity-bar-sub003/internal/search"
	"github.com/vosamoilenko/activity-bar-sub003/internal/service"
)

type ActivityHandler struct {
	service service.ActivityService
	index   search.Index // nil when search is not configured
}

func NewActivityHandler(service service.ActivityService, index search.Index) *ActivityHandler {
	return &ActivityHandler{
		service: service,
		index:   index,
	}
}

func (h *ActivityHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	query, ok := h.parseQuery(c)
	if !ok {
		return
	}

	activities, err := h.service.List(ctx, query)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list activities", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list activities"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"activities": activities})
}

func (h *ActivityHandler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	query, ok := h.parseQuery(c)
	if !ok {
		return
	}

	summary, err := h.service.Summary(ctx, query.AccountID, query.From, query.To)
	if err != nil {
		slog.ErrorContext(ctx, "failed to summarize activities", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to summarize activities"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

func (h *ActivityHandler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	if h.index == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "search is not configured"})
		return
	}

	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	hits, err := h.index.Search(ctx, query, limit)
	if err != nil {
		slog.ErrorContext(ctx, "failed to search activities", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search activities"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"hits": hits})
}

func (h *ActivityHandler) parseQuery(c *gin.Context) (service.ActivityQuery, bool) {
	var query service.ActivityQuery

	if raw := c.Query("account_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account_id"})
			return query, false
		}
		query.AccountID = id
	}

	query.Type = model.ActivityType(c.Query("type"))

	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from, expected RFC3339"})
			return query, false
		}
		query.From = t
	}

	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to, expected RFC3339"})
			return query, false
		}
		query.To = t
	}

	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return query, false
		}
		query.Limit = int32(parsed)
	}

	return query, true
}
