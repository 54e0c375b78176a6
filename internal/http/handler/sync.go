package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/vosamoilenko/activity-bar-sub003/internal/http/dto"
	"github.com/vosamoilenko/activity-bar-sub003/internal/service"
)

type SyncHandler struct {
	service     service.SyncService
	traceHeader string
}

func NewSyncHandler(service service.SyncService, traceHeader string) *SyncHandler {
	return &SyncHandler{
		service:     service,
		traceHeader: traceHeader,
	}
}

func (h *SyncHandler) Trigger(c *gin.Context) {
	ctx := c.Request.Context()

	accountID, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.TriggerSyncRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	traceID := c.GetHeader(h.traceHeader)
	if traceID == "" {
		if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.IsValid() {
			traceID = spanCtx.TraceID().String()
		}
	}

	params := service.EnqueueSyncParams{AccountID: accountID}
	if req.WindowStart != nil {
		params.WindowStart = *req.WindowStart
	}
	if req.WindowEnd != nil {
		params.WindowEnd = *req.WindowEnd
	}
	if traceID != "" {
		params.TraceID = &traceID
	}

	run, err := h.service.Enqueue(ctx, params)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
		case errors.Is(err, service.ErrAccountDisabled):
			c.JSON(http.StatusConflict, gin.H{"error": "account is disabled"})
		case errors.Is(err, service.ErrInvalidWindow):
			c.JSON(http.StatusBadRequest, gin.H{"error": "window end must be after window start"})
		default:
			slog.ErrorContext(ctx, "failed to enqueue sync", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to enqueue sync"})
		}
		return
	}

	c.JSON(http.StatusAccepted, dto.TriggerSyncResponse{
		SyncRunID:   run.ID,
		AccountID:   run.AccountID,
		WindowStart: run.WindowStart,
		WindowEnd:   run.WindowEnd,
		Status:      string(run.Status),
	})
}

func (h *SyncHandler) GetRun(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := paramID(c)
	if !ok {
		return
	}

	run, err := h.service.GetRun(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrSyncRunNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "sync run not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to fetch sync run", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch sync run"})
		return
	}

	c.JSON(http.StatusOK, run)
}

func (h *SyncHandler) ListRuns(c *gin.Context) {
	ctx := c.Request.Context()

	accountID, ok := paramID(c)
	if !ok {
		return
	}

	limit := int32(50)
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = int32(parsed)
	}

	runs, err := h.service.ListRuns(ctx, accountID, limit)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to list sync runs", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list sync runs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sync_runs": runs})
}
