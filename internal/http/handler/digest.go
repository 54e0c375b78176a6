package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vosamoilenko/activity-bar-sub003/internal/service"
)

type DigestHandler struct {
	service service.DigestService
}

func NewDigestHandler(service service.DigestService) *DigestHandler {
	return &DigestHandler{service: service}
}

func (h *DigestHandler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	var from, to time.Time
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from, expected RFC3339"})
			return
		}
		from = t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to, expected RFC3339"})
			return
		}
		to = t
	}

	result, err := h.service.Generate(ctx, from, to)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate digest", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate digest"})
		return
	}

	c.JSON(http.StatusOK, result)
}
