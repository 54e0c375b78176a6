package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vosamoilenko/activity-bar-sub003/internal/http/dto"
	"github.com/vosamoilenko/activity-bar-sub003/internal/service"
)

type AccountHandler struct {
	service service.AccountService
}

func NewAccountHandler(service service.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

func (h *AccountHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid create account request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := h.service.Create(ctx, service.CreateAccountParams{
		Name:        req.Name,
		Provider:    req.Provider,
		BaseURL:     req.BaseURL,
		Token:       req.Token,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, service.ErrSlugTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "account with this name already exists"})
			return
		}
		slog.WarnContext(ctx, "failed to create account", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, account)
}

func (h *AccountHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	accounts, err := h.service.List(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list accounts", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list accounts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"accounts": accounts})
}

func (h *AccountHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := paramID(c)
	if !ok {
		return
	}

	account, err := h.service.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to fetch account", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch account"})
		return
	}

	c.JSON(http.StatusOK, account)
}

func (h *AccountHandler) SetEnabled(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.SetAccountEnabledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.SetEnabled(ctx, id, *req.Enabled); err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to update account", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update account"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"enabled": *req.Enabled})
}

func (h *AccountHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, id); err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to delete account", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete account"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AccountHandler) TestConnection(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := paramID(c)
	if !ok {
		return
	}

	result, err := h.service.TestConnection(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
			return
		}
		// Upstream rejection is a result, not a server fault.
		c.JSON(http.StatusOK, dto.TestConnectionResponse{
			Connected: false,
			Error:     err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.TestConnectionResponse{
		Connected: true,
		Username:  result.Username,
		Name:      result.Name,
	})
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
