package router

import (
	"github.com/gin-gonic/gin"

	"github.com/vosamoilenko/activity-bar-sub003/internal/http/handler"
	"github.com/vosamoilenko/activity-bar-sub003/internal/http/middleware"
	"github.com/vosamoilenko/activity-bar-sub003/internal/search"
	"github.com/vosamoilenko/activity-bar-sub003/internal/service"
)

type RouterConfig struct {
	AdminAPIKey     string
	TraceHeaderName string
	DigestEnabled   bool
	SearchIndex     search.Index // nil when search is not configured
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.Use(middleware.AdminAuth(cfg.AdminAPIKey))
	{
		accountHandler := handler.NewAccountHandler(services.Accounts())
		AccountRouter(v1.Group("/accounts"), accountHandler)

		activityHandler := handler.NewActivityHandler(services.Activities(), cfg.SearchIndex)
		ActivityRouter(v1.Group("/activities"), activityHandler)

		syncHandler := handler.NewSyncHandler(services.Sync(), cfg.TraceHeaderName)
		SyncRouter(v1, syncHandler)

		if cfg.DigestEnabled {
			digestHandler := handler.NewDigestHandler(services.Digest())
			DigestRouter(v1.Group("/digest"), digestHandler)
		}
	}
}
