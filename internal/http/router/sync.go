package router

import (
	"github.com/gin-gonic/gin"

	"github.com/vosamoilenko/activity-bar-sub003/internal/http/handler"
)

func SyncRouter(router *gin.RouterGroup, handler *handler.SyncHandler) {
	router.POST("/accounts/:id/sync", handler.Trigger)
	router.GET("/accounts/:id/sync-runs", handler.ListRuns)
	router.GET("/sync-runs/:id", handler.GetRun)
}
