package router

import (
	"github.com/gin-gonic/gin"

	"github.com/vosamoilenko/activity-bar-sub003/internal/http/handler"
)

func AccountRouter(router *gin.RouterGroup, handler *handler.AccountHandler) {
	router.POST("", handler.Create)
	router.GET("", handler.List)
	router.GET("/:id", handler.Get)
	router.PATCH("/:id/enabled", handler.SetEnabled)
	router.DELETE("/:id", handler.Delete)
	router.POST("/:id/test-connection", handler.TestConnection)
}
