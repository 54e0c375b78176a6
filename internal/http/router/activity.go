package router

import (
	"github.com/gin-gonic/gin"

	"github.com/vosamoilenko/activity-bar-sub003/internal/http/handler"
)

func ActivityRouter(router *gin.RouterGroup, handler *handler.ActivityHandler) {
	router.GET("", handler.List)
	router.GET("/summary", handler.Summary)
	router.GET("/search", handler.Search)
}
