package router

import (
	"github.com/gin-gonic/gin"

	"github.com/vosamoilenko/activity-bar-sub003/internal/http/handler"
)

func DigestRouter(router *gin.RouterGroup, handler *handler.DigestHandler) {
	router.GET("", handler.Generate)
}
