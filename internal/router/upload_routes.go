package router

import (
	"github.com/gin-gonic/gin"

	"consulado_admin_server/internal/handler"
	"consulado_admin_server/internal/infrastructure/middleware"
)

// RegisterUploadRoutes 注册上传相关路由
func RegisterUploadRoutes(r *gin.Engine, h *handler.Handlers) {
	uploadGroup := r.Group("/upload")
	uploadGroup.Use(middleware.JWTAuth())
	{
		uploadGroup.POST("/image", h.Upload.UploadImage)
	}
}
