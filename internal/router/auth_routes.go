package router

import (
	"github.com/gin-gonic/gin"

	"consulado_admin_server/internal/handler"
)

// RegisterAuthRoutes 注册认证相关路由（均为公开接口）
func RegisterAuthRoutes(r *gin.Engine, h *handler.Handlers) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/refreshToken", h.Auth.RefreshToken)
	}
}
