// Package router 提供 HTTP 路由注册
// 本文件是路由注册的入口，聚合所有子模块的路由
package router

import (
	"github.com/gin-gonic/gin"

	"consulado_admin_server/internal/handler"
)

// RegisterRoutes 注册所有路由
// 在 https_server.Init() 中调用，按模块分别注册各个路由组
func RegisterRoutes(r *gin.Engine, h *handler.Handlers) {
	RegisterAuthRoutes(r, h)     // 认证路由
	RegisterMemberRoutes(r, h)   // 会员路由
	RegisterChapterRoutes(r, h)  // 分会路由
	RegisterTransferRoutes(r, h) // 调动路由
	RegisterUploadRoutes(r, h)   // 上传路由
	RegisterWebSocketRoutes(r)   // WebSocket 路由
}
