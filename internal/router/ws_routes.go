package router

import (
	"github.com/gin-gonic/gin"

	"consulado_admin_server/internal/handler"
)

// RegisterWebSocketRoutes 注册 WebSocket 路由
// Token 校验在 Handler 内完成（浏览器 WebSocket 无法带 Header）
func RegisterWebSocketRoutes(r *gin.Engine) {
	r.GET("/ws", handler.WsConnect)
}
