// 本文件处理 WebSocket 连接请求
package handler

import (
	"github.com/gin-gonic/gin"

	ws "consulado_admin_server/internal/gateway/websocket"
	"consulado_admin_server/pkg/errorx"
	"consulado_admin_server/pkg/util/jwt"
)

// WsConnect 建立管理端推送连接
// GET /ws?token=xxx
// 浏览器 WebSocket API 无法自定义 Header，Token 走查询参数
func WsConnect(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		HandleError(c, errorx.New(errorx.CodeUnauthorized, "缺少 Token"))
		return
	}
	claims, err := jwt.ParseToken(token)
	if err != nil || claims.Subject != "access_token" {
		HandleError(c, errorx.New(errorx.CodeUnauthorized, "Token 已过期或无效"))
		return
	}
	ws.NewClientInit(c, claims.AdminID)
}
