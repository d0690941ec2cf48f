package router

import (
	"github.com/gin-gonic/gin"

	"consulado_admin_server/internal/handler"
	"consulado_admin_server/internal/infrastructure/middleware"
)

// RegisterTransferRoutes 注册调动相关路由
func RegisterTransferRoutes(r *gin.Engine, h *handler.Handlers) {
	transferGroup := r.Group("/transfer")
	transferGroup.Use(middleware.JWTAuth())
	{
		transferGroup.POST("/createTransfer", h.Transfer.CreateTransfer)
		transferGroup.POST("/updateTransferStatus", h.Transfer.UpdateTransferStatus)
		transferGroup.GET("/getTransferList", h.Transfer.GetTransferList)
		transferGroup.GET("/getAllTransfers", h.Transfer.GetAllTransfers)
	}
}
