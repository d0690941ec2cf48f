package router

import (
	"github.com/gin-gonic/gin"

	"consulado_admin_server/internal/handler"
	"consulado_admin_server/internal/infrastructure/middleware"
)

// RegisterMemberRoutes 注册会员相关路由
func RegisterMemberRoutes(r *gin.Engine, h *handler.Handlers) {
	memberGroup := r.Group("/member")
	memberGroup.Use(middleware.JWTAuth())
	{
		memberGroup.POST("/getMemberList", h.Member.GetMemberList)
		memberGroup.GET("/getMemberInfo", h.Member.GetMemberInfo)
		memberGroup.POST("/createMember", h.Member.CreateMember)
		memberGroup.POST("/updateMember", h.Member.UpdateMember)
		memberGroup.POST("/deleteMembers", h.Member.DeleteMembers)
		memberGroup.POST("/checkMemberNumber", h.Member.CheckMemberNumber)
		memberGroup.POST("/changeMemberNumber", h.Member.ChangeMemberNumber)
		memberGroup.POST("/sendDuesReminder", h.Member.SendDuesReminder)
	}
}
