package router

import (
	"github.com/gin-gonic/gin"

	"consulado_admin_server/internal/handler"
	"consulado_admin_server/internal/infrastructure/middleware"
)

// RegisterChapterRoutes 注册分会相关路由
func RegisterChapterRoutes(r *gin.Engine, h *handler.Handlers) {
	chapterGroup := r.Group("/chapter")
	chapterGroup.Use(middleware.JWTAuth())
	{
		chapterGroup.GET("/getChapterList", h.Chapter.GetChapterList)
		chapterGroup.GET("/getChapterInfo", h.Chapter.GetChapterInfo)
		chapterGroup.POST("/createChapter", h.Chapter.CreateChapter)
		chapterGroup.POST("/updateChapter", h.Chapter.UpdateChapter)
		chapterGroup.POST("/deleteChapter", h.Chapter.DeleteChapter)
	}
}
