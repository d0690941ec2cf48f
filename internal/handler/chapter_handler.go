// 本文件处理分会相关的 API 请求
package handler

import (
	"github.com/gin-gonic/gin"

	"consulado_admin_server/internal/dto/request"
	"consulado_admin_server/internal/service"
	"consulado_admin_server/pkg/errorx"
)

// ChapterHandler 分会请求处理器
type ChapterHandler struct {
	chapterSvc service.ChapterService
}

// NewChapterHandler 创建分会处理器实例
func NewChapterHandler(chapterSvc service.ChapterService) *ChapterHandler {
	return &ChapterHandler{chapterSvc: chapterSvc}
}

// GetChapterList 获取全部分会
// GET /chapter/getChapterList
func (h *ChapterHandler) GetChapterList(c *gin.Context) {
	data, err := h.chapterSvc.GetChapterList()
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetChapterInfo 获取分会详情
// GET /chapter/getChapterInfo?uuid=xxx
func (h *ChapterHandler) GetChapterInfo(c *gin.Context) {
	uuid := c.Query("uuid")
	if uuid == "" {
		HandleError(c, errorx.ErrInvalidParam)
		return
	}
	data, err := h.chapterSvc.GetChapterInfo(uuid)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// CreateChapter 创建分会
// POST /chapter/createChapter
func (h *ChapterHandler) CreateChapter(c *gin.Context) {
	var req request.CreateChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.chapterSvc.CreateChapter(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateChapter 更新分会信息
// POST /chapter/updateChapter
func (h *ChapterHandler) UpdateChapter(c *gin.Context) {
	var req request.UpdateChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.chapterSvc.UpdateChapter(req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// DeleteChapter 删除分会（需名称确认短语）
// POST /chapter/deleteChapter
func (h *ChapterHandler) DeleteChapter(c *gin.Context) {
	var req request.DeleteChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.chapterSvc.DeleteChapter(req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
