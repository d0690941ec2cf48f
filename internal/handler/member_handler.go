// 本文件处理会员相关的 API 请求
package handler

import (
	"github.com/gin-gonic/gin"

	"consulado_admin_server/internal/dto/request"
	"consulado_admin_server/internal/service"
	"consulado_admin_server/pkg/errorx"
)

// MemberHandler 会员请求处理器
type MemberHandler struct {
	memberSvc service.MemberService
}

// NewMemberHandler 创建会员处理器实例
func NewMemberHandler(memberSvc service.MemberService) *MemberHandler {
	return &MemberHandler{memberSvc: memberSvc}
}

// GetMemberList 获取会员列表
// POST /member/getMemberList
// chapter_uuid 传 "all" 表示不按分会过滤，空串表示总部会员
func (h *MemberHandler) GetMemberList(c *gin.Context) {
	var req request.GetMemberListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.memberSvc.GetMemberList(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetMemberInfo 获取会员详情
// GET /member/getMemberInfo?uuid=xxx
func (h *MemberHandler) GetMemberInfo(c *gin.Context) {
	uuid := c.Query("uuid")
	if uuid == "" {
		HandleError(c, errorx.ErrInvalidParam)
		return
	}
	data, err := h.memberSvc.GetMemberInfo(uuid)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// CreateMember 创建会员
// POST /member/createMember
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req request.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.memberSvc.CreateMember(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateMember 更新会员档案
// POST /member/updateMember
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	var req request.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.memberSvc.UpdateMember(req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// DeleteMembers 批量删除会员
// POST /member/deleteMembers
func (h *MemberHandler) DeleteMembers(c *gin.Context) {
	var req request.DeleteMembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.memberSvc.DeleteMembers(req.UuidList); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// CheckMemberNumber 校验新编号是否可用
// POST /member/checkMemberNumber
// 响应: respond.CheckMemberNumberRespond（VALID/TAKEN）
func (h *MemberHandler) CheckMemberNumber(c *gin.Context) {
	var req request.CheckMemberNumberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.memberSvc.CheckMemberNumber(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// ChangeMemberNumber 变更会员对外编号
// POST /member/changeMemberNumber
func (h *MemberHandler) ChangeMemberNumber(c *gin.Context) {
	var req request.ChangeMemberNumberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.memberSvc.ChangeMemberNumber(req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// SendDuesReminder 发送欠费提醒短信
// POST /member/sendDuesReminder
func (h *MemberHandler) SendDuesReminder(c *gin.Context) {
	var req request.SendDuesReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.memberSvc.SendDuesReminder(req.Uuid); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
