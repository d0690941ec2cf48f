// Package service 定义业务层接口
// 本文件定义所有 Service 接口，供 Handler 层调用
// 接口设计遵循依赖倒置原则，便于测试和解耦
package service

import (
	"consulado_admin_server/internal/dto/request"
	"consulado_admin_server/internal/dto/respond"
)

// AuthService 管理员认证业务接口
type AuthService interface {
	// Login 密码登录，返回双 Token
	Login(req request.LoginRequest) (*respond.LoginRespond, error)
	// RefreshToken 用 Refresh Token 换取新的双 Token（旋转刷新）
	RefreshToken(req request.RefreshTokenRequest) (*respond.RefreshTokenRespond, error)
}

// MemberService 会员业务接口
// 处理会员档案、编号变更、缴费状态与欠费提醒
type MemberService interface {
	// GetMemberList 按条件过滤并分页获取会员列表，每行附带实时缴费状态
	GetMemberList(req request.GetMemberListRequest) (*respond.GetMemberListRespond, error)
	// GetMemberInfo 获取会员详情
	GetMemberInfo(uuid string) (*respond.GetMemberInfoRespond, error)
	// CreateMember 创建会员
	CreateMember(req request.CreateMemberRequest) (*respond.GetMemberInfoRespond, error)
	// UpdateMember 更新会员档案（不含编号与分会归属）
	UpdateMember(req request.UpdateMemberRequest) error
	// DeleteMembers 批量物理删除会员
	DeleteMembers(uuidList []string) error
	// CheckMemberNumber 校验新编号是否可用（VALID/TAKEN）
	CheckMemberNumber(req request.CheckMemberNumberRequest) (*respond.CheckMemberNumberRespond, error)
	// ChangeMemberNumber 变更会员对外编号（先校验后提交）
	ChangeMemberNumber(req request.ChangeMemberNumberRequest) error
	// SendDuesReminder 向欠费会员发送提醒短信（24 小时节流）
	SendDuesReminder(uuid string) error
	// SetPhotoURL 更新会员照片地址（上传完成后回写）
	SetPhotoURL(uuid, url string) error
}

// ChapterService 分会业务接口
// 处理分会档案与职务一致性校正
type ChapterService interface {
	// GetChapterList 获取全部分会（含会员数统计）
	GetChapterList() ([]respond.ChapterRespond, error)
	// GetChapterInfo 获取分会详情
	GetChapterInfo(uuid string) (*respond.ChapterRespond, error)
	// CreateChapter 创建分会
	CreateChapter(req request.CreateChapterRequest) (*respond.ChapterRespond, error)
	// UpdateChapter 更新分会信息并校正职务一致性
	UpdateChapter(req request.UpdateChapterRequest) error
	// DeleteChapter 删除分会（需名称确认），会员回归总部
	DeleteChapter(req request.DeleteChapterRequest) error
	// SetImageURL 更新分会会徽/横幅地址，field 为 "logo" 或 "banner"
	SetImageURL(uuid, field, url string) error
}

// TransferService 分会调动业务接口
type TransferService interface {
	// CreateTransfer 发起调动申请
	CreateTransfer(req request.CreateTransferRequest) (*respond.TransferRespond, error)
	// UpdateTransferStatus 申请状态流转，批准时执行全部副作用
	UpdateTransferStatus(req request.UpdateTransferStatusRequest) error
	// GetTransferList 分会视角的转入/转出申请列表
	GetTransferList(chapterUuid string) (*respond.GetTransferListRespond, error)
	// GetAllTransfers 全部申请（总部视角）
	GetAllTransfers() ([]respond.TransferRespond, error)
}
