package request

// CreateTransferRequest 发起分会调动申请
// ToChapterUuid 为空串表示调回总部
type CreateTransferRequest struct {
	MemberUuid    string `json:"member_uuid" binding:"required"`
	ToChapterUuid string `json:"to_chapter_uuid"`
	Comment       string `json:"comment" binding:"omitempty,max=500"`
}

// UpdateTransferStatusRequest 调动申请状态流转
// Status 只接受三个终态之一
type UpdateTransferStatusRequest struct {
	Uuid   string `json:"uuid" binding:"required"`
	Status string `json:"status" binding:"required,oneof=Approved Rejected Cancelled"`
}

// GetTransferListRequest 分会视角的调动申请列表
type GetTransferListRequest struct {
	ChapterUuid string `json:"chapter_uuid"`
}
