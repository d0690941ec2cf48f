package request

// GetMemberListRequest 会员列表查询
// ChapterUuid 为 "all" 时不按分会过滤，空串表示归属总部的会员
type GetMemberListRequest struct {
	ChapterUuid string `json:"chapter_uuid"`
	Category    string `json:"category"`
	DuesStatus  string `json:"dues_status"`
	Keyword     string `json:"keyword"` // 匹配编号或姓名
	Page        int    `json:"page" binding:"omitempty,min=1"`
	PageSize    int    `json:"page_size" binding:"omitempty,min=1,max=200"`
}

// CreateMemberRequest 创建会员
// 日期字段接受四种手输格式，服务端统一规范化后入库
type CreateMemberRequest struct {
	Number          string `json:"number" binding:"required,max=20"`
	FirstName       string `json:"first_name" binding:"required,max=50"`
	LastName        string `json:"last_name" binding:"required,max=50"`
	NationalID      string `json:"national_id" binding:"omitempty,max=30"`
	Category        string `json:"category" binding:"required"`
	Gender          string `json:"gender" binding:"omitempty,oneof=M F X"`
	Email           string `json:"email" binding:"omitempty,email"`
	Phone           string `json:"phone" binding:"omitempty,max=20"`
	BirthDate       string `json:"birth_date"`
	JoinDate        string `json:"join_date"`
	LastPaymentDate string `json:"last_payment_date"`
	ChapterUuid     string `json:"chapter_uuid"`
}

// UpdateMemberRequest 更新会员信息
// 编号不在此处修改，需走 changeMemberNumber 流程；
// 分会归属不在此处修改，需走调动申请流程
type UpdateMemberRequest struct {
	Uuid            string `json:"uuid" binding:"required"`
	FirstName       string `json:"first_name" binding:"required,max=50"`
	LastName        string `json:"last_name" binding:"required,max=50"`
	NationalID      string `json:"national_id" binding:"omitempty,max=30"`
	Category        string `json:"category" binding:"required"`
	Gender          string `json:"gender" binding:"omitempty,oneof=M F X"`
	Email           string `json:"email" binding:"omitempty,email"`
	Phone           string `json:"phone" binding:"omitempty,max=20"`
	BirthDate       string `json:"birth_date"`
	JoinDate        string `json:"join_date"`
	LastPaymentDate string `json:"last_payment_date"`
}

// DeleteMembersRequest 批量删除会员
type DeleteMembersRequest struct {
	UuidList []string `json:"uuid_list" binding:"required,min=1"`
}

// CheckMemberNumberRequest 校验新编号是否可用
type CheckMemberNumberRequest struct {
	Uuid   string `json:"uuid" binding:"required"`
	Number string `json:"number" binding:"required,max=20"`
}

// ChangeMemberNumberRequest 变更会员对外编号
type ChangeMemberNumberRequest struct {
	Uuid      string `json:"uuid" binding:"required"`
	NewNumber string `json:"new_number" binding:"required,max=20"`
}

// SendDuesReminderRequest 发送欠费提醒短信
type SendDuesReminderRequest struct {
	Uuid string `json:"uuid" binding:"required"`
}
