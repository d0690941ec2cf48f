package model

import (
	"gorm.io/gorm"
)

// TransferRequest 分会调动申请模型
// 对应数据库 transfer_requests 表
// 申请永不物理删除，作为调动的审计记录
type TransferRequest struct {
	gorm.Model
	Uuid string `gorm:"column:uuid;uniqueIndex;type:varchar(24);not null;comment:申请唯一id"`

	MemberUuid string `gorm:"column:member_uuid;index;type:char(20);not null;comment:会员uuid"`
	// MemberName 申请时的会员姓名快照（后续改名不回填）
	MemberName string `gorm:"column:member_name;type:varchar(100);comment:会员姓名快照"`

	FromChapterUuid string `gorm:"column:from_chapter_uuid;index;type:char(20);comment:原分会uuid"`
	FromChapterName string `gorm:"column:from_chapter_name;type:varchar(100);comment:原分会名称快照"`
	ToChapterUuid   string `gorm:"column:to_chapter_uuid;index;type:char(20);not null;comment:目标分会uuid"`
	ToChapterName   string `gorm:"column:to_chapter_name;type:varchar(100);comment:目标分会名称快照"`

	// RequestDate 申请日期，YYYY-MM-DD
	RequestDate string `gorm:"column:request_date;type:char(10);comment:申请日期"`

	// Status 见 transfer_status_enum：Pending/Approved/Rejected/Cancelled
	Status string `gorm:"column:status;index;type:varchar(10);not null;comment:申请状态"`

	Comment string `gorm:"column:comment;type:varchar(500);comment:备注"`
}

func (TransferRequest) TableName() string {
	return "transfer_requests"
}
