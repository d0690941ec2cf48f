// Package model 定义数据库实体模型
// 本文件定义会员模型
package model

import (
	"gorm.io/gorm"

	"consulado_admin_server/pkg/aes"
)

// Member 会员模型
// 对应数据库 members 表
type Member struct {
	gorm.Model // 内嵌 GORM 模型，包含 ID、CreatedAt、UpdatedAt、DeletedAt

	// Uuid 会员内部唯一标识，创建后不可变
	// 格式：S + 13位时间戳随机字符串，如 "S241230Ab12Cd34"
	Uuid string `gorm:"column:uuid;uniqueIndex;type:char(20);comment:会员唯一id"`

	// Number 对外会员编号，唯一但可经校验后变更
	// 内部引用一律使用 Uuid，编号仅作为对外展示的自然键
	Number string `gorm:"column:number;uniqueIndex;type:varchar(20);not null;comment:会员编号"`

	FirstName string `gorm:"column:first_name;type:varchar(50);not null;comment:名"`
	LastName  string `gorm:"column:last_name;type:varchar(50);not null;comment:姓"`

	// NationalID 证件号明文（不入库）
	// 在 BeforeSave 中加密写入 NationalIDEnc，查询后在 AfterFind 中还原
	NationalID string `gorm:"-" json:"-"`

	// NationalIDEnc 证件号密文（AES-GCM + base64）
	NationalIDEnc string `gorm:"column:national_id_enc;type:varchar(255);comment:证件号密文"`

	// Category 会员类别，见 category_enum
	Category string `gorm:"column:category;type:varchar(20);not null;comment:会员类别"`

	// Gender 性别 M/F/X，仅用于称谓词形
	Gender string `gorm:"column:gender;type:char(1);comment:性别"`

	Email string `gorm:"column:email;type:varchar(100);comment:邮箱"`
	Phone string `gorm:"column:phone;type:varchar(20);comment:电话"`

	// BirthDate / JoinDate / LastPaymentDate 均以 YYYY-MM-DD 入库
	// LastPaymentDate 可为空；历史数据可能存在未规范化的文本，读取方需容错
	BirthDate       string `gorm:"column:birth_date;type:char(10);comment:出生日期"`
	JoinDate        string `gorm:"column:join_date;type:char(10);comment:入会日期"`
	LastPaymentDate string `gorm:"column:last_payment_date;type:varchar(10);comment:最近缴费日期"`

	// ChapterUuid 所属分会，空串表示归属总部
	ChapterUuid string `gorm:"column:chapter_uuid;index;type:char(20);comment:所属分会uuid"`

	// Role 职务，见 role_enum
	Role int8 `gorm:"column:role;not null;comment:职务，0.无，1.普通会员，2.会长，3.联络官"`

	// PhotoURL 会员照片地址，可为空
	PhotoURL string `gorm:"column:photo_url;type:varchar(255);comment:照片URL"`
}

// TableName 指定表名
func (Member) TableName() string {
	return "members"
}

// BeforeSave GORM Hook：证件号加密落库
// 调用方只需设置 NationalID 明文
func (m *Member) BeforeSave(tx *gorm.DB) error {
	if m.NationalID != "" {
		enc, err := aes.Encrypt(m.NationalID)
		if err != nil {
			return err
		}
		m.NationalIDEnc = enc
	}
	return nil
}

// AfterFind GORM Hook：证件号解密
// 解密失败不阻断查询，明文字段留空
func (m *Member) AfterFind(tx *gorm.DB) error {
	if m.NationalIDEnc != "" {
		if plain, err := aes.Decrypt(m.NationalIDEnc); err == nil {
			m.NationalID = plain
		}
	}
	return nil
}

// FullName 会员全名，用于展示和申请单快照
func (m *Member) FullName() string {
	return m.FirstName + " " + m.LastName
}
