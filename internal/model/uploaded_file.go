package model

import (
	"gorm.io/gorm"
)

// UploadedFile 对象存储上传审计记录
// 对应数据库 uploaded_files 表
// 同一实体同一字段重复上传时，旧记录置为 inactive，文件本身保留
type UploadedFile struct {
	gorm.Model
	Bucket    string `gorm:"column:bucket;type:varchar(50);not null;comment:存储桶"`
	Path      string `gorm:"column:path;type:varchar(255);not null;comment:桶内路径"`
	OwnerType string `gorm:"column:owner_type;index;type:varchar(20);comment:所属实体类型(member/chapter)"`
	OwnerUuid string `gorm:"column:owner_uuid;index;type:char(20);comment:所属实体uuid"`
	Field     string `gorm:"column:field;type:varchar(30);comment:实体字段(photo/logo/banner)"`
	URL       string `gorm:"column:url;type:varchar(255);not null;comment:公开访问URL"`
	Active    bool   `gorm:"column:active;default:true;comment:是否为该字段当前生效文件"`
}

func (UploadedFile) TableName() string {
	return "uploaded_files"
}
