package model

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AdminUser 后台管理员账号
// 对应数据库 admin_users 表
type AdminUser struct {
	gorm.Model
	Uuid     string `gorm:"column:uuid;uniqueIndex;type:char(20);comment:管理员唯一id"`
	Username string `gorm:"column:username;uniqueIndex;type:varchar(50);not null;comment:登录名"`

	// DisplayName 界面展示名
	DisplayName string `gorm:"column:display_name;type:varchar(100);comment:展示名"`

	// Password 密码（已哈希）
	// 存储 bcrypt 哈希后的密码，不存储明文
	Password string `gorm:"column:password;type:varchar(100);not null;comment:密码"`

	// ChapterUuid 该管理员负责的分会，空串表示总部管理员（可管理全部）
	ChapterUuid string `gorm:"column:chapter_uuid;type:char(20);comment:负责分会uuid"`

	// RawPassword 明文密码（不入库），在 BeforeSave 中加密
	RawPassword string `gorm:"-" json:"-"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}

// BeforeSave GORM Hook：将 RawPassword 明文密码加密后存入 Password 字段
// 调用方只需设置 RawPassword，无需手动加密
func (u *AdminUser) BeforeSave(tx *gorm.DB) error {
	if u.RawPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.RawPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hash)
		u.RawPassword = ""
	}
	return nil
}

// CheckPassword 校验密码是否正确
func (u *AdminUser) CheckPassword(plaintext string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plaintext))
	return err == nil
}
