package model

import (
	"gorm.io/gorm"
)

// Chapter 领事馆分会模型
// 对应数据库 chapters 表
// 会长/联络官通过会员 uuid 引用，展示名为冗余字段，由角色校正逻辑维护
type Chapter struct {
	gorm.Model
	Uuid    string `gorm:"column:uuid;uniqueIndex;type:char(20);not null;comment:分会唯一id"`
	Name    string `gorm:"column:name;uniqueIndex;type:varchar(100);not null;comment:分会名称"`
	City    string `gorm:"column:city;type:varchar(100);comment:城市"`
	Country string `gorm:"column:country;type:varchar(100);comment:国家"`
	Address string `gorm:"column:address;type:varchar(255);comment:地址"`
	Email   string `gorm:"column:email;type:varchar(100);comment:联系邮箱"`
	Phone   string `gorm:"column:phone;type:varchar(20);comment:联系电话"`

	Instagram string `gorm:"column:instagram;type:varchar(100);comment:Instagram"`
	Facebook  string `gorm:"column:facebook;type:varchar(100);comment:Facebook"`

	// 会长：跨分会唯一职务
	ChiefOfficerUuid string `gorm:"column:chief_officer_uuid;type:char(20);comment:会长会员uuid"`
	ChiefOfficerName string `gorm:"column:chief_officer_name;type:varchar(100);comment:会长姓名(冗余)"`

	// 联络官：每分会至多一人
	LiaisonOfficerUuid string `gorm:"column:liaison_officer_uuid;type:char(20);comment:联络官会员uuid"`
	LiaisonOfficerName string `gorm:"column:liaison_officer_name;type:varchar(100);comment:联络官姓名(冗余)"`

	IsOfficial    bool   `gorm:"column:is_official;default:false;comment:是否官方认证"`
	OfficialSince string `gorm:"column:official_since;type:char(10);comment:认证日期"`

	LogoURL   string `gorm:"column:logo_url;type:varchar(255);comment:会徽URL"`
	BannerURL string `gorm:"column:banner_url;type:varchar(255);comment:横幅URL"`
}

func (Chapter) TableName() string {
	return "chapters"
}
