package repository

import (
	"consulado_admin_server/internal/model"

	"gorm.io/gorm"
)

type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository 创建会员 Repository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

// FindAll 查找全部会员
func (r *memberRepository) FindAll() ([]model.Member, error) {
	var members []model.Member
	if err := r.db.Order("number").Find(&members).Error; err != nil {
		return nil, wrapDBError(err, "查询会员列表")
	}
	return members, nil
}

// FindByUuid 按 UUID 查找会员
func (r *memberRepository) FindByUuid(uuid string) (*model.Member, error) {
	var member model.Member
	if err := r.db.First(&member, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询会员 uuid=%s", uuid)
	}
	return &member, nil
}

// FindByNumber 按会员编号查找会员
func (r *memberRepository) FindByNumber(number string) (*model.Member, error) {
	var member model.Member
	if err := r.db.First(&member, "number = ?", number).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询会员 number=%s", number)
	}
	return &member, nil
}

// Create 创建会员
func (r *memberRepository) Create(member *model.Member) error {
	if err := r.db.Create(member).Error; err != nil {
		return wrapDBError(err, "创建会员")
	}
	return nil
}

// Update 保存会员全量字段
func (r *memberRepository) Update(member *model.Member) error {
	if err := r.db.Save(member).Error; err != nil {
		return wrapDBError(err, "更新会员信息")
	}
	return nil
}

// UpdateNumber 变更会员编号
// 编号列带唯一索引，并发冲突由数据库兜底
func (r *memberRepository) UpdateNumber(uuid, newNumber string) error {
	if err := r.db.Model(&model.Member{}).Where("uuid = ?", uuid).Update("number", newNumber).Error; err != nil {
		return wrapDBErrorf(err, "变更会员编号 uuid=%s", uuid)
	}
	return nil
}

// UpdateRole 更新会员职务
func (r *memberRepository) UpdateRole(uuid string, role int8) error {
	if err := r.db.Model(&model.Member{}).Where("uuid = ?", uuid).Update("role", role).Error; err != nil {
		return wrapDBErrorf(err, "更新会员职务 uuid=%s", uuid)
	}
	return nil
}

// UpdateChapterAndRole 更新会员分会归属与职务
// 调动批准时在事务中与申请状态一并提交
func (r *memberRepository) UpdateChapterAndRole(uuid, chapterUuid string, role int8) error {
	updates := map[string]interface{}{
		"chapter_uuid": chapterUuid,
		"role":         role,
	}
	if err := r.db.Model(&model.Member{}).Where("uuid = ?", uuid).Updates(updates).Error; err != nil {
		return wrapDBErrorf(err, "更新会员分会归属 uuid=%s", uuid)
	}
	return nil
}

// HardDelete 物理删除会员
func (r *memberRepository) HardDelete(uuid string) error {
	if err := r.db.Unscoped().Where("uuid = ?", uuid).Delete(&model.Member{}).Error; err != nil {
		return wrapDBErrorf(err, "删除会员 uuid=%s", uuid)
	}
	return nil
}
