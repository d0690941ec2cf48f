package repository

import (
	"consulado_admin_server/internal/model"

	"gorm.io/gorm"
)

type chapterRepository struct {
	db *gorm.DB
}

// NewChapterRepository 创建分会 Repository
func NewChapterRepository(db *gorm.DB) ChapterRepository {
	return &chapterRepository{db: db}
}

// FindAll 查找全部分会
func (r *chapterRepository) FindAll() ([]model.Chapter, error) {
	var chapters []model.Chapter
	if err := r.db.Order("name").Find(&chapters).Error; err != nil {
		return nil, wrapDBError(err, "查询分会列表")
	}
	return chapters, nil
}

// FindByUuid 按 UUID 查找分会
func (r *chapterRepository) FindByUuid(uuid string) (*model.Chapter, error) {
	var chapter model.Chapter
	if err := r.db.First(&chapter, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询分会 uuid=%s", uuid)
	}
	return &chapter, nil
}

// FindByName 按名称查找分会
func (r *chapterRepository) FindByName(name string) (*model.Chapter, error) {
	var chapter model.Chapter
	if err := r.db.First(&chapter, "name = ?", name).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询分会 name=%s", name)
	}
	return &chapter, nil
}

// Create 创建分会
func (r *chapterRepository) Create(chapter *model.Chapter) error {
	if err := r.db.Create(chapter).Error; err != nil {
		return wrapDBError(err, "创建分会")
	}
	return nil
}

// Update 保存分会全量字段
func (r *chapterRepository) Update(chapter *model.Chapter) error {
	if err := r.db.Save(chapter).Error; err != nil {
		return wrapDBError(err, "更新分会信息")
	}
	return nil
}

// VacateOfficer 清空分会中指向该会员的职务槽位
// 会长槽与联络官槽分别清理，会员不担任时为空操作
func (r *chapterRepository) VacateOfficer(chapterUuid, memberUuid string) error {
	chief := map[string]interface{}{"chief_officer_uuid": "", "chief_officer_name": ""}
	if err := r.db.Model(&model.Chapter{}).
		Where("uuid = ? AND chief_officer_uuid = ?", chapterUuid, memberUuid).
		Updates(chief).Error; err != nil {
		return wrapDBErrorf(err, "清空分会会长槽位 chapter=%s", chapterUuid)
	}
	liaison := map[string]interface{}{"liaison_officer_uuid": "", "liaison_officer_name": ""}
	if err := r.db.Model(&model.Chapter{}).
		Where("uuid = ? AND liaison_officer_uuid = ?", chapterUuid, memberUuid).
		Updates(liaison).Error; err != nil {
		return wrapDBErrorf(err, "清空分会联络官槽位 chapter=%s", chapterUuid)
	}
	return nil
}

// HardDelete 物理删除分会
func (r *chapterRepository) HardDelete(uuid string) error {
	if err := r.db.Unscoped().Where("uuid = ?", uuid).Delete(&model.Chapter{}).Error; err != nil {
		return wrapDBErrorf(err, "删除分会 uuid=%s", uuid)
	}
	return nil
}
