package repository

import (
	"consulado_admin_server/internal/model"

	"gorm.io/gorm"
)

type uploadedFileRepository struct {
	db *gorm.DB
}

// NewUploadedFileRepository 创建上传文件审计 Repository
func NewUploadedFileRepository(db *gorm.DB) UploadedFileRepository {
	return &uploadedFileRepository{db: db}
}

// Create 记录一次上传
func (r *uploadedFileRepository) Create(file *model.UploadedFile) error {
	if err := r.db.Create(file).Error; err != nil {
		return wrapDBError(err, "记录文件上传")
	}
	return nil
}

// DeactivateByOwnerField 将同实体同字段的旧记录置为 inactive
func (r *uploadedFileRepository) DeactivateByOwnerField(ownerType, ownerUuid, field string) error {
	if err := r.db.Model(&model.UploadedFile{}).
		Where("owner_type = ? AND owner_uuid = ? AND field = ? AND active = ?", ownerType, ownerUuid, field, true).
		Update("active", false).Error; err != nil {
		return wrapDBErrorf(err, "停用旧上传记录 owner=%s field=%s", ownerUuid, field)
	}
	return nil
}

// FindActiveByOwner 查找实体当前生效的上传记录
func (r *uploadedFileRepository) FindActiveByOwner(ownerType, ownerUuid string) ([]model.UploadedFile, error) {
	var files []model.UploadedFile
	if err := r.db.Where("owner_type = ? AND owner_uuid = ? AND active = ?", ownerType, ownerUuid, true).
		Find(&files).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询上传记录 owner=%s", ownerUuid)
	}
	return files, nil
}
