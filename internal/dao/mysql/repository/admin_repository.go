package repository

import (
	"consulado_admin_server/internal/model"

	"gorm.io/gorm"
)

type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository 创建管理员 Repository
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

// FindByUsername 按登录名查找管理员
func (r *adminRepository) FindByUsername(username string) (*model.AdminUser, error) {
	var admin model.AdminUser
	if err := r.db.First(&admin, "username = ?", username).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询管理员 username=%s", username)
	}
	return &admin, nil
}

// FindByUuid 按 UUID 查找管理员
func (r *adminRepository) FindByUuid(uuid string) (*model.AdminUser, error) {
	var admin model.AdminUser
	if err := r.db.First(&admin, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询管理员 uuid=%s", uuid)
	}
	return &admin, nil
}

// Create 创建管理员
func (r *adminRepository) Create(admin *model.AdminUser) error {
	if err := r.db.Create(admin).Error; err != nil {
		return wrapDBError(err, "创建管理员")
	}
	return nil
}
