package repository

import (
	"consulado_admin_server/internal/model"
	"consulado_admin_server/pkg/enum/transfer/transfer_status_enum"

	"gorm.io/gorm"
)

type transferRepository struct {
	db *gorm.DB
}

// NewTransferRepository 创建调动申请 Repository
func NewTransferRepository(db *gorm.DB) TransferRepository {
	return &transferRepository{db: db}
}

// FindAll 查找全部调动申请，新申请在前
func (r *transferRepository) FindAll() ([]model.TransferRequest, error) {
	var reqs []model.TransferRequest
	if err := r.db.Order("created_at DESC").Find(&reqs).Error; err != nil {
		return nil, wrapDBError(err, "查询调动申请列表")
	}
	return reqs, nil
}

// FindByUuid 按 UUID 查找申请
func (r *transferRepository) FindByUuid(uuid string) (*model.TransferRequest, error) {
	var req model.TransferRequest
	if err := r.db.First(&req, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询调动申请 uuid=%s", uuid)
	}
	return &req, nil
}

// FindPendingByMember 查找会员待处理的申请
func (r *transferRepository) FindPendingByMember(memberUuid string) ([]model.TransferRequest, error) {
	var reqs []model.TransferRequest
	if err := r.db.Where("member_uuid = ? AND status = ?", memberUuid, transfer_status_enum.PENDING).
		Find(&reqs).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询会员待处理申请 member=%s", memberUuid)
	}
	return reqs, nil
}

// Create 创建申请
func (r *transferRepository) Create(req *model.TransferRequest) error {
	if err := r.db.Create(req).Error; err != nil {
		return wrapDBError(err, "创建调动申请")
	}
	return nil
}

// UpdateStatus 更新申请状态
func (r *transferRepository) UpdateStatus(uuid, status string) error {
	if err := r.db.Model(&model.TransferRequest{}).Where("uuid = ?", uuid).
		Update("status", status).Error; err != nil {
		return wrapDBErrorf(err, "更新调动申请状态 uuid=%s", uuid)
	}
	return nil
}
