package repository

import (
	"consulado_admin_server/internal/model"

	"gorm.io/gorm"
)

// MemberRepository 会员数据访问接口
type MemberRepository interface {
	// FindAll 查找全部会员（花名册缓存启动加载）
	FindAll() ([]model.Member, error)
	// FindByUuid 根据 UUID 查找会员
	FindByUuid(uuid string) (*model.Member, error)
	// FindByNumber 根据对外会员编号查找会员
	FindByNumber(number string) (*model.Member, error)
	// Create 创建会员
	Create(member *model.Member) error
	// Update 保存会员全量字段
	Update(member *model.Member) error
	// UpdateNumber 变更对外会员编号（单列更新）
	UpdateNumber(uuid, newNumber string) error
	// UpdateRole 更新会员职务
	UpdateRole(uuid string, role int8) error
	// UpdateChapterAndRole 调动批准时原子更新分会归属与职务
	UpdateChapterAndRole(uuid, chapterUuid string, role int8) error
	// HardDelete 物理删除会员（规格要求硬删除，无墓碑）
	HardDelete(uuid string) error
}

// ChapterRepository 分会数据访问接口
type ChapterRepository interface {
	// FindAll 查找全部分会
	FindAll() ([]model.Chapter, error)
	// FindByUuid 根据 UUID 查找分会
	FindByUuid(uuid string) (*model.Chapter, error)
	// FindByName 根据名称查找分会（名称在有效集合内唯一）
	FindByName(name string) (*model.Chapter, error)
	// Create 创建分会
	Create(chapter *model.Chapter) error
	// Update 保存分会全量字段
	Update(chapter *model.Chapter) error
	// VacateOfficer 清空指定分会中指向该会员的职务槽位
	VacateOfficer(chapterUuid, memberUuid string) error
	// HardDelete 物理删除分会
	HardDelete(uuid string) error
}

// TransferRepository 调动申请数据访问接口
// 申请只增改状态，永不删除
type TransferRepository interface {
	// FindAll 查找全部调动申请
	FindAll() ([]model.TransferRequest, error)
	// FindByUuid 根据 UUID 查找申请
	FindByUuid(uuid string) (*model.TransferRequest, error)
	// FindPendingByMember 查找会员当前待处理的申请
	FindPendingByMember(memberUuid string) ([]model.TransferRequest, error)
	// Create 创建申请
	Create(req *model.TransferRequest) error
	// UpdateStatus 更新申请状态
	UpdateStatus(uuid, status string) error
}

// AdminRepository 管理员数据访问接口
type AdminRepository interface {
	// FindByUsername 根据登录名查找管理员
	FindByUsername(username string) (*model.AdminUser, error)
	// FindByUuid 根据 UUID 查找管理员
	FindByUuid(uuid string) (*model.AdminUser, error)
	// Create 创建管理员
	Create(admin *model.AdminUser) error
}

// UploadedFileRepository 上传文件审计记录数据访问接口
type UploadedFileRepository interface {
	// Create 记录一次上传
	Create(file *model.UploadedFile) error
	// DeactivateByOwnerField 将同实体同字段的旧记录置为 inactive
	DeactivateByOwnerField(ownerType, ownerUuid, field string) error
	// FindActiveByOwner 查找实体当前生效的上传记录
	FindActiveByOwner(ownerType, ownerUuid string) ([]model.UploadedFile, error)
}

// ==================== Repository 聚合 ====================

// Repositories 聚合所有 Repository 实例
// 作为依赖注入的入口，Service 层通过此结构访问数据层
type Repositories struct {
	db           *gorm.DB               // GORM 数据库实例
	Member       MemberRepository       // 会员 Repository
	Chapter      ChapterRepository      // 分会 Repository
	Transfer     TransferRepository     // 调动申请 Repository
	Admin        AdminRepository        // 管理员 Repository
	UploadedFile UploadedFileRepository // 上传文件 Repository
}

// NewRepositories 创建所有 Repository 实例
// db: GORM 数据库实例
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:           db,
		Member:       NewMemberRepository(db),
		Chapter:      NewChapterRepository(db),
		Transfer:     NewTransferRepository(db),
		Admin:        NewAdminRepository(db),
		UploadedFile: NewUploadedFileRepository(db),
	}
}

// Transaction 在数据库事务中执行函数
// 事务内的所有操作要么全部成功，要么全部回滚
// fn: 事务执行函数，接收事务内的 Repositories 实例
func (r *Repositories) Transaction(fn func(txRepos *Repositories) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// 使用事务 db 创建新的 Repositories 实例
		return fn(NewRepositories(tx))
	})
}
