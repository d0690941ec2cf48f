package roster

import (
	"consulado_admin_server/internal/dao/mysql/repository"
	"consulado_admin_server/internal/model"
	"consulado_admin_server/pkg/enum/transfer/transfer_status_enum"
)

// Store 花名册缓存依赖的持久化端口
// 生产实现封装 Repository 层；测试可注入内存桩
type Store interface {
	// 启动加载
	LoadMembers() ([]model.Member, error)
	LoadChapters() ([]model.Chapter, error)
	LoadTransfers() ([]model.TransferRequest, error)

	// 会员写操作
	CreateMember(member *model.Member) error
	SaveMember(member *model.Member) error
	UpdateMemberNumber(uuid, newNumber string) error
	UpdateMemberRole(uuid string, role int8) error
	DeleteMember(uuid string) error

	// 分会写操作
	CreateChapter(chapter *model.Chapter) error
	SaveChapter(chapter *model.Chapter) error
	DeleteChapter(uuid string) error

	// 调动申请写操作
	CreateTransfer(req *model.TransferRequest) error
	UpdateTransferStatus(uuid, status string) error
	// ApproveTransfer 在一个事务中提交批准的全部副作用：
	// 申请置为 Approved、会员改挂目标分会（必要时降为普通会员）、
	// 清空原分会指向该会员的职务槽位
	ApproveTransfer(reqUuid, memberUuid, toChapterUuid string, newRole int8, fromChapterUuid string) error
}

// mysqlStore 基于 Repository 层的 Store 实现
type mysqlStore struct {
	repos *repository.Repositories
}

// NewMysqlStore 创建生产用 Store
func NewMysqlStore(repos *repository.Repositories) Store {
	return &mysqlStore{repos: repos}
}

func (s *mysqlStore) LoadMembers() ([]model.Member, error) {
	return s.repos.Member.FindAll()
}

func (s *mysqlStore) LoadChapters() ([]model.Chapter, error) {
	return s.repos.Chapter.FindAll()
}

func (s *mysqlStore) LoadTransfers() ([]model.TransferRequest, error) {
	return s.repos.Transfer.FindAll()
}

func (s *mysqlStore) CreateMember(member *model.Member) error {
	return s.repos.Member.Create(member)
}

func (s *mysqlStore) SaveMember(member *model.Member) error {
	return s.repos.Member.Update(member)
}

func (s *mysqlStore) UpdateMemberNumber(uuid, newNumber string) error {
	return s.repos.Member.UpdateNumber(uuid, newNumber)
}

func (s *mysqlStore) UpdateMemberRole(uuid string, role int8) error {
	return s.repos.Member.UpdateRole(uuid, role)
}

func (s *mysqlStore) DeleteMember(uuid string) error {
	return s.repos.Member.HardDelete(uuid)
}

func (s *mysqlStore) CreateChapter(chapter *model.Chapter) error {
	return s.repos.Chapter.Create(chapter)
}

func (s *mysqlStore) SaveChapter(chapter *model.Chapter) error {
	return s.repos.Chapter.Update(chapter)
}

func (s *mysqlStore) DeleteChapter(uuid string) error {
	return s.repos.Chapter.HardDelete(uuid)
}

func (s *mysqlStore) CreateTransfer(req *model.TransferRequest) error {
	return s.repos.Transfer.Create(req)
}

func (s *mysqlStore) UpdateTransferStatus(uuid, status string) error {
	return s.repos.Transfer.UpdateStatus(uuid, status)
}

func (s *mysqlStore) ApproveTransfer(reqUuid, memberUuid, toChapterUuid string, newRole int8, fromChapterUuid string) error {
	return s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Transfer.UpdateStatus(reqUuid, transfer_status_enum.APPROVED); err != nil {
			return err
		}
		if err := tx.Member.UpdateChapterAndRole(memberUuid, toChapterUuid, newRole); err != nil {
			return err
		}
		if fromChapterUuid != "" {
			if err := tx.Chapter.VacateOfficer(fromChapterUuid, memberUuid); err != nil {
				return err
			}
		}
		return nil
	})
}
