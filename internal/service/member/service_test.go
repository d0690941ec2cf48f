package member

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consulado_admin_server/internal/dto/request"
	"consulado_admin_server/internal/dto/respond"
	"consulado_admin_server/internal/model"
	"consulado_admin_server/internal/service/roster"
	"consulado_admin_server/pkg/enum/member/category_enum"
	"consulado_admin_server/pkg/enum/member/dues_status_enum"
	"consulado_admin_server/pkg/enum/member/role_enum"
	"consulado_admin_server/pkg/enum/transfer/transfer_status_enum"
	"consulado_admin_server/pkg/errorx"
)

// stubStore 内存桩，写操作全部成功
type stubStore struct {
	members   []model.Member
	chapters  []model.Chapter
	transfers []model.TransferRequest
}

func (s *stubStore) LoadMembers() ([]model.Member, error)            { return s.members, nil }
func (s *stubStore) LoadChapters() ([]model.Chapter, error)          { return s.chapters, nil }
func (s *stubStore) LoadTransfers() ([]model.TransferRequest, error) { return s.transfers, nil }
func (s *stubStore) CreateMember(m *model.Member) error              { return nil }
func (s *stubStore) SaveMember(m *model.Member) error                { return nil }
func (s *stubStore) UpdateMemberNumber(uuid, newNumber string) error { return nil }
func (s *stubStore) UpdateMemberRole(uuid string, role int8) error   { return nil }
func (s *stubStore) DeleteMember(uuid string) error                  { return nil }
func (s *stubStore) CreateChapter(ch *model.Chapter) error           { return nil }
func (s *stubStore) SaveChapter(ch *model.Chapter) error             { return nil }
func (s *stubStore) DeleteChapter(uuid string) error                 { return nil }
func (s *stubStore) CreateTransfer(req *model.TransferRequest) error { return nil }
func (s *stubStore) UpdateTransferStatus(uuid, status string) error  { return nil }
func (s *stubStore) ApproveTransfer(reqUuid, memberUuid, toChapterUuid string, newRole int8, fromChapterUuid string) error {
	return nil
}

func newTestService(t *testing.T, store *stubStore) (*memberService, *roster.Cache) {
	t.Helper()
	cache := roster.NewCache(store)
	require.NoError(t, cache.Init())
	return NewMemberService(cache), cache
}

// monthsAgo 距今 n 个月的入库格式日期
func monthsAgo(n int) string {
	d := time.Now().AddDate(0, -n, 0)
	return fmt.Sprintf("%04d-%02d-01", d.Year(), int(d.Month()))
}

func TestGetMemberListFiltersByChapterAndDues(t *testing.T) {
	store := &stubStore{
		members: []model.Member{
			{Uuid: "S1", Number: "1001", FirstName: "Ana", LastName: "García",
				Category: category_enum.ACTIVO, ChapterUuid: "C1", LastPaymentDate: monthsAgo(0)},
			{Uuid: "S2", Number: "1002", FirstName: "Luis", LastName: "Pérez",
				Category: category_enum.ACTIVO, ChapterUuid: "C1", LastPaymentDate: monthsAgo(3)},
			{Uuid: "S3", Number: "1003", FirstName: "Marta", LastName: "López",
				Category: category_enum.JUVENIL, ChapterUuid: "", LastPaymentDate: monthsAgo(9)},
		},
		chapters: []model.Chapter{{Uuid: "C1", Name: "Consulado Madrid"}},
	}
	svc, _ := newTestService(t, store)

	// 按分会过滤
	rsp, err := svc.GetMemberList(request.GetMemberListRequest{ChapterUuid: "C1"})
	require.NoError(t, err)
	assert.Equal(t, 2, rsp.Total)
	assert.Equal(t, "Consulado Madrid", rsp.Members[0].ChapterName)

	// 空串表示总部
	rsp, err = svc.GetMemberList(request.GetMemberListRequest{ChapterUuid: ""})
	require.NoError(t, err)
	require.Equal(t, 1, rsp.Total)
	assert.Equal(t, "Casa Central", rsp.Members[0].ChapterName)
	assert.Equal(t, dues_status_enum.DEBAJA, rsp.Members[0].DuesStatus)

	// 按缴费状态过滤
	rsp, err = svc.GetMemberList(request.GetMemberListRequest{
		ChapterUuid: "all", DuesStatus: dues_status_enum.ENDEUDA,
	})
	require.NoError(t, err)
	require.Equal(t, 1, rsp.Total)
	assert.Equal(t, "S2", rsp.Members[0].Uuid)
}

func TestGetMemberListKeywordAndPagination(t *testing.T) {
	store := &stubStore{}
	for i := 1; i <= 5; i++ {
		store.members = append(store.members, model.Member{
			Uuid:     fmt.Sprintf("S%d", i),
			Number:   fmt.Sprintf("10%02d", i),
			Category: category_enum.ACTIVO,
		})
	}
	store.members[0].FirstName = "Carmen"
	store.members[0].LastName = "Ruiz"
	svc, _ := newTestService(t, store)

	rsp, err := svc.GetMemberList(request.GetMemberListRequest{ChapterUuid: "all", Keyword: "carmen"})
	require.NoError(t, err)
	require.Equal(t, 1, rsp.Total)
	assert.Equal(t, "S1", rsp.Members[0].Uuid)

	// 按编号排序后分页
	rsp, err = svc.GetMemberList(request.GetMemberListRequest{ChapterUuid: "all", Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, rsp.Total)
	require.Len(t, rsp.Members, 2)
	assert.Equal(t, "1003", rsp.Members[0].Number)

	// 超出末页返回空切片
	rsp, err = svc.GetMemberList(request.GetMemberListRequest{ChapterUuid: "all", Page: 9, PageSize: 2})
	require.NoError(t, err)
	assert.Empty(t, rsp.Members)
}

func TestCreateMemberValidation(t *testing.T) {
	store := &stubStore{
		members: []model.Member{{Uuid: "S1", Number: "1001", Category: category_enum.ACTIVO}},
	}
	svc, _ := newTestService(t, store)

	// 类别不合法
	_, err := svc.CreateMember(request.CreateMemberRequest{Number: "2001", Category: "SOCIO"})
	assert.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))

	// 编号被占用
	_, err = svc.CreateMember(request.CreateMemberRequest{Number: "1001", Category: category_enum.ACTIVO})
	assert.Equal(t, errorx.CodeNumberTaken, errorx.GetCode(err))

	// 目标分会不存在
	_, err = svc.CreateMember(request.CreateMemberRequest{
		Number: "2001", Category: category_enum.ACTIVO, ChapterUuid: "C404",
	})
	assert.Equal(t, errorx.CodeChapterNotExist, errorx.GetCode(err))

	// 正常创建：日期规范化入库，初始职务为普通会员
	rsp, err := svc.CreateMember(request.CreateMemberRequest{
		Number: "2001", FirstName: "Pedro", LastName: "Sánchez",
		Category: category_enum.ACTIVO, JoinDate: "15/03/2024",
	})
	require.NoError(t, err)
	assert.Equal(t, role_enum.ORDINARY, rsp.Role)
	assert.Equal(t, "15/03/2024", rsp.JoinDate)
}

func TestCheckMemberNumber(t *testing.T) {
	store := &stubStore{
		members: []model.Member{
			{Uuid: "S1", Number: "1001"},
			{Uuid: "S2", Number: "1002"},
		},
	}
	svc, _ := newTestService(t, store)

	// 他人占用
	rsp, err := svc.CheckMemberNumber(request.CheckMemberNumberRequest{Uuid: "S1", Number: "1002"})
	require.NoError(t, err)
	assert.Equal(t, respond.NumberTaken, rsp.Result)

	// 自己当前编号视为可用
	rsp, err = svc.CheckMemberNumber(request.CheckMemberNumberRequest{Uuid: "S1", Number: "1001"})
	require.NoError(t, err)
	assert.Equal(t, respond.NumberValid, rsp.Result)

	// 全新编号
	rsp, err = svc.CheckMemberNumber(request.CheckMemberNumberRequest{Uuid: "S1", Number: "3000"})
	require.NoError(t, err)
	assert.Equal(t, respond.NumberValid, rsp.Result)

	_, err = svc.CheckMemberNumber(request.CheckMemberNumberRequest{Uuid: "S404", Number: "3000"})
	assert.Equal(t, errorx.CodeMemberNotExist, errorx.GetCode(err))
}

func TestChangeMemberNumber(t *testing.T) {
	store := &stubStore{
		members: []model.Member{
			{Uuid: "S1", Number: "1001"},
			{Uuid: "S2", Number: "1002"},
		},
	}
	svc, cache := newTestService(t, store)

	// 改回自己当前编号：幂等成功
	require.NoError(t, svc.ChangeMemberNumber(request.ChangeMemberNumberRequest{Uuid: "S1", NewNumber: "1001"}))

	// 他人占用
	err := svc.ChangeMemberNumber(request.ChangeMemberNumberRequest{Uuid: "S1", NewNumber: "1002"})
	assert.Equal(t, errorx.CodeNumberTaken, errorx.GetCode(err))

	// 正常变更，Uuid 不变
	require.NoError(t, svc.ChangeMemberNumber(request.ChangeMemberNumberRequest{Uuid: "S1", NewNumber: "5000"}))
	m := cache.MemberByUuid("S1")
	require.NotNil(t, m)
	assert.Equal(t, "5000", m.Number)
	assert.Nil(t, cache.MemberByNumber("1001"))
}

func TestDeleteMembersClearsOfficesAndPendingTransfer(t *testing.T) {
	store := &stubStore{
		members: []model.Member{
			{Uuid: "S1", Number: "1001", ChapterUuid: "C1", Role: role_enum.CHIEF},
		},
		chapters: []model.Chapter{
			{Uuid: "C1", Name: "Consulado Madrid", ChiefOfficerUuid: "S1", ChiefOfficerName: "Ana García"},
		},
		transfers: []model.TransferRequest{
			{Uuid: "T1", MemberUuid: "S1", FromChapterUuid: "C1", Status: transfer_status_enum.PENDING},
		},
	}
	svc, cache := newTestService(t, store)

	require.NoError(t, svc.DeleteMembers([]string{"S1", "S404"}))

	assert.Nil(t, cache.MemberByUuid("S1"))
	ch := cache.ChapterByUuid("C1")
	require.NotNil(t, ch)
	assert.Empty(t, ch.ChiefOfficerUuid)
	assert.Empty(t, ch.ChiefOfficerName)
	tr := cache.TransferByUuid("T1")
	require.NotNil(t, tr)
	assert.Equal(t, transfer_status_enum.CANCELLED, tr.Status)
}
