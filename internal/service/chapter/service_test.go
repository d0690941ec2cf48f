package chapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consulado_admin_server/internal/dto/request"
	"consulado_admin_server/internal/model"
	"consulado_admin_server/internal/service/roster"
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

func newTestService(t *testing.T, store *stubStore) (*chapterService, *roster.Cache) {
	t.Helper()
	cache := roster.NewCache(store)
	require.NoError(t, cache.Init())
	return NewChapterService(cache), cache
}

func TestCreateChapterDuplicateName(t *testing.T) {
	store := &stubStore{
		chapters: []model.Chapter{{Uuid: "C1", Name: "Consulado Madrid"}},
	}
	svc, _ := newTestService(t, store)

	_, err := svc.CreateChapter(request.CreateChapterRequest{Name: "Consulado Madrid"})
	assert.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))

	rsp, err := svc.CreateChapter(request.CreateChapterRequest{Name: "Consulado Sevilla", City: "Sevilla"})
	require.NoError(t, err)
	assert.NotEmpty(t, rsp.Uuid)
	assert.Equal(t, "Sevilla", rsp.City)
}

func TestCreateChapterAssignsOfficers(t *testing.T) {
	store := &stubStore{
		members: []model.Member{
			{Uuid: "S1", Number: "1001", FirstName: "Ana", LastName: "García", Role: role_enum.ORDINARY},
		},
	}
	svc, cache := newTestService(t, store)

	rsp, err := svc.CreateChapter(request.CreateChapterRequest{
		Name: "Consulado Valencia", ChiefOfficerUuid: "S1",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana García", rsp.ChiefOfficerName)

	m := cache.MemberByUuid("S1")
	require.NotNil(t, m)
	assert.Equal(t, role_enum.CHIEF, m.Role)
}

func TestOfficerValidation(t *testing.T) {
	store := &stubStore{
		members: []model.Member{
			{Uuid: "S1", Number: "1001", Role: role_enum.CHIEF},
			{Uuid: "S2", Number: "1002", Role: role_enum.ORDINARY},
		},
		chapters: []model.Chapter{
			{Uuid: "C1", Name: "Consulado Madrid", ChiefOfficerUuid: "S1"},
			{Uuid: "C2", Name: "Consulado Sevilla"},
		},
	}
	svc, _ := newTestService(t, store)

	// 同一会员不能身兼本分会两职
	err := svc.UpdateChapter(request.UpdateChapterRequest{
		Uuid: "C2", Name: "Consulado Sevilla",
		ChiefOfficerUuid: "S2", LiaisonOfficerUuid: "S2",
	})
	assert.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))

	// 职务候选会员必须存在
	err = svc.UpdateChapter(request.UpdateChapterRequest{
		Uuid: "C2", Name: "Consulado Sevilla", ChiefOfficerUuid: "S404",
	})
	assert.Equal(t, errorx.CodeMemberNotExist, errorx.GetCode(err))

	// 现任会长不能到别处担任联络官
	err = svc.UpdateChapter(request.UpdateChapterRequest{
		Uuid: "C2", Name: "Consulado Sevilla", LiaisonOfficerUuid: "S1",
	})
	assert.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))
}

func TestUpdateChapterReconcilesOfficers(t *testing.T) {
	store := &stubStore{
		members: []model.Member{
			{Uuid: "S1", Number: "1001", FirstName: "Ana", LastName: "García", Role: role_enum.CHIEF},
			{Uuid: "S2", Number: "1002", FirstName: "Luis", LastName: "Pérez", Role: role_enum.ORDINARY},
		},
		chapters: []model.Chapter{
			{Uuid: "C1", Name: "Consulado Madrid", ChiefOfficerUuid: "S1", ChiefOfficerName: "Ana García"},
			{Uuid: "C2", Name: "Consulado Sevilla"},
		},
	}
	svc, cache := newTestService(t, store)

	// S1 调任 C2 会长：C1 槽位清空（会长跨分会唯一），S2 接任 C2 联络官
	err := svc.UpdateChapter(request.UpdateChapterRequest{
		Uuid: "C2", Name: "Consulado Sevilla",
		ChiefOfficerUuid: "S1", LiaisonOfficerUuid: "S2",
	})
	require.NoError(t, err)

	c1 := cache.ChapterByUuid("C1")
	require.NotNil(t, c1)
	assert.Empty(t, c1.ChiefOfficerUuid)
	assert.Empty(t, c1.ChiefOfficerName)

	c2 := cache.ChapterByUuid("C2")
	require.NotNil(t, c2)
	assert.Equal(t, "S1", c2.ChiefOfficerUuid)
	assert.Equal(t, "S2", c2.LiaisonOfficerUuid)
	assert.Equal(t, "Luis Pérez", c2.LiaisonOfficerName)
	assert.Equal(t, role_enum.LIAISON, cache.MemberByUuid("S2").Role)

	// S1 被顶替后不再担任任何职务，降为普通会员
	err = svc.UpdateChapter(request.UpdateChapterRequest{
		Uuid: "C2", Name: "Consulado Sevilla", LiaisonOfficerUuid: "S2",
	})
	require.NoError(t, err)
	assert.Equal(t, role_enum.ORDINARY, cache.MemberByUuid("S1").Role)
}

func TestDeleteChapterConfirmMismatch(t *testing.T) {
	store := &stubStore{
		chapters: []model.Chapter{{Uuid: "C1", Name: "Consulado Madrid"}},
	}
	svc, cache := newTestService(t, store)

	err := svc.DeleteChapter(request.DeleteChapterRequest{Uuid: "C1", ConfirmName: "consulado madrid"})
	assert.Equal(t, errorx.CodeConfirmMismatch, errorx.GetCode(err))
	assert.NotNil(t, cache.ChapterByUuid("C1"))
}

func TestDeleteChapterMovesMembersToCentral(t *testing.T) {
	store := &stubStore{
		members: []model.Member{
			{Uuid: "S1", Number: "1001", ChapterUuid: "C1", Role: role_enum.CHIEF},
			{Uuid: "S2", Number: "1002", ChapterUuid: "C1", Role: role_enum.ORDINARY},
		},
		chapters: []model.Chapter{
			{Uuid: "C1", Name: "Consulado Madrid", ChiefOfficerUuid: "S1"},
		},
		transfers: []model.TransferRequest{
			{Uuid: "T1", MemberUuid: "S2", FromChapterUuid: "C1", Status: transfer_status_enum.PENDING},
			{Uuid: "T2", MemberUuid: "S9", ToChapterUuid: "C1", Status: transfer_status_enum.REJECTED},
		},
	}
	svc, cache := newTestService(t, store)

	require.NoError(t, svc.DeleteChapter(request.DeleteChapterRequest{
		Uuid: "C1", ConfirmName: "Consulado Madrid",
	}))

	assert.Nil(t, cache.ChapterByUuid("C1"))

	s1 := cache.MemberByUuid("S1")
	require.NotNil(t, s1)
	assert.Empty(t, s1.ChapterUuid)
	assert.Equal(t, role_enum.ORDINARY, s1.Role)
	assert.Empty(t, cache.MemberByUuid("S2").ChapterUuid)

	// 未决申请撤销，历史终态记录不动
	assert.Equal(t, transfer_status_enum.CANCELLED, cache.TransferByUuid("T1").Status)
	assert.Equal(t, transfer_status_enum.REJECTED, cache.TransferByUuid("T2").Status)
}

func TestSetImageURL(t *testing.T) {
	store := &stubStore{
		chapters: []model.Chapter{{Uuid: "C1", Name: "Consulado Madrid"}},
	}
	svc, cache := newTestService(t, store)

	require.NoError(t, svc.SetImageURL("C1", "logo", "/static/logos/logo_1.png"))
	require.NoError(t, svc.SetImageURL("C1", "banner", "/static/banners/banner_1.png"))

	ch := cache.ChapterByUuid("C1")
	assert.Equal(t, "/static/logos/logo_1.png", ch.LogoURL)
	assert.Equal(t, "/static/banners/banner_1.png", ch.BannerURL)

	err := svc.SetImageURL("C1", "avatar", "/static/x.png")
	assert.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))
}
