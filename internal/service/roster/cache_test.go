package roster

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consulado_admin_server/internal/model"
	"consulado_admin_server/pkg/enum/member/role_enum"
	"consulado_admin_server/pkg/enum/transfer/transfer_status_enum"
)

// fakeStore 内存桩，failNext 置位时下一次写操作返回错误
type fakeStore struct {
	members   []model.Member
	chapters  []model.Chapter
	transfers []model.TransferRequest
	failNext  bool
}

var errStoreDown = errors.New("store unavailable")

func (s *fakeStore) fail() bool {
	if s.failNext {
		s.failNext = false
		return true
	}
	return false
}

func (s *fakeStore) LoadMembers() ([]model.Member, error)            { return s.members, nil }
func (s *fakeStore) LoadChapters() ([]model.Chapter, error)          { return s.chapters, nil }
func (s *fakeStore) LoadTransfers() ([]model.TransferRequest, error) { return s.transfers, nil }

func (s *fakeStore) CreateMember(m *model.Member) error {
	if s.fail() {
		return errStoreDown
	}
	s.members = append(s.members, *m)
	return nil
}

func (s *fakeStore) SaveMember(m *model.Member) error {
	if s.fail() {
		return errStoreDown
	}
	return nil
}

func (s *fakeStore) UpdateMemberNumber(uuid, newNumber string) error {
	if s.fail() {
		return errStoreDown
	}
	return nil
}

func (s *fakeStore) UpdateMemberRole(uuid string, role int8) error {
	if s.fail() {
		return errStoreDown
	}
	return nil
}

func (s *fakeStore) DeleteMember(uuid string) error {
	if s.fail() {
		return errStoreDown
	}
	return nil
}

func (s *fakeStore) CreateChapter(ch *model.Chapter) error {
	if s.fail() {
		return errStoreDown
	}
	return nil
}

func (s *fakeStore) SaveChapter(ch *model.Chapter) error {
	if s.fail() {
		return errStoreDown
	}
	return nil
}

func (s *fakeStore) DeleteChapter(uuid string) error {
	if s.fail() {
		return errStoreDown
	}
	return nil
}

func (s *fakeStore) CreateTransfer(req *model.TransferRequest) error {
	if s.fail() {
		return errStoreDown
	}
	return nil
}

func (s *fakeStore) UpdateTransferStatus(uuid, status string) error {
	if s.fail() {
		return errStoreDown
	}
	return nil
}

func (s *fakeStore) ApproveTransfer(reqUuid, memberUuid, toChapterUuid string, newRole int8, fromChapterUuid string) error {
	if s.fail() {
		return errStoreDown
	}
	return nil
}

func newTestCache(t *testing.T, store *fakeStore) *Cache {
	t.Helper()
	c := NewCache(store)
	require.NoError(t, c.Init())
	return c
}

func TestCacheInitLoadsCollections(t *testing.T) {
	store := &fakeStore{
		members: []model.Member{
			{Uuid: "S1", Number: "1001", FirstName: "Ana", LastName: "García"},
			{Uuid: "S2", Number: "1002", FirstName: "Luis", LastName: "Pérez"},
		},
		chapters: []model.Chapter{
			{Uuid: "C1", Name: "Consulado Madrid"},
		},
		transfers: []model.TransferRequest{
			{Uuid: "T1", MemberUuid: "S1", ToChapterUuid: "C1", Status: transfer_status_enum.PENDING},
		},
	}
	c := newTestCache(t, store)

	assert.Len(t, c.Members(), 2)
	assert.Len(t, c.Chapters(), 1)
	assert.Len(t, c.AllTransfers(), 1)

	m := c.MemberByNumber("1002")
	require.NotNil(t, m)
	assert.Equal(t, "S2", m.Uuid)
	assert.Nil(t, c.MemberByNumber("9999"))
}

func TestCacheGettersReturnCopies(t *testing.T) {
	store := &fakeStore{
		members: []model.Member{{Uuid: "S1", Number: "1001", FirstName: "Ana"}},
	}
	c := newTestCache(t, store)

	got := c.Members()
	got[0].FirstName = "Mutada"

	again := c.MemberByUuid("S1")
	require.NotNil(t, again)
	assert.Equal(t, "Ana", again.FirstName)
}

func TestCacheNotifyOrderAndPayload(t *testing.T) {
	c := newTestCache(t, &fakeStore{})

	var order []string
	c.Subscribe(SubscriberFunc(func(ev Event) {
		order = append(order, "first")
		assert.Equal(t, EntityMember, ev.Entity)
		assert.Equal(t, ActionCreate, ev.Action)
		assert.Equal(t, "S1", ev.Uuid)
	}))
	c.Subscribe(SubscriberFunc(func(ev Event) {
		order = append(order, "second")
	}))

	require.NoError(t, c.AddMember(&model.Member{Uuid: "S1", Number: "1001"}))

	// 按注册顺序各通知一次
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestCacheWriteFailureLeavesMirrorUntouched(t *testing.T) {
	store := &fakeStore{
		members: []model.Member{{Uuid: "S1", Number: "1001"}},
	}
	c := newTestCache(t, store)

	notified := 0
	c.Subscribe(SubscriberFunc(func(ev Event) { notified++ }))

	store.failNext = true
	err := c.AddMember(&model.Member{Uuid: "S2", Number: "1002"})
	require.Error(t, err)

	// 远端失败：内存不变，订阅者不收通知
	assert.Len(t, c.Members(), 1)
	assert.Zero(t, notified)

	store.failNext = true
	require.Error(t, c.DeleteMember("S1"))
	assert.NotNil(t, c.MemberByUuid("S1"))
	assert.Zero(t, notified)
}

func TestCacheUnsubscribeIdempotent(t *testing.T) {
	c := newTestCache(t, &fakeStore{})

	count := 0
	unsub := c.Subscribe(SubscriberFunc(func(ev Event) { count++ }))

	require.NoError(t, c.AddMember(&model.Member{Uuid: "S1", Number: "1001"}))
	assert.Equal(t, 1, count)

	unsub()
	unsub() // 第二次取消应无副作用

	require.NoError(t, c.AddMember(&model.Member{Uuid: "S2", Number: "1002"}))
	assert.Equal(t, 1, count)
}

func TestCacheUnsubscribeInsideCallback(t *testing.T) {
	c := newTestCache(t, &fakeStore{})

	var unsub func()
	count := 0
	unsub = c.Subscribe(SubscriberFunc(func(ev Event) {
		count++
		unsub() // 回调内取消自身
	}))
	other := 0
	c.Subscribe(SubscriberFunc(func(ev Event) { other++ }))

	require.NoError(t, c.AddMember(&model.Member{Uuid: "S1", Number: "1001"}))
	require.NoError(t, c.AddMember(&model.Member{Uuid: "S2", Number: "1002"}))

	// 自取消的订阅者只收到第一次通知；另一订阅者不受影响
	assert.Equal(t, 1, count)
	assert.Equal(t, 2, other)
}

func TestCacheChangeMemberNumber(t *testing.T) {
	store := &fakeStore{
		members: []model.Member{{Uuid: "S1", Number: "1001"}},
	}
	c := newTestCache(t, store)

	require.NoError(t, c.ChangeMemberNumber("S1", "2001"))

	assert.Nil(t, c.MemberByNumber("1001"))
	m := c.MemberByNumber("2001")
	require.NotNil(t, m)
	assert.Equal(t, "S1", m.Uuid)
}

func TestCacheTransfersOf(t *testing.T) {
	store := &fakeStore{
		transfers: []model.TransferRequest{
			{Uuid: "T1", MemberUuid: "S1", FromChapterUuid: "C1", ToChapterUuid: "C2", Status: transfer_status_enum.PENDING},
			{Uuid: "T2", MemberUuid: "S2", FromChapterUuid: "C2", ToChapterUuid: "C1", Status: transfer_status_enum.PENDING},
			{Uuid: "T3", MemberUuid: "S3", FromChapterUuid: "", ToChapterUuid: "C1", Status: transfer_status_enum.APPROVED},
		},
	}
	c := newTestCache(t, store)

	incoming, outgoing := c.TransfersOf("C1")
	assert.Len(t, incoming, 2)
	assert.Len(t, outgoing, 1)
	assert.Equal(t, "T1", outgoing[0].Uuid)
}

func TestCachePendingTransferOf(t *testing.T) {
	store := &fakeStore{
		transfers: []model.TransferRequest{
			{Uuid: "T1", MemberUuid: "S1", ToChapterUuid: "C1", Status: transfer_status_enum.REJECTED},
			{Uuid: "T2", MemberUuid: "S1", ToChapterUuid: "C2", Status: transfer_status_enum.PENDING},
		},
	}
	c := newTestCache(t, store)

	pending := c.PendingTransferOf("S1")
	require.NotNil(t, pending)
	assert.Equal(t, "T2", pending.Uuid)
	assert.Nil(t, c.PendingTransferOf("S2"))
}

func TestCacheApproveTransfer(t *testing.T) {
	store := &fakeStore{
		members: []model.Member{
			{Uuid: "S1", Number: "1001", ChapterUuid: "C1", Role: role_enum.CHIEF},
		},
		chapters: []model.Chapter{
			{Uuid: "C1", Name: "Consulado Madrid", ChiefOfficerUuid: "S1", ChiefOfficerName: "Ana García"},
			{Uuid: "C2", Name: "Consulado Lima"},
		},
		transfers: []model.TransferRequest{
			{Uuid: "T1", MemberUuid: "S1", FromChapterUuid: "C1", ToChapterUuid: "C2", Status: transfer_status_enum.PENDING},
		},
	}
	c := newTestCache(t, store)

	var got Event
	c.Subscribe(SubscriberFunc(func(ev Event) { got = ev }))

	require.NoError(t, c.ApproveTransfer("T1"))

	// 申请进入终态
	tr := c.TransferByUuid("T1")
	require.NotNil(t, tr)
	assert.Equal(t, transfer_status_enum.APPROVED, tr.Status)

	// 会员改挂目标分会并降为普通会员
	m := c.MemberByUuid("S1")
	require.NotNil(t, m)
	assert.Equal(t, "C2", m.ChapterUuid)
	assert.Equal(t, int8(role_enum.ORDINARY), m.Role)

	// 原分会会长槽位清空
	ch := c.ChapterByUuid("C1")
	require.NotNil(t, ch)
	assert.Empty(t, ch.ChiefOfficerUuid)
	assert.Empty(t, ch.ChiefOfficerName)

	assert.Equal(t, Event{Entity: EntityTransfer, Action: ActionStatus, Uuid: "T1"}, got)
}

func TestCacheApproveTransferKeepsOfficeHeldElsewhere(t *testing.T) {
	// S1 隶属 C1，但担任的是 C3 的会长：调动 C1 → C2 不应触及 C3 的职务
	store := &fakeStore{
		members: []model.Member{
			{Uuid: "S1", Number: "1001", ChapterUuid: "C1", Role: role_enum.CHIEF},
		},
		chapters: []model.Chapter{
			{Uuid: "C1", Name: "Consulado Madrid"},
			{Uuid: "C2", Name: "Consulado Lima"},
			{Uuid: "C3", Name: "Consulado Bogotá", ChiefOfficerUuid: "S1", ChiefOfficerName: "Ana García"},
		},
		transfers: []model.TransferRequest{
			{Uuid: "T1", MemberUuid: "S1", FromChapterUuid: "C1", ToChapterUuid: "C2", Status: transfer_status_enum.PENDING},
		},
	}
	c := newTestCache(t, store)

	require.NoError(t, c.ApproveTransfer("T1"))

	m := c.MemberByUuid("S1")
	require.NotNil(t, m)
	assert.Equal(t, "C2", m.ChapterUuid)
	assert.Equal(t, role_enum.CHIEF, m.Role)

	c3 := c.ChapterByUuid("C3")
	require.NotNil(t, c3)
	assert.Equal(t, "S1", c3.ChiefOfficerUuid)
	assert.Equal(t, "Ana García", c3.ChiefOfficerName)
}

func TestCacheApproveTransferStoreFailure(t *testing.T) {
	store := &fakeStore{
		members: []model.Member{
			{Uuid: "S1", Number: "1001", ChapterUuid: "C1", Role: role_enum.ORDINARY},
		},
		transfers: []model.TransferRequest{
			{Uuid: "T1", MemberUuid: "S1", FromChapterUuid: "C1", ToChapterUuid: "C2", Status: transfer_status_enum.PENDING},
		},
	}
	c := newTestCache(t, store)

	store.failNext = true
	require.Error(t, c.ApproveTransfer("T1"))

	// 事务失败：申请与会员均保持原状
	assert.Equal(t, transfer_status_enum.PENDING, c.TransferByUuid("T1").Status)
	assert.Equal(t, "C1", c.MemberByUuid("S1").ChapterUuid)
}
