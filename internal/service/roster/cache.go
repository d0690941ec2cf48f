package roster

import (
	"sync"

	"go.uber.org/zap"

	"consulado_admin_server/internal/model"
	"consulado_admin_server/pkg/enum/member/role_enum"
	"consulado_admin_server/pkg/enum/transfer/transfer_status_enum"
	"consulado_admin_server/pkg/errorx"
)

// Cache 花名册缓存
// 在应用启动时显式构造并 Init，一个进程只有一个实例（由 service 层持有，
// 不做包级全局）。内存集合只允许通过本类型的写方法修改。
//
// 一致性约定：
//   - 写方法先执行远端写入，失败时内存保持原状并返回错误（无乐观更新，
//     因此也无需回滚）
//   - 远端写入成功后更新内存，然后按注册顺序同步通知全部订阅者
//   - 读方法返回副本，调用方修改副本不会影响缓存
type Cache struct {
	store Store

	mu        sync.RWMutex
	members   []model.Member
	chapters  []model.Chapter
	transfers []model.TransferRequest

	subMu  sync.Mutex
	subs   []*subscription
	nextID int
}

// subscription 一条订阅登记
type subscription struct {
	id  int
	sub Subscriber
}

// NewCache 创建花名册缓存（未加载数据，需调用 Init）
func NewCache(store Store) *Cache {
	return &Cache{store: store}
}

// Init 从远端加载三个集合
func (c *Cache) Init() error {
	members, err := c.store.LoadMembers()
	if err != nil {
		return err
	}
	chapters, err := c.store.LoadChapters()
	if err != nil {
		return err
	}
	transfers, err := c.store.LoadTransfers()
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.members = members
	c.chapters = chapters
	c.transfers = transfers
	c.mu.Unlock()

	zap.L().Info("roster cache loaded",
		zap.Int("members", len(members)),
		zap.Int("chapters", len(chapters)),
		zap.Int("transfers", len(transfers)))
	return nil
}

// Shutdown 释放全部订阅
// 幂等，可在进程退出时安全调用
func (c *Cache) Shutdown() {
	c.subMu.Lock()
	c.subs = nil
	c.subMu.Unlock()
}

// ==================== 订阅 ====================

// Subscribe 注册订阅者，返回取消函数
// 取消函数幂等，可在订阅者回调内安全调用
func (c *Cache) Subscribe(sub Subscriber) (unsubscribe func()) {
	c.subMu.Lock()
	c.nextID++
	entry := &subscription{id: c.nextID, sub: sub}
	c.subs = append(c.subs, entry)
	c.subMu.Unlock()

	id := entry.id
	return func() {
		c.subMu.Lock()
		defer c.subMu.Unlock()
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				return
			}
		}
		// 已经取消过，幂等返回
	}
}

// notify 按注册顺序同步通知订阅者
// 先在锁内快照订阅列表再迭代，保证回调内增删订阅不影响本轮通知
func (c *Cache) notify(ev Event) {
	c.subMu.Lock()
	snapshot := make([]*subscription, len(c.subs))
	copy(snapshot, c.subs)
	c.subMu.Unlock()

	for _, s := range snapshot {
		s.sub.RosterChanged(ev)
	}
}

// ==================== 读访问 ====================

// Members 全部会员的副本
func (c *Cache) Members() []model.Member {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.Member, len(c.members))
	copy(out, c.members)
	return out
}

// MembersOf 指定分会的会员（chapterUuid 为空串时返回归属总部的会员）
func (c *Cache) MembersOf(chapterUuid string) []model.Member {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.Member, 0)
	for _, m := range c.members {
		if m.ChapterUuid == chapterUuid {
			out = append(out, m)
		}
	}
	return out
}

// MemberByUuid 按 UUID 查找会员，不存在时返回 nil
func (c *Cache) MemberByUuid(uuid string) *model.Member {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.members {
		if c.members[i].Uuid == uuid {
			m := c.members[i]
			return &m
		}
	}
	return nil
}

// MemberByNumber 按对外编号查找会员，不存在时返回 nil
func (c *Cache) MemberByNumber(number string) *model.Member {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.members {
		if c.members[i].Number == number {
			m := c.members[i]
			return &m
		}
	}
	return nil
}

// Chapters 全部分会的副本
func (c *Cache) Chapters() []model.Chapter {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.Chapter, len(c.chapters))
	copy(out, c.chapters)
	return out
}

// ChapterByUuid 按 UUID 查找分会，不存在时返回 nil
func (c *Cache) ChapterByUuid(uuid string) *model.Chapter {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.chapters {
		if c.chapters[i].Uuid == uuid {
			ch := c.chapters[i]
			return &ch
		}
	}
	return nil
}

// ChapterByName 按名称查找分会，不存在时返回 nil
func (c *Cache) ChapterByName(name string) *model.Chapter {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.chapters {
		if c.chapters[i].Name == name {
			ch := c.chapters[i]
			return &ch
		}
	}
	return nil
}

// AllTransfers 全部调动申请的副本
func (c *Cache) AllTransfers() []model.TransferRequest {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.TransferRequest, len(c.transfers))
	copy(out, c.transfers)
	return out
}

// TransfersOf 指定分会视角的调动申请：incoming 为待其审批的转入，
// outgoing 为其发起的转出
func (c *Cache) TransfersOf(chapterUuid string) (incoming, outgoing []model.TransferRequest) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	incoming = make([]model.TransferRequest, 0)
	outgoing = make([]model.TransferRequest, 0)
	for _, t := range c.transfers {
		if t.ToChapterUuid == chapterUuid {
			incoming = append(incoming, t)
		}
		if t.FromChapterUuid == chapterUuid {
			outgoing = append(outgoing, t)
		}
	}
	return incoming, outgoing
}

// TransferByUuid 按 UUID 查找申请，不存在时返回 nil
func (c *Cache) TransferByUuid(uuid string) *model.TransferRequest {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.transfers {
		if c.transfers[i].Uuid == uuid {
			t := c.transfers[i]
			return &t
		}
	}
	return nil
}

// PendingTransferOf 查找会员当前待处理的转出申请，不存在时返回 nil
func (c *Cache) PendingTransferOf(memberUuid string) *model.TransferRequest {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.transfers {
		if c.transfers[i].MemberUuid == memberUuid && !transfer_status_enum.IsTerminal(c.transfers[i].Status) {
			t := c.transfers[i]
			return &t
		}
	}
	return nil
}

// ==================== 会员写操作 ====================

// AddMember 创建会员
func (c *Cache) AddMember(member *model.Member) error {
	if err := c.store.CreateMember(member); err != nil {
		return err
	}
	c.mu.Lock()
	c.members = append(c.members, *member)
	c.mu.Unlock()
	c.notify(Event{Entity: EntityMember, Action: ActionCreate, Uuid: member.Uuid})
	return nil
}

// UpdateMember 保存会员全量字段
func (c *Cache) UpdateMember(member *model.Member) error {
	if err := c.store.SaveMember(member); err != nil {
		return err
	}
	c.mu.Lock()
	c.replaceMemberLocked(*member)
	c.mu.Unlock()
	c.notify(Event{Entity: EntityMember, Action: ActionUpdate, Uuid: member.Uuid})
	return nil
}

// ChangeMemberNumber 变更会员对外编号
// 唯一性校验由 member service 在调用前完成；此处只负责提交与镜像更新
func (c *Cache) ChangeMemberNumber(uuid, newNumber string) error {
	if err := c.store.UpdateMemberNumber(uuid, newNumber); err != nil {
		return err
	}
	c.mu.Lock()
	for i := range c.members {
		if c.members[i].Uuid == uuid {
			c.members[i].Number = newNumber
			break
		}
	}
	c.mu.Unlock()
	c.notify(Event{Entity: EntityMember, Action: ActionUpdate, Uuid: uuid})
	return nil
}

// UpdateMemberRole 更新会员职务（角色校正逻辑使用）
func (c *Cache) UpdateMemberRole(uuid string, role int8) error {
	if err := c.store.UpdateMemberRole(uuid, role); err != nil {
		return err
	}
	c.mu.Lock()
	for i := range c.members {
		if c.members[i].Uuid == uuid {
			c.members[i].Role = role
			break
		}
	}
	c.mu.Unlock()
	c.notify(Event{Entity: EntityMember, Action: ActionUpdate, Uuid: uuid})
	return nil
}

// DeleteMember 物理删除会员
func (c *Cache) DeleteMember(uuid string) error {
	if err := c.store.DeleteMember(uuid); err != nil {
		return err
	}
	c.mu.Lock()
	for i := range c.members {
		if c.members[i].Uuid == uuid {
			c.members = append(c.members[:i], c.members[i+1:]...)
			break
		}
	}
	c.mu.Unlock()
	c.notify(Event{Entity: EntityMember, Action: ActionDelete, Uuid: uuid})
	return nil
}

// ==================== 分会写操作 ====================

// AddChapter 创建分会
func (c *Cache) AddChapter(chapter *model.Chapter) error {
	if err := c.store.CreateChapter(chapter); err != nil {
		return err
	}
	c.mu.Lock()
	c.chapters = append(c.chapters, *chapter)
	c.mu.Unlock()
	c.notify(Event{Entity: EntityChapter, Action: ActionCreate, Uuid: chapter.Uuid})
	return nil
}

// UpdateChapter 保存分会全量字段
func (c *Cache) UpdateChapter(chapter *model.Chapter) error {
	if err := c.store.SaveChapter(chapter); err != nil {
		return err
	}
	c.mu.Lock()
	c.replaceChapterLocked(*chapter)
	c.mu.Unlock()
	c.notify(Event{Entity: EntityChapter, Action: ActionUpdate, Uuid: chapter.Uuid})
	return nil
}

// DeleteChapter 物理删除分会
func (c *Cache) DeleteChapter(uuid string) error {
	if err := c.store.DeleteChapter(uuid); err != nil {
		return err
	}
	c.mu.Lock()
	for i := range c.chapters {
		if c.chapters[i].Uuid == uuid {
			c.chapters = append(c.chapters[:i], c.chapters[i+1:]...)
			break
		}
	}
	c.mu.Unlock()
	c.notify(Event{Entity: EntityChapter, Action: ActionDelete, Uuid: uuid})
	return nil
}

// ==================== 调动申请写操作 ====================

// CreateTransferRequest 创建调动申请
func (c *Cache) CreateTransferRequest(req *model.TransferRequest) error {
	if err := c.store.CreateTransfer(req); err != nil {
		return err
	}
	c.mu.Lock()
	c.transfers = append(c.transfers, *req)
	c.mu.Unlock()
	c.notify(Event{Entity: EntityTransfer, Action: ActionCreate, Uuid: req.Uuid})
	return nil
}

// SetTransferStatus 无副作用的状态流转（Rejected / Cancelled）
// 状态机校验由 transfer service 在调用前完成
func (c *Cache) SetTransferStatus(uuid, status string) error {
	if err := c.store.UpdateTransferStatus(uuid, status); err != nil {
		return err
	}
	c.mu.Lock()
	for i := range c.transfers {
		if c.transfers[i].Uuid == uuid {
			c.transfers[i].Status = status
			break
		}
	}
	c.mu.Unlock()
	c.notify(Event{Entity: EntityTransfer, Action: ActionStatus, Uuid: uuid})
	return nil
}

// ApproveTransfer 提交批准及其全部副作用
// 远端在一个事务中完成：申请置为 Approved、会员改挂目标分会、
// 原分会担任职务时降为普通会员并清空原分会职务槽位
func (c *Cache) ApproveTransfer(reqUuid string) error {
	req := c.TransferByUuid(reqUuid)
	if req == nil {
		return errorx.Newf(errorx.CodeNotFound, "调动申请 %s 不存在", reqUuid)
	}
	member := c.MemberByUuid(req.MemberUuid)
	if member == nil {
		return errorx.ErrMemberNotExist
	}

	// 调动后不保留原分会的职务；在其他分会担任的职务不受影响
	newRole := member.Role
	if from := c.ChapterByUuid(req.FromChapterUuid); from != nil &&
		(from.ChiefOfficerUuid == member.Uuid || from.LiaisonOfficerUuid == member.Uuid) {
		newRole = role_enum.ORDINARY
	}

	if err := c.store.ApproveTransfer(reqUuid, member.Uuid, req.ToChapterUuid, newRole, req.FromChapterUuid); err != nil {
		return err
	}

	c.mu.Lock()
	for i := range c.transfers {
		if c.transfers[i].Uuid == reqUuid {
			c.transfers[i].Status = transfer_status_enum.APPROVED
			break
		}
	}
	for i := range c.members {
		if c.members[i].Uuid == member.Uuid {
			c.members[i].ChapterUuid = req.ToChapterUuid
			c.members[i].Role = newRole
			break
		}
	}
	if req.FromChapterUuid != "" {
		for i := range c.chapters {
			if c.chapters[i].Uuid != req.FromChapterUuid {
				continue
			}
			if c.chapters[i].ChiefOfficerUuid == member.Uuid {
				c.chapters[i].ChiefOfficerUuid = ""
				c.chapters[i].ChiefOfficerName = ""
			}
			if c.chapters[i].LiaisonOfficerUuid == member.Uuid {
				c.chapters[i].LiaisonOfficerUuid = ""
				c.chapters[i].LiaisonOfficerName = ""
			}
			break
		}
	}
	c.mu.Unlock()

	c.notify(Event{Entity: EntityTransfer, Action: ActionStatus, Uuid: reqUuid})
	return nil
}

// ==================== 内部辅助 ====================

func (c *Cache) replaceMemberLocked(member model.Member) {
	for i := range c.members {
		if c.members[i].Uuid == member.Uuid {
			c.members[i] = member
			return
		}
	}
	c.members = append(c.members, member)
}

func (c *Cache) replaceChapterLocked(chapter model.Chapter) {
	for i := range c.chapters {
		if c.chapters[i].Uuid == chapter.Uuid {
			c.chapters[i] = chapter
			return
		}
	}
	c.chapters = append(c.chapters, chapter)
}
