// Package member 会员业务逻辑
package member

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	myredis "consulado_admin_server/internal/dao/redis"
	"consulado_admin_server/internal/dto/request"
	"consulado_admin_server/internal/dto/respond"
	"consulado_admin_server/internal/infrastructure/sms"
	"consulado_admin_server/internal/model"
	"consulado_admin_server/internal/service/roster"
	"consulado_admin_server/pkg/constants"
	"consulado_admin_server/pkg/enum/member/category_enum"
	"consulado_admin_server/pkg/enum/member/dues_status_enum"
	"consulado_admin_server/pkg/enum/member/role_enum"
	"consulado_admin_server/pkg/enum/transfer/transfer_status_enum"
	"consulado_admin_server/pkg/errorx"
	"consulado_admin_server/pkg/util/dates"
	"consulado_admin_server/pkg/util/dues"
	"consulado_admin_server/pkg/util/random"
)

// memberService 会员业务逻辑实现
// 读写都经过花名册缓存，不直接触达 Repository
type memberService struct {
	cache *roster.Cache
}

// NewMemberService 构造函数，注入花名册缓存
func NewMemberService(cache *roster.Cache) *memberService {
	return &memberService{cache: cache}
}

// today 当前日期（缴费状态计算基准）
func today() dates.CalendarDate {
	now := time.Now()
	return dates.CalendarDate{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}
}

// normalizeDate 手输日期规范化入库
// 四种格式之外的历史脏数据原样保留，读取方负责容错
func normalizeDate(input string) string {
	if d := dates.Parse(input); d != nil {
		return dates.ToStorage(d)
	}
	return strings.TrimSpace(input)
}

// displayDate 入库日期转显示格式，无法解析时原样返回
func displayDate(stored string) string {
	if d := dates.Parse(stored); d != nil {
		return dates.ToDisplay(d)
	}
	return stored
}

// checkCategoryValid 校验会员类别
func checkCategoryValid(category string) bool {
	switch category {
	case category_enum.ACTIVO, category_enum.JUVENIL, category_enum.VITALICIO, category_enum.HONORARIO:
		return true
	}
	return false
}

// chapterName 分会展示名，空串归属总部
func (s *memberService) chapterName(chapterUuid string) string {
	if chapterUuid == "" {
		return constants.CENTRAL_CHAPTER_NAME
	}
	if ch := s.cache.ChapterByUuid(chapterUuid); ch != nil {
		return ch.Name
	}
	return ""
}

// GetMemberList 获取会员列表
// 过滤、缴费状态计算、分页全部在内存镜像上完成
func (s *memberService) GetMemberList(req request.GetMemberListRequest) (*respond.GetMemberListRespond, error) {
	members := s.cache.Members()
	now := today()
	keyword := strings.ToLower(strings.TrimSpace(req.Keyword))

	rows := make([]respond.MemberSummaryRespond, 0, len(members))
	for _, m := range members {
		if req.ChapterUuid != "all" && m.ChapterUuid != req.ChapterUuid {
			continue
		}
		if req.Category != "" && m.Category != req.Category {
			continue
		}
		status := dues.Classify(m.LastPaymentDate, now)
		if req.DuesStatus != "" && status != req.DuesStatus {
			continue
		}
		if keyword != "" &&
			!strings.Contains(strings.ToLower(m.Number), keyword) &&
			!strings.Contains(strings.ToLower(m.FullName()), keyword) {
			continue
		}
		rows = append(rows, respond.MemberSummaryRespond{
			Uuid:            m.Uuid,
			Number:          m.Number,
			FullName:        m.FullName(),
			Category:        m.Category,
			ChapterUuid:     m.ChapterUuid,
			ChapterName:     s.chapterName(m.ChapterUuid),
			Role:            m.Role,
			DuesStatus:      status,
			LastPaymentDate: displayDate(m.LastPaymentDate),
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Number < rows[j].Number })

	total := len(rows)
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = 50
	}
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return &respond.GetMemberListRespond{
		Total:   total,
		Members: rows[start:end],
	}, nil
}

// GetMemberInfo 获取会员详情
func (s *memberService) GetMemberInfo(uuid string) (*respond.GetMemberInfoRespond, error) {
	m := s.cache.MemberByUuid(uuid)
	if m == nil {
		return nil, errorx.ErrMemberNotExist
	}
	return s.toMemberInfo(m), nil
}

func (s *memberService) toMemberInfo(m *model.Member) *respond.GetMemberInfoRespond {
	return &respond.GetMemberInfoRespond{
		Uuid:            m.Uuid,
		Number:          m.Number,
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		NationalID:      m.NationalID,
		Category:        m.Category,
		Gender:          m.Gender,
		Email:           m.Email,
		Phone:           m.Phone,
		BirthDate:       displayDate(m.BirthDate),
		JoinDate:        displayDate(m.JoinDate),
		LastPaymentDate: displayDate(m.LastPaymentDate),
		ChapterUuid:     m.ChapterUuid,
		ChapterName:     s.chapterName(m.ChapterUuid),
		Role:            m.Role,
		DuesStatus:      dues.Classify(m.LastPaymentDate, today()),
		PhotoURL:        m.PhotoURL,
		CreatedAt:       m.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// CreateMember 创建会员
func (s *memberService) CreateMember(req request.CreateMemberRequest) (*respond.GetMemberInfoRespond, error) {
	if !checkCategoryValid(req.Category) {
		return nil, errorx.Newf(errorx.CodeInvalidParam, "会员类别 %s 不合法", req.Category)
	}
	number := strings.TrimSpace(req.Number)
	if number == "" {
		return nil, errorx.ErrInvalidParam
	}
	if existing := s.cache.MemberByNumber(number); existing != nil {
		return nil, errorx.Newf(errorx.CodeNumberTaken, "会员编号 %s 已被占用", number)
	}
	if req.ChapterUuid != "" && s.cache.ChapterByUuid(req.ChapterUuid) == nil {
		return nil, errorx.ErrChapterNotExist
	}

	newMember := model.Member{
		Uuid:            "S" + random.GetNowAndLenRandomString(13),
		Number:          number,
		FirstName:       strings.TrimSpace(req.FirstName),
		LastName:        strings.TrimSpace(req.LastName),
		NationalID:      req.NationalID,
		Category:        req.Category,
		Gender:          req.Gender,
		Email:           req.Email,
		Phone:           req.Phone,
		BirthDate:       normalizeDate(req.BirthDate),
		JoinDate:        normalizeDate(req.JoinDate),
		LastPaymentDate: normalizeDate(req.LastPaymentDate),
		ChapterUuid:     req.ChapterUuid,
		Role:            role_enum.ORDINARY,
	}
	if err := s.cache.AddMember(&newMember); err != nil {
		zap.L().Error("创建会员失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return s.toMemberInfo(&newMember), nil
}

// UpdateMember 更新会员档案
// 改名后同步刷新其担任职务的分会的冗余姓名（尽力而为）
func (s *memberService) UpdateMember(req request.UpdateMemberRequest) error {
	m := s.cache.MemberByUuid(req.Uuid)
	if m == nil {
		return errorx.ErrMemberNotExist
	}
	if !checkCategoryValid(req.Category) {
		return errorx.Newf(errorx.CodeInvalidParam, "会员类别 %s 不合法", req.Category)
	}

	renamed := m.FirstName != strings.TrimSpace(req.FirstName) || m.LastName != strings.TrimSpace(req.LastName)
	m.FirstName = strings.TrimSpace(req.FirstName)
	m.LastName = strings.TrimSpace(req.LastName)
	if req.NationalID != "" {
		m.NationalID = req.NationalID
	}
	m.Category = req.Category
	m.Gender = req.Gender
	m.Email = req.Email
	m.Phone = req.Phone
	m.BirthDate = normalizeDate(req.BirthDate)
	m.JoinDate = normalizeDate(req.JoinDate)
	m.LastPaymentDate = normalizeDate(req.LastPaymentDate)

	if err := s.cache.UpdateMember(m); err != nil {
		zap.L().Error("更新会员失败", zap.Error(err))
		return errorx.ErrServerBusy
	}

	if renamed {
		s.refreshOfficerNames(m)
	}
	return nil
}

// refreshOfficerNames 刷新分会冗余的职务姓名，失败只记日志
func (s *memberService) refreshOfficerNames(m *model.Member) {
	for _, ch := range s.cache.Chapters() {
		changed := false
		if ch.ChiefOfficerUuid == m.Uuid && ch.ChiefOfficerName != m.FullName() {
			ch.ChiefOfficerName = m.FullName()
			changed = true
		}
		if ch.LiaisonOfficerUuid == m.Uuid && ch.LiaisonOfficerName != m.FullName() {
			ch.LiaisonOfficerName = m.FullName()
			changed = true
		}
		if changed {
			chapter := ch
			if err := s.cache.UpdateChapter(&chapter); err != nil {
				zap.L().Error("刷新分会职务姓名失败",
					zap.String("chapter", ch.Uuid), zap.Error(err))
			}
		}
	}
}

// DeleteMembers 批量删除会员
// 删除前清空其占用的分会职务槽位并撤销未决调动申请
func (s *memberService) DeleteMembers(uuidList []string) error {
	if len(uuidList) == 0 {
		return nil
	}
	for _, uuid := range uuidList {
		m := s.cache.MemberByUuid(uuid)
		if m == nil {
			continue // 幂等：不存在视为已删除
		}

		for _, ch := range s.cache.Chapters() {
			if ch.ChiefOfficerUuid != uuid && ch.LiaisonOfficerUuid != uuid {
				continue
			}
			chapter := ch
			if chapter.ChiefOfficerUuid == uuid {
				chapter.ChiefOfficerUuid = ""
				chapter.ChiefOfficerName = ""
			}
			if chapter.LiaisonOfficerUuid == uuid {
				chapter.LiaisonOfficerUuid = ""
				chapter.LiaisonOfficerName = ""
			}
			if err := s.cache.UpdateChapter(&chapter); err != nil {
				zap.L().Error("清空分会职务槽位失败",
					zap.String("chapter", ch.Uuid), zap.Error(err))
			}
		}

		if pending := s.cache.PendingTransferOf(uuid); pending != nil {
			if err := s.cache.SetTransferStatus(pending.Uuid, transfer_status_enum.CANCELLED); err != nil {
				zap.L().Error("撤销未决调动申请失败",
					zap.String("transfer", pending.Uuid), zap.Error(err))
			}
		}

		if err := s.cache.DeleteMember(uuid); err != nil {
			zap.L().Error("删除会员失败", zap.String("member", uuid), zap.Error(err))
			return errorx.ErrServerBusy
		}
	}
	return nil
}

// CheckMemberNumber 校验新编号是否可用
// 占用判断排除会员自身：改回自己当前编号视为可用
func (s *memberService) CheckMemberNumber(req request.CheckMemberNumberRequest) (*respond.CheckMemberNumberRespond, error) {
	if s.cache.MemberByUuid(req.Uuid) == nil {
		return nil, errorx.ErrMemberNotExist
	}
	number := strings.TrimSpace(req.Number)
	if number == "" {
		return nil, errorx.ErrInvalidParam
	}
	if existing := s.cache.MemberByNumber(number); existing != nil && existing.Uuid != req.Uuid {
		return &respond.CheckMemberNumberRespond{Result: respond.NumberTaken}, nil
	}
	return &respond.CheckMemberNumberRespond{Result: respond.NumberValid}, nil
}

// ChangeMemberNumber 变更会员对外编号
// 先走与 CheckMemberNumber 相同的校验，提交为单行更新，
// 数据库唯一索引兜底并发竞争
func (s *memberService) ChangeMemberNumber(req request.ChangeMemberNumberRequest) error {
	m := s.cache.MemberByUuid(req.Uuid)
	if m == nil {
		return errorx.ErrMemberNotExist
	}
	newNumber := strings.TrimSpace(req.NewNumber)
	if newNumber == "" {
		return errorx.ErrInvalidParam
	}
	if newNumber == m.Number {
		return nil // 编号未变，幂等成功
	}
	if existing := s.cache.MemberByNumber(newNumber); existing != nil {
		return errorx.Newf(errorx.CodeNumberTaken, "会员编号 %s 已被占用", newNumber)
	}
	if err := s.cache.ChangeMemberNumber(req.Uuid, newNumber); err != nil {
		zap.L().Error("变更会员编号失败", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}

// SetPhotoURL 更新会员照片地址
func (s *memberService) SetPhotoURL(uuid, url string) error {
	m := s.cache.MemberByUuid(uuid)
	if m == nil {
		return errorx.ErrMemberNotExist
	}
	m.PhotoURL = url
	if err := s.cache.UpdateMember(m); err != nil {
		zap.L().Error("更新会员照片失败", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}

// SendDuesReminder 发送欠费提醒短信
// 同一会员 24 小时内只发一次，节流状态存 Redis
func (s *memberService) SendDuesReminder(uuid string) error {
	m := s.cache.MemberByUuid(uuid)
	if m == nil {
		return errorx.ErrMemberNotExist
	}
	status := dues.Classify(m.LastPaymentDate, today())
	if status == dues_status_enum.ALDIA {
		return errorx.New(errorx.CodeInvalidParam, "该会员缴费状态正常，无需提醒")
	}
	if m.Phone == "" {
		return errorx.New(errorx.CodeInvalidParam, "该会员未登记电话，无法发送提醒")
	}

	ctx := context.Background()
	key := constants.REMINDER_KEY_PREFIX + uuid
	exists, err := myredis.KeyExists(ctx, key)
	if err != nil {
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	if exists {
		return errorx.New(errorx.CodeInvalidParam, "24 小时内已向该会员发送过提醒")
	}

	if err := sms.DuesReminder(m.Phone, m.FullName(), status); err != nil {
		zap.L().Error("发送欠费提醒短信失败", zap.String("member", uuid), zap.Error(err))
		return errorx.ErrServerBusy
	}

	if err := myredis.SetKeyEx(ctx, key, status, time.Duration(constants.REMINDER_TTL_HOURS)*time.Hour); err != nil {
		// 节流失败不影响已发送结果，仅记录
		zap.L().Error("写入提醒节流标记失败", zap.Error(err))
	}
	return nil
}
