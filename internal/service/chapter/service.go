// Package chapter 分会业务逻辑
// 包含职务一致性校正：会长跨分会唯一、联络官每分会至多一人、
// 同一会员不得在同一分会身兼两职
package chapter

import (
	"strings"

	"go.uber.org/zap"

	"consulado_admin_server/internal/dto/request"
	"consulado_admin_server/internal/dto/respond"
	"consulado_admin_server/internal/model"
	"consulado_admin_server/internal/service/roster"
	"consulado_admin_server/pkg/enum/member/role_enum"
	"consulado_admin_server/pkg/enum/transfer/transfer_status_enum"
	"consulado_admin_server/pkg/errorx"
	"consulado_admin_server/pkg/util/dates"
	"consulado_admin_server/pkg/util/random"
)

// chapterService 分会业务逻辑实现
type chapterService struct {
	cache *roster.Cache
}

// NewChapterService 构造函数，注入花名册缓存
func NewChapterService(cache *roster.Cache) *chapterService {
	return &chapterService{cache: cache}
}

func (s *chapterService) toChapterRespond(ch *model.Chapter) respond.ChapterRespond {
	officialSince := ch.OfficialSince
	if d := dates.Parse(officialSince); d != nil {
		officialSince = dates.ToDisplay(d)
	}
	return respond.ChapterRespond{
		Uuid:               ch.Uuid,
		Name:               ch.Name,
		City:               ch.City,
		Country:            ch.Country,
		Address:            ch.Address,
		Email:              ch.Email,
		Phone:              ch.Phone,
		Instagram:          ch.Instagram,
		Facebook:           ch.Facebook,
		ChiefOfficerUuid:   ch.ChiefOfficerUuid,
		ChiefOfficerName:   ch.ChiefOfficerName,
		LiaisonOfficerUuid: ch.LiaisonOfficerUuid,
		LiaisonOfficerName: ch.LiaisonOfficerName,
		IsOfficial:         ch.IsOfficial,
		OfficialSince:      officialSince,
		LogoURL:            ch.LogoURL,
		BannerURL:          ch.BannerURL,
		MemberCount:        len(s.cache.MembersOf(ch.Uuid)),
	}
}

// GetChapterList 获取全部分会
func (s *chapterService) GetChapterList() ([]respond.ChapterRespond, error) {
	chapters := s.cache.Chapters()
	rsp := make([]respond.ChapterRespond, 0, len(chapters))
	for i := range chapters {
		rsp = append(rsp, s.toChapterRespond(&chapters[i]))
	}
	return rsp, nil
}

// GetChapterInfo 获取分会详情
func (s *chapterService) GetChapterInfo(uuid string) (*respond.ChapterRespond, error) {
	ch := s.cache.ChapterByUuid(uuid)
	if ch == nil {
		return nil, errorx.ErrChapterNotExist
	}
	rsp := s.toChapterRespond(ch)
	return &rsp, nil
}

// validateOfficers 职务指派的硬校验
// 被指派的会员必须存在；同一会员不能同时担任本分会的会长和联络官；
// 联络官不能是任何分会的现任会长
func (s *chapterService) validateOfficers(chapterUuid, chiefUuid, liaisonUuid string) error {
	if chiefUuid != "" && chiefUuid == liaisonUuid {
		return errorx.New(errorx.CodeInvalidParam, "同一会员不能同时担任会长和联络官")
	}
	if chiefUuid != "" && s.cache.MemberByUuid(chiefUuid) == nil {
		return errorx.Newf(errorx.CodeMemberNotExist, "会长候选会员 %s 不存在", chiefUuid)
	}
	if liaisonUuid != "" {
		if s.cache.MemberByUuid(liaisonUuid) == nil {
			return errorx.Newf(errorx.CodeMemberNotExist, "联络官候选会员 %s 不存在", liaisonUuid)
		}
		for _, other := range s.cache.Chapters() {
			if other.Uuid != chapterUuid && other.ChiefOfficerUuid == liaisonUuid {
				return errorx.Newf(errorx.CodeInvalidParam,
					"该会员已担任 %s 的会长，不能再任联络官", other.Name)
			}
		}
	}
	return nil
}

// officerName 指派职务时的冗余姓名
func (s *chapterService) officerName(memberUuid string) string {
	if m := s.cache.MemberByUuid(memberUuid); m != nil {
		return m.FullName()
	}
	return ""
}

// CreateChapter 创建分会
func (s *chapterService) CreateChapter(req request.CreateChapterRequest) (*respond.ChapterRespond, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errorx.ErrInvalidParam
	}
	if s.cache.ChapterByName(name) != nil {
		return nil, errorx.Newf(errorx.CodeInvalidParam, "分会名称 %s 已存在", name)
	}
	newChapter := model.Chapter{
		Uuid:          "C" + random.GetNowAndLenRandomString(13),
		Name:          name,
		City:          req.City,
		Country:       req.Country,
		Address:       req.Address,
		Email:         req.Email,
		Phone:         req.Phone,
		Instagram:     req.Instagram,
		Facebook:      req.Facebook,
		IsOfficial:    req.IsOfficial,
		OfficialSince: dates.ToStorage(dates.Parse(req.OfficialSince)),
	}
	if err := s.validateOfficers(newChapter.Uuid, req.ChiefOfficerUuid, req.LiaisonOfficerUuid); err != nil {
		return nil, err
	}
	newChapter.ChiefOfficerUuid = req.ChiefOfficerUuid
	newChapter.ChiefOfficerName = s.officerName(req.ChiefOfficerUuid)
	newChapter.LiaisonOfficerUuid = req.LiaisonOfficerUuid
	newChapter.LiaisonOfficerName = s.officerName(req.LiaisonOfficerUuid)

	if err := s.cache.AddChapter(&newChapter); err != nil {
		zap.L().Error("创建分会失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	s.reconcileOfficers(&newChapter, "", "")

	rsp := s.toChapterRespond(&newChapter)
	return &rsp, nil
}

// UpdateChapter 更新分会信息
func (s *chapterService) UpdateChapter(req request.UpdateChapterRequest) error {
	ch := s.cache.ChapterByUuid(req.Uuid)
	if ch == nil {
		return errorx.ErrChapterNotExist
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return errorx.ErrInvalidParam
	}
	if other := s.cache.ChapterByName(name); other != nil && other.Uuid != ch.Uuid {
		return errorx.Newf(errorx.CodeInvalidParam, "分会名称 %s 已存在", name)
	}
	if err := s.validateOfficers(ch.Uuid, req.ChiefOfficerUuid, req.LiaisonOfficerUuid); err != nil {
		return err
	}

	prevChief := ch.ChiefOfficerUuid
	prevLiaison := ch.LiaisonOfficerUuid

	ch.Name = name
	ch.City = req.City
	ch.Country = req.Country
	ch.Address = req.Address
	ch.Email = req.Email
	ch.Phone = req.Phone
	ch.Instagram = req.Instagram
	ch.Facebook = req.Facebook
	ch.IsOfficial = req.IsOfficial
	ch.OfficialSince = dates.ToStorage(dates.Parse(req.OfficialSince))
	ch.ChiefOfficerUuid = req.ChiefOfficerUuid
	ch.ChiefOfficerName = s.officerName(req.ChiefOfficerUuid)
	ch.LiaisonOfficerUuid = req.LiaisonOfficerUuid
	ch.LiaisonOfficerName = s.officerName(req.LiaisonOfficerUuid)

	if err := s.cache.UpdateChapter(ch); err != nil {
		zap.L().Error("更新分会失败", zap.Error(err))
		return errorx.ErrServerBusy
	}

	s.reconcileOfficers(ch, prevChief, prevLiaison)
	return nil
}

// reconcileOfficers 职务一致性校正
// 在分会档案保存成功后执行；每一步独立提交，失败只记日志不回滚，
// 下一次指派会再次触发校正
//
// 校正规则：
//  1. 新会长若在其他分会任会长或联络官，清空原槽位（会长跨分会唯一）
//  2. 新联络官若在其他分会任联络官，清空原槽位
//  3. 新任职者职务字段改为对应职务
//  4. 被顶替的前任若不再担任任何职务，降为普通会员
func (s *chapterService) reconcileOfficers(ch *model.Chapter, prevChief, prevLiaison string) {
	if ch.ChiefOfficerUuid != "" && ch.ChiefOfficerUuid != prevChief {
		s.vacateElsewhere(ch.Uuid, ch.ChiefOfficerUuid)
		s.setRole(ch.ChiefOfficerUuid, role_enum.CHIEF)
	}
	if ch.LiaisonOfficerUuid != "" && ch.LiaisonOfficerUuid != prevLiaison {
		s.vacateElsewhere(ch.Uuid, ch.LiaisonOfficerUuid)
		s.setRole(ch.LiaisonOfficerUuid, role_enum.LIAISON)
	}
	if prevChief != "" && prevChief != ch.ChiefOfficerUuid {
		s.demoteIfOfficeless(prevChief)
	}
	if prevLiaison != "" && prevLiaison != ch.LiaisonOfficerUuid {
		s.demoteIfOfficeless(prevLiaison)
	}
}

// vacateElsewhere 清空其他分会指向该会员的职务槽位
func (s *chapterService) vacateElsewhere(keepChapterUuid, memberUuid string) {
	for _, other := range s.cache.Chapters() {
		if other.Uuid == keepChapterUuid {
			continue
		}
		if other.ChiefOfficerUuid != memberUuid && other.LiaisonOfficerUuid != memberUuid {
			continue
		}
		updated := other
		if updated.ChiefOfficerUuid == memberUuid {
			updated.ChiefOfficerUuid = ""
			updated.ChiefOfficerName = ""
		}
		if updated.LiaisonOfficerUuid == memberUuid {
			updated.LiaisonOfficerUuid = ""
			updated.LiaisonOfficerName = ""
		}
		if err := s.cache.UpdateChapter(&updated); err != nil {
			zap.L().Error("清空其他分会职务槽位失败",
				zap.String("chapter", other.Uuid),
				zap.String("member", memberUuid), zap.Error(err))
		}
	}
}

// setRole 更新会员职务字段，失败只记日志
func (s *chapterService) setRole(memberUuid string, role int8) {
	m := s.cache.MemberByUuid(memberUuid)
	if m == nil || m.Role == role {
		return
	}
	if err := s.cache.UpdateMemberRole(memberUuid, role); err != nil {
		zap.L().Error("更新会员职务失败",
			zap.String("member", memberUuid), zap.Error(err))
	}
}

// demoteIfOfficeless 前任不再担任任何职务时降为普通会员
func (s *chapterService) demoteIfOfficeless(memberUuid string) {
	for _, ch := range s.cache.Chapters() {
		if ch.ChiefOfficerUuid == memberUuid || ch.LiaisonOfficerUuid == memberUuid {
			return // 仍在别处任职，保留职务
		}
	}
	s.setRole(memberUuid, role_enum.ORDINARY)
}

// SetImageURL 更新分会会徽/横幅地址
func (s *chapterService) SetImageURL(uuid, field, url string) error {
	ch := s.cache.ChapterByUuid(uuid)
	if ch == nil {
		return errorx.ErrChapterNotExist
	}
	switch field {
	case "logo":
		ch.LogoURL = url
	case "banner":
		ch.BannerURL = url
	default:
		return errorx.Newf(errorx.CodeInvalidParam, "未知的图片字段 %s", field)
	}
	if err := s.cache.UpdateChapter(ch); err != nil {
		zap.L().Error("更新分会图片失败", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}

// DeleteChapter 删除分会
// 需要输入与分会名称完全一致的确认短语；删除后该分会会员回归总部，
// 涉及该分会的未决调动申请一并撤销
func (s *chapterService) DeleteChapter(req request.DeleteChapterRequest) error {
	ch := s.cache.ChapterByUuid(req.Uuid)
	if ch == nil {
		return errorx.ErrChapterNotExist
	}
	if req.ConfirmName != ch.Name {
		return errorx.New(errorx.CodeConfirmMismatch, "确认短语与分会名称不一致")
	}

	// 会员回归总部，任职者降为普通会员
	for _, m := range s.cache.MembersOf(ch.Uuid) {
		role := m.Role
		if role == role_enum.CHIEF || role == role_enum.LIAISON {
			role = role_enum.ORDINARY
		}
		member := m
		member.ChapterUuid = ""
		member.Role = role
		if err := s.cache.UpdateMember(&member); err != nil {
			zap.L().Error("会员回归总部失败",
				zap.String("member", m.Uuid), zap.Error(err))
		}
	}

	// 撤销涉及该分会的未决申请
	incoming, outgoing := s.cache.TransfersOf(ch.Uuid)
	for _, t := range append(incoming, outgoing...) {
		if transfer_status_enum.IsTerminal(t.Status) {
			continue
		}
		if err := s.cache.SetTransferStatus(t.Uuid, transfer_status_enum.CANCELLED); err != nil {
			zap.L().Error("撤销调动申请失败",
				zap.String("transfer", t.Uuid), zap.Error(err))
		}
	}

	if err := s.cache.DeleteChapter(ch.Uuid); err != nil {
		zap.L().Error("删除分会失败", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}
