// Package transfer 分会调动业务逻辑
// 状态机：Pending 为唯一初始态，Approved/Rejected/Cancelled 均为终态，
// 终态之间不可再流转；批准的副作用由花名册缓存在一个事务中提交
package transfer

import (
	"time"

	"go.uber.org/zap"

	"consulado_admin_server/internal/dto/request"
	"consulado_admin_server/internal/dto/respond"
	"consulado_admin_server/internal/model"
	"consulado_admin_server/internal/service/roster"
	"consulado_admin_server/pkg/constants"
	"consulado_admin_server/pkg/enum/transfer/transfer_status_enum"
	"consulado_admin_server/pkg/errorx"
	"consulado_admin_server/pkg/util/dates"
	"consulado_admin_server/pkg/util/snowflake"
)

// transferService 调动业务逻辑实现
type transferService struct {
	cache *roster.Cache
}

// NewTransferService 构造函数，注入花名册缓存
func NewTransferService(cache *roster.Cache) *transferService {
	return &transferService{cache: cache}
}

// chapterDisplayName 分会快照名，空串表示总部
func (s *transferService) chapterDisplayName(chapterUuid string) string {
	if chapterUuid == "" {
		return constants.CENTRAL_CHAPTER_NAME
	}
	if ch := s.cache.ChapterByUuid(chapterUuid); ch != nil {
		return ch.Name
	}
	return ""
}

func toTransferRespond(t *model.TransferRequest) respond.TransferRespond {
	return respond.TransferRespond{
		Uuid:            t.Uuid,
		MemberUuid:      t.MemberUuid,
		MemberName:      t.MemberName,
		FromChapterUuid: t.FromChapterUuid,
		FromChapterName: t.FromChapterName,
		ToChapterUuid:   t.ToChapterUuid,
		ToChapterName:   t.ToChapterName,
		RequestDate:     t.RequestDate,
		Status:          t.Status,
		Comment:         t.Comment,
	}
}

// CreateTransfer 发起调动申请
// 同一会员同时只允许一条未决申请；目标分会必须存在且不同于当前归属
func (s *transferService) CreateTransfer(req request.CreateTransferRequest) (*respond.TransferRespond, error) {
	m := s.cache.MemberByUuid(req.MemberUuid)
	if m == nil {
		return nil, errorx.ErrMemberNotExist
	}
	if req.ToChapterUuid != "" && s.cache.ChapterByUuid(req.ToChapterUuid) == nil {
		return nil, errorx.ErrChapterNotExist
	}
	if req.ToChapterUuid == m.ChapterUuid {
		return nil, errorx.New(errorx.CodeSameChapter, "目标分会与当前归属相同")
	}
	if pending := s.cache.PendingTransferOf(m.Uuid); pending != nil {
		return nil, errorx.Newf(errorx.CodeTransferPending,
			"该会员已有未决调动申请 %s，请先处理", pending.Uuid)
	}

	now := time.Now()
	newReq := model.TransferRequest{
		Uuid:            "T" + snowflake.GenerateIDString(),
		MemberUuid:      m.Uuid,
		MemberName:      m.FullName(),
		FromChapterUuid: m.ChapterUuid,
		FromChapterName: s.chapterDisplayName(m.ChapterUuid),
		ToChapterUuid:   req.ToChapterUuid,
		ToChapterName:   s.chapterDisplayName(req.ToChapterUuid),
		RequestDate: dates.ToStorage(&dates.CalendarDate{
			Year: now.Year(), Month: int(now.Month()), Day: now.Day(),
		}),
		Status:  transfer_status_enum.PENDING,
		Comment: req.Comment,
	}

	if err := s.cache.CreateTransferRequest(&newReq); err != nil {
		zap.L().Error("创建调动申请失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	rsp := toTransferRespond(&newReq)
	return &rsp, nil
}

// UpdateTransferStatus 申请状态流转
// 只允许 Pending → 终态；批准时由缓存事务性提交全部副作用
func (s *transferService) UpdateTransferStatus(req request.UpdateTransferStatusRequest) error {
	t := s.cache.TransferByUuid(req.Uuid)
	if t == nil {
		return errorx.Newf(errorx.CodeNotFound, "调动申请 %s 不存在", req.Uuid)
	}
	if transfer_status_enum.IsTerminal(t.Status) {
		return errorx.Newf(errorx.CodeInvalidTransition,
			"申请已处于终态 %s，不可再流转", t.Status)
	}

	switch req.Status {
	case transfer_status_enum.APPROVED:
		if err := s.cache.ApproveTransfer(t.Uuid); err != nil {
			zap.L().Error("批准调动申请失败", zap.String("transfer", t.Uuid), zap.Error(err))
			return errorx.ErrServerBusy
		}
	case transfer_status_enum.REJECTED, transfer_status_enum.CANCELLED:
		if err := s.cache.SetTransferStatus(t.Uuid, req.Status); err != nil {
			zap.L().Error("更新调动申请状态失败", zap.String("transfer", t.Uuid), zap.Error(err))
			return errorx.ErrServerBusy
		}
	default:
		return errorx.Newf(errorx.CodeInvalidParam, "未知的目标状态 %s", req.Status)
	}
	return nil
}

// GetTransferList 分会视角的申请列表
func (s *transferService) GetTransferList(chapterUuid string) (*respond.GetTransferListRespond, error) {
	if chapterUuid != "" && s.cache.ChapterByUuid(chapterUuid) == nil {
		return nil, errorx.ErrChapterNotExist
	}
	incoming, outgoing := s.cache.TransfersOf(chapterUuid)
	rsp := &respond.GetTransferListRespond{
		Incoming: make([]respond.TransferRespond, 0, len(incoming)),
		Outgoing: make([]respond.TransferRespond, 0, len(outgoing)),
	}
	for i := range incoming {
		rsp.Incoming = append(rsp.Incoming, toTransferRespond(&incoming[i]))
	}
	for i := range outgoing {
		rsp.Outgoing = append(rsp.Outgoing, toTransferRespond(&outgoing[i]))
	}
	return rsp, nil
}

// GetAllTransfers 全部申请（总部视角，含历史终态记录）
func (s *transferService) GetAllTransfers() ([]respond.TransferRespond, error) {
	transfers := s.cache.AllTransfers()
	rsp := make([]respond.TransferRespond, 0, len(transfers))
	for i := range transfers {
		rsp = append(rsp, toTransferRespond(&transfers[i]))
	}
	return rsp, nil
}
