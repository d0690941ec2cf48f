// 本文件处理分会调动相关的 API 请求
package handler

import (
	"github.com/gin-gonic/gin"

	"consulado_admin_server/internal/dto/request"
	"consulado_admin_server/internal/service"
)

// TransferHandler 调动请求处理器
type TransferHandler struct {
	transferSvc service.TransferService
}

// NewTransferHandler 创建调动处理器实例
func NewTransferHandler(transferSvc service.TransferService) *TransferHandler {
	return &TransferHandler{transferSvc: transferSvc}
}

// CreateTransfer 发起调动申请
// POST /transfer/createTransfer
func (h *TransferHandler) CreateTransfer(c *gin.Context) {
	var req request.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.transferSvc.CreateTransfer(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateTransferStatus 申请状态流转（批准/拒绝/撤销）
// POST /transfer/updateTransferStatus
func (h *TransferHandler) UpdateTransferStatus(c *gin.Context) {
	var req request.UpdateTransferStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.transferSvc.UpdateTransferStatus(req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetTransferList 分会视角的调动申请列表
// GET /transfer/getTransferList?chapter_uuid=xxx
func (h *TransferHandler) GetTransferList(c *gin.Context) {
	data, err := h.transferSvc.GetTransferList(c.Query("chapter_uuid"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetAllTransfers 全部调动申请（总部视角）
// GET /transfer/getAllTransfers
func (h *TransferHandler) GetAllTransfers(c *gin.Context) {
	data, err := h.transferSvc.GetAllTransfers()
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
