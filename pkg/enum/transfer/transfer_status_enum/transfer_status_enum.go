// Package transfer_status_enum 定义分会调动申请的状态
// 状态流转单向：PENDING 为唯一初始态，其余三个均为终态
package transfer_status_enum

const (
	PENDING   = "Pending"   // 待目标分会处理
	APPROVED  = "Approved"  // 目标分会已批准（终态）
	REJECTED  = "Rejected"  // 目标分会已拒绝（终态）
	CANCELLED = "Cancelled" // 发起方在批准前撤销（终态）
)

// IsTerminal 判断状态是否为终态
func IsTerminal(status string) bool {
	return status == APPROVED || status == REJECTED || status == CANCELLED
}
