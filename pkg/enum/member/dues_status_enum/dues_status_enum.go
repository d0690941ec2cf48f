// Package dues_status_enum 定义会费缴纳状态（派生值，不入库）
package dues_status_enum

const (
	ALDIA   = "ALDIA"   // 已缴清（al día）
	ENDEUDA = "ENDEUDA" // 欠费 1-6 个月（en deuda）
	DEBAJA  = "DEBAJA"  // 欠费超过 6 个月，视为退会（de baja）
)
