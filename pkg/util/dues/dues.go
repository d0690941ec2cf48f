// Package dues 根据最近一次缴费日期派生会费状态
// 会费按月计费，因此按"月索引差"而不是天数比较，
// 避免月末缴费（31 号 vs 1 号）带来的边界问题
package dues

import (
	"consulado_admin_server/pkg/enum/member/dues_status_enum"
	"consulado_admin_server/pkg/util/dates"
)

// 欠费超过该月数视为退会
const lapsedAfterMonths = 6

// Classify 派生会费状态
// lastPaymentRaw 为任意支持格式的缴费日期文本；now 由调用方注入，便于测试
// 解析失败或为空时归为 ENDEUDA：宁可提示"需要关注"，也不默认"状态良好"
func Classify(lastPaymentRaw string, now dates.CalendarDate) string {
	paid := dates.Parse(lastPaymentRaw)
	if paid == nil {
		return dues_status_enum.ENDEUDA
	}

	diffMonths := (now.Year*12 + now.Month) - (paid.Year*12 + paid.Month)
	switch {
	case diffMonths <= 0:
		return dues_status_enum.ALDIA
	case diffMonths <= lapsedAfterMonths:
		return dues_status_enum.ENDEUDA
	default:
		return dues_status_enum.DEBAJA
	}
}
