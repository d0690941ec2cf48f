// Package dates 提供会员日期的解析与格式化
// 入库统一使用 YYYY-MM-DD，界面显示使用 DD/MM/YYYY
// 历史数据中存在多种手输格式，解析时需要全部兼容
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// CalendarDate 规范化的公历日期
type CalendarDate struct {
	Year  int
	Month int
	Day   int
}

// 支持的四种文本格式
// 存储格式、两种手输格式、以及只有月份的退化格式（日默认为 1）
var (
	storagePattern   = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`) // YYYY-MM-DD
	dashPattern      = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})-(\d{4})$`) // DD-MM-YYYY
	slashPattern     = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`) // DD/MM/YYYY
	monthYearPattern = regexp.MustCompile(`^(\d{1,2})/(\d{4})$`)           // MM/YYYY
)

// Parse 解析文本日期
// 依次尝试所有支持的格式；无法匹配或日期非法（如 13 月）时返回 nil 而不是错误
// 空串/全空白输入返回 nil
func Parse(input string) *CalendarDate {
	s := strings.TrimSpace(input)
	if s == "" {
		return nil
	}

	if m := storagePattern.FindStringSubmatch(s); m != nil {
		return newValidDate(atoi(m[1]), atoi(m[2]), atoi(m[3]))
	}
	if m := dashPattern.FindStringSubmatch(s); m != nil {
		return newValidDate(atoi(m[3]), atoi(m[2]), atoi(m[1]))
	}
	if m := slashPattern.FindStringSubmatch(s); m != nil {
		return newValidDate(atoi(m[3]), atoi(m[2]), atoi(m[1]))
	}
	if m := monthYearPattern.FindStringSubmatch(s); m != nil {
		// 只有月份时日默认为 1
		return newValidDate(atoi(m[2]), atoi(m[1]), 1)
	}
	return nil
}

// ToStorage 转为存储格式 YYYY-MM-DD
// nil 输入返回空串，不会 panic
func ToStorage(d *CalendarDate) string {
	if d == nil {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// ToDisplay 转为显示格式 DD/MM/YYYY
// nil 输入返回空串
func ToDisplay(d *CalendarDate) string {
	if d == nil {
		return ""
	}
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, d.Month, d.Year)
}

// FormatAsTyped 输入框实时掩码
// 只保留数字（按 DDMMYYYY 最多 8 位），每满两位插入一个分隔符
// 纯函数，只依赖当前已键入的字符串
func FormatAsTyped(rawDigits string) string {
	var digits []byte
	for i := 0; i < len(rawDigits) && len(digits) < 8; i++ {
		if rawDigits[i] >= '0' && rawDigits[i] <= '9' {
			digits = append(digits, rawDigits[i])
		}
	}

	var b strings.Builder
	for i, c := range digits {
		// 日和月各占两位，满两位后补分隔符
		if i == 2 || i == 4 {
			b.WriteByte('/')
		}
		b.WriteByte(c)
	}
	return b.String()
}

// newValidDate 构造日期并校验合法性
// 借助 time.Date 的归一化行为：如果传入 2 月 30 日，
// 归一化后的日期会发生进位，与原值不一致即为非法
func newValidDate(year, month, day int) *CalendarDate {
	if month < 1 || month > 12 || day < 1 || day > 31 || year < 1 {
		return nil
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return nil
	}
	return &CalendarDate{Year: year, Month: month, Day: day}
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
