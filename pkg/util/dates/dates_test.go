package dates

import (
	"fmt"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  *CalendarDate
	}{
		{"2024-06-01", &CalendarDate{2024, 6, 1}},
		{"01-06-2024", &CalendarDate{2024, 6, 1}},
		{"01/06/2024", &CalendarDate{2024, 6, 1}},
		{"06/2024", &CalendarDate{2024, 6, 1}}, // 日默认为 1
		{"2024-6-1", &CalendarDate{2024, 6, 1}},
		{"1/6/2024", &CalendarDate{2024, 6, 1}},
		{"  2024-06-01  ", &CalendarDate{2024, 6, 1}},
		{"", nil},
		{"   ", nil},
		{"no-es-fecha", nil},
		{"2024-13-01", nil}, // 13 月非法
		{"31-02-2024", nil}, // 2 月没有 31 日
		{"00/2024", nil},
		{"2024/06/01", nil}, // 斜杠格式不允许年份在前
		{"29-02-2023", nil}, // 非闰年
		{"29-02-2024", &CalendarDate{2024, 2, 29}}, // 闰年
	}
	for _, tt := range tests {
		got := Parse(tt.input)
		if tt.want == nil {
			if got != nil {
				t.Errorf("Parse(%q) = %+v, want nil", tt.input, got)
			}
			continue
		}
		if got == nil || *got != *tt.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}

// TestRoundTrip 对所有合法 (日,月,年) 组合验证
// toStorage(parse(toDisplay(d))) == toStorage(d)
func TestRoundTrip(t *testing.T) {
	for month := 1; month <= 12; month++ {
		for day := 1; day <= 31; day++ {
			d := &CalendarDate{Year: 2023, Month: month, Day: day}
			display := ToDisplay(d)
			parsed := Parse(display)
			if newValidDate(2023, month, day) == nil {
				// 该组合本身不是合法日期（如 31/04），跳过
				continue
			}
			if parsed == nil {
				t.Fatalf("Parse(ToDisplay(%+v)) = nil", d)
			}
			if ToStorage(parsed) != ToStorage(d) {
				t.Errorf("round trip %+v: got %s, want %s", d, ToStorage(parsed), ToStorage(d))
			}
		}
	}
}

func TestToStorageNil(t *testing.T) {
	if got := ToStorage(nil); got != "" {
		t.Errorf("ToStorage(nil) = %q, want empty", got)
	}
	if got := ToDisplay(nil); got != "" {
		t.Errorf("ToDisplay(nil) = %q, want empty", got)
	}
}

func TestToDisplay(t *testing.T) {
	d := &CalendarDate{Year: 2024, Month: 6, Day: 5}
	if got := ToDisplay(d); got != "05/06/2024" {
		t.Errorf("ToDisplay = %q, want 05/06/2024", got)
	}
	if got := ToStorage(d); got != "2024-06-05" {
		t.Errorf("ToStorage = %q, want 2024-06-05", got)
	}
}

func TestFormatAsTyped(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", ""},
		{"1", "1"},
		{"12", "12"},
		{"123", "12/3"},
		{"1203", "12/03"},
		{"12031", "12/03/1"},
		{"12031990", "12/03/1990"},
		{"120319901", "12/03/1990"},  // 超过 8 位截断
		{"12a03x1990", "12/03/1990"}, // 非数字字符剔除
	}
	for _, tt := range tests {
		if got := FormatAsTyped(tt.raw); got != tt.want {
			t.Errorf("FormatAsTyped(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func ExampleFormatAsTyped() {
	fmt.Println(FormatAsTyped("05061989"))
	// Output: 05/06/1989
}
