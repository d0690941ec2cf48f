package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"consulado_admin_server/pkg/constants"
)

func TestInvalidationTarget(t *testing.T) {
	tests := []struct {
		name        string
		ev          Event
		wantKey     string
		wantPattern string
	}{
		{
			name:    "会员档案更新清理提醒节流标记",
			ev:      Event{Entity: EntityMember, Action: ActionUpdate, Uuid: "S1"},
			wantKey: constants.REMINDER_KEY_PREFIX + "S1",
		},
		{
			name:        "会员删除按模式清理名下全部派生键",
			ev:          Event{Entity: EntityMember, Action: ActionDelete, Uuid: "S1"},
			wantPattern: "*S1",
		},
		{
			name: "新建会员无旧键可清",
			ev:   Event{Entity: EntityMember, Action: ActionCreate, Uuid: "S1"},
		},
		{
			name: "分会事件不触发清理",
			ev:   Event{Entity: EntityChapter, Action: ActionUpdate, Uuid: "C1"},
		},
		{
			name: "调动事件不触发清理",
			ev:   Event{Entity: EntityTransfer, Action: ActionStatus, Uuid: "T1"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, pattern := invalidationTarget(tt.ev)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantPattern, pattern)
		})
	}
}

func TestInvalidatorDetachIdempotent(t *testing.T) {
	c := NewCache(&fakeStore{})
	iv := &Invalidator{}
	iv.Attach(c)
	iv.Detach()
	iv.Detach() // 重复 Detach 不应 panic
}
