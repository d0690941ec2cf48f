// Package roster 维护会员/分会/调动申请的内存镜像（花名册缓存）
// 远端 MySQL 是唯一事实来源；所有写操作先落库，成功后再更新内存并同步
// 通知订阅者。订阅者收到通知后应通过 Getter 重新拉取，而不是依赖事件携带
// 的增量数据（notify-then-refetch 模式）
package roster

// 事件实体类型
const (
	EntityMember   = "member"
	EntityChapter  = "chapter"
	EntityTransfer = "transfer"
)

// 事件动作类型
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionStatus = "status" // 调动申请状态流转
)

// Event 花名册变更事件
// 负载刻意保持最小：界面订阅者只需要知道"变了"，审计订阅者需要知道变了什么
type Event struct {
	Entity string `json:"entity"`
	Action string `json:"action"`
	Uuid   string `json:"uuid"`
}

// Subscriber 花名册变更订阅者
type Subscriber interface {
	RosterChanged(ev Event)
}

// SubscriberFunc 函数适配器，便于用闭包注册订阅
type SubscriberFunc func(ev Event)

// RosterChanged 实现 Subscriber 接口
func (f SubscriberFunc) RosterChanged(ev Event) {
	f(ev)
}
