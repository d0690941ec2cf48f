package roster

import (
	"context"

	"go.uber.org/zap"

	myredis "consulado_admin_server/internal/dao/redis"
	"consulado_admin_server/pkg/constants"
)

// Invalidator 订阅花名册变更，异步清理 Redis 中按会员维度缓存的派生键
// 清理任务经 Worker Pool 提交，不阻塞通知回调
type Invalidator struct {
	unsubscribe func()
}

// Attach 订阅花名册缓存
func (iv *Invalidator) Attach(cache *Cache) {
	iv.unsubscribe = cache.Subscribe(iv)
}

// Detach 取消订阅
func (iv *Invalidator) Detach() {
	if iv.unsubscribe != nil {
		iv.unsubscribe()
		iv.unsubscribe = nil
	}
}

// RosterChanged 实现 Subscriber 接口
// 档案更新后缴费状态可能已变化，单键清理对应的提醒节流标记；
// 会员删除后其名下的全部派生键均为垃圾，按模式批量清理
func (iv *Invalidator) RosterChanged(ev Event) {
	key, pattern := invalidationTarget(ev)
	switch {
	case key != "":
		myredis.SubmitCacheTask(func() {
			if err := myredis.DelKeyIfExists(context.Background(), key); err != nil {
				zap.L().Error("清理派生键失败", zap.String("key", key), zap.Error(err))
			}
		})
	case pattern != "":
		myredis.SubmitCacheTask(func() {
			if err := myredis.DelKeysWithPattern(context.Background(), pattern); err != nil {
				zap.L().Error("按模式清理派生键失败", zap.String("pattern", pattern), zap.Error(err))
			}
		})
	}
}

// invalidationTarget 根据事件推导清理动作
// 返回单键或模式，两者至多一个非空；无需清理时均为空串
func invalidationTarget(ev Event) (key, pattern string) {
	if ev.Entity != EntityMember {
		return "", ""
	}
	switch ev.Action {
	case ActionUpdate:
		return constants.REMINDER_KEY_PREFIX + ev.Uuid, ""
	case ActionDelete:
		return "", "*" + ev.Uuid
	}
	return "", ""
}
