package constants

const (
	CHANNEL_SIZE               = 100              // websocket 推送通道大小
	FILE_MAX_SIZE              = 5 << 20          // 上传图片最大大小（5MB）
	REMINDER_TTL_HOURS         = 24               // 同一会员欠费提醒间隔（小时）
	REMINDER_KEY_PREFIX        = "dues_reminder_" // 欠费提醒节流标记的 Redis 键前缀
	REFRESH_TOKEN_EXPIRY_HOURS = 168              // Refresh Token 有效期（小时），168小时 = 7天
	CENTRAL_CHAPTER_NAME       = "Casa Central"   // 默认总部分会名称（会员未分配分会时归属于此）
)
