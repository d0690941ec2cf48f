// Package role_enum 定义会员在分会中担任的职务
package role_enum

const (
	NONE     int8 = 0 // 无职务（未分配）
	ORDINARY int8 = 1 // 普通会员
	CHIEF    int8 = 2 // 会长（每个分会至多一人，且跨分会唯一）
	LIAISON  int8 = 3 // 联络官（每个分会至多一人）
)
