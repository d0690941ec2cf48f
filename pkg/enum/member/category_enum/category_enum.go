// Package category_enum 定义会员类别（会籍等级）
package category_enum

const (
	ACTIVO    = "ACTIVO"    // 正式会员
	JUVENIL   = "JUVENIL"   // 青年会员
	VITALICIO = "VITALICIO" // 终身会员
	HONORARIO = "HONORARIO" // 荣誉会员
)
