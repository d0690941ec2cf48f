// Package gender_enum 定义会员性别
// 仅用于称谓词形变化，不参与业务规则
package gender_enum

const (
	MALE   = "M"
	FEMALE = "F"
	OTHER  = "X"
)
