// Package request 定义 Handler 层入参结构
// 字段校验使用 validator tag，由统一的参数绑定入口触发
package request

// LoginRequest 管理员登录
type LoginRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6,max=64"`
}

// RefreshTokenRequest 刷新 Access Token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
