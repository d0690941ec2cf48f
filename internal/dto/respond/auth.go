// Package respond 定义 Handler 层出参结构
package respond

// LoginRespond 登录响应
type LoginRespond struct {
	Uuid         string `json:"uuid"`
	Username     string `json:"username"`
	DisplayName  string `json:"display_name"`
	ChapterUuid  string `json:"chapter_uuid"` // 空串表示总部管理员
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RefreshTokenRespond 刷新 Token 响应
type RefreshTokenRespond struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
