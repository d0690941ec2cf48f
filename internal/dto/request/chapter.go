package request

// CreateChapterRequest 创建分会
type CreateChapterRequest struct {
	Name               string `json:"name" binding:"required,max=100"`
	City               string `json:"city" binding:"omitempty,max=100"`
	Country            string `json:"country" binding:"omitempty,max=100"`
	Address            string `json:"address" binding:"omitempty,max=255"`
	Email              string `json:"email" binding:"omitempty,email"`
	Phone              string `json:"phone" binding:"omitempty,max=20"`
	Instagram          string `json:"instagram" binding:"omitempty,max=100"`
	Facebook           string `json:"facebook" binding:"omitempty,max=100"`
	ChiefOfficerUuid   string `json:"chief_officer_uuid"`
	LiaisonOfficerUuid string `json:"liaison_officer_uuid"`
	IsOfficial         bool   `json:"is_official"`
	OfficialSince      string `json:"official_since"`
}

// UpdateChapterRequest 更新分会信息
type UpdateChapterRequest struct {
	Uuid               string `json:"uuid" binding:"required"`
	Name               string `json:"name" binding:"required,max=100"`
	City               string `json:"city" binding:"omitempty,max=100"`
	Country            string `json:"country" binding:"omitempty,max=100"`
	Address            string `json:"address" binding:"omitempty,max=255"`
	Email              string `json:"email" binding:"omitempty,email"`
	Phone              string `json:"phone" binding:"omitempty,max=20"`
	Instagram          string `json:"instagram" binding:"omitempty,max=100"`
	Facebook           string `json:"facebook" binding:"omitempty,max=100"`
	ChiefOfficerUuid   string `json:"chief_officer_uuid"`
	LiaisonOfficerUuid string `json:"liaison_officer_uuid"`
	IsOfficial         bool   `json:"is_official"`
	OfficialSince      string `json:"official_since"`
}

// DeleteChapterRequest 删除分会
// ConfirmName 必须与分会名称完全一致，防止误删
type DeleteChapterRequest struct {
	Uuid        string `json:"uuid" binding:"required"`
	ConfirmName string `json:"confirm_name" binding:"required"`
}
