package respond

// ChapterRespond 分会信息
type ChapterRespond struct {
	Uuid               string `json:"uuid"`
	Name               string `json:"name"`
	City               string `json:"city"`
	Country            string `json:"country"`
	Address            string `json:"address"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Instagram          string `json:"instagram"`
	Facebook           string `json:"facebook"`
	ChiefOfficerUuid   string `json:"chief_officer_uuid"`
	ChiefOfficerName   string `json:"chief_officer_name"`
	LiaisonOfficerUuid string `json:"liaison_officer_uuid"`
	LiaisonOfficerName string `json:"liaison_officer_name"`
	IsOfficial         bool   `json:"is_official"`
	OfficialSince      string `json:"official_since"`
	LogoURL            string `json:"logo_url"`
	BannerURL          string `json:"banner_url"`
	MemberCount        int    `json:"member_count"`
}
