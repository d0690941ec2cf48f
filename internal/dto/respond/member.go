package respond

// MemberSummaryRespond 会员列表行
// 日期以 DD/MM/YYYY 展示；DuesStatus 为按当前日期实时计算的缴费状态
type MemberSummaryRespond struct {
	Uuid            string `json:"uuid"`
	Number          string `json:"number"`
	FullName        string `json:"full_name"`
	Category        string `json:"category"`
	ChapterUuid     string `json:"chapter_uuid"`
	ChapterName     string `json:"chapter_name"`
	Role            int8   `json:"role"`
	DuesStatus      string `json:"dues_status"`
	LastPaymentDate string `json:"last_payment_date"`
}

// GetMemberListRespond 会员列表响应（带分页汇总）
type GetMemberListRespond struct {
	Total   int                    `json:"total"`
	Members []MemberSummaryRespond `json:"members"`
}

// GetMemberInfoRespond 会员详情
type GetMemberInfoRespond struct {
	Uuid            string `json:"uuid"`
	Number          string `json:"number"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	NationalID      string `json:"national_id"`
	Category        string `json:"category"`
	Gender          string `json:"gender"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	BirthDate       string `json:"birth_date"`
	JoinDate        string `json:"join_date"`
	LastPaymentDate string `json:"last_payment_date"`
	ChapterUuid     string `json:"chapter_uuid"`
	ChapterName     string `json:"chapter_name"`
	Role            int8   `json:"role"`
	DuesStatus      string `json:"dues_status"`
	PhotoURL        string `json:"photo_url"`
	CreatedAt       string `json:"created_at"`
}

// CheckMemberNumberRespond 编号可用性校验结果
// Result 为 VALID 或 TAKEN
type CheckMemberNumberRespond struct {
	Result string `json:"result"`
}

const (
	NumberValid = "VALID"
	NumberTaken = "TAKEN"
)
