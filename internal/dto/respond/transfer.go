package respond

// TransferRespond 调动申请
// 会员与分会名称为申请时的快照，后续改名不回填
type TransferRespond struct {
	Uuid            string `json:"uuid"`
	MemberUuid      string `json:"member_uuid"`
	MemberName      string `json:"member_name"`
	FromChapterUuid string `json:"from_chapter_uuid"`
	FromChapterName string `json:"from_chapter_name"`
	ToChapterUuid   string `json:"to_chapter_uuid"`
	ToChapterName   string `json:"to_chapter_name"`
	RequestDate     string `json:"request_date"`
	Status          string `json:"status"`
	Comment         string `json:"comment"`
}

// GetTransferListRespond 分会视角的调动申请列表
// Incoming 为待本分会处理的转入申请，Outgoing 为本分会发起的转出申请
type GetTransferListRespond struct {
	Incoming []TransferRespond `json:"incoming"`
	Outgoing []TransferRespond `json:"outgoing"`
}
