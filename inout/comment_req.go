package inout

type CreateCommentReq struct {
	Content string `json:"content" binding:"required,min=1,max=1000"`
}

type CreateReportReq struct {
	CommentId int    `json:"commentId" binding:"required,min=1"`
	Reason    string `json:"reason" binding:"required,oneof=SPAM ABUSE PERSONAL_INFO OTHER"`
	Details   string `json:"details" binding:"omitempty,max=1000"`
}

type ReportListQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=OPEN RESOLVED"`
}
