package model

import "time"

const (
	ReportReasonSpam         = "SPAM"
	ReportReasonAbuse        = "ABUSE"
	ReportReasonPersonalInfo = "PERSONAL_INFO"
	ReportReasonOther        = "OTHER"
)

const (
	ReportStatusOpen     = "OPEN"
	ReportStatusResolved = "RESOLVED"
)

type CommentReport struct {
	Id        int       `json:"id" gorm:"primaryKey"`
	Reason    string    `json:"reason" gorm:"size:20"`
	Details   string    `json:"details,omitempty" gorm:"type:text"`
	Status    string    `json:"status" gorm:"size:16;default:OPEN;index"`
	CreatedAt time.Time `json:"createdAt"`

	CommentId  int      `json:"commentId" gorm:"index"`
	Comment    *Comment `json:"comment,omitempty" gorm:"foreignKey:CommentId"`
	ReporterId int      `json:"reporterId" gorm:"index"`
	Reporter   *User    `json:"reporter,omitempty" gorm:"foreignKey:ReporterId"`
}

func (CommentReport) TableName() string { return "comment_reports" }
