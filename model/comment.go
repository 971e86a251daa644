package model

import "time"

type Comment struct {
	Id        int       `json:"id" gorm:"primaryKey"`
	Content   string    `json:"content" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt"`

	PostId int   `json:"postId" gorm:"index"`
	UserId int   `json:"userId" gorm:"index"`
	User   *User `json:"user,omitempty" gorm:"foreignKey:UserId"`
}

func (Comment) TableName() string { return "comments" }
