package model

type Tag struct {
	Id   int    `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:100;uniqueIndex"`
}

func (Tag) TableName() string { return "tags" }
