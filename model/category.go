package model

type Category struct {
	Id   int    `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:100;uniqueIndex"`
}

func (Category) TableName() string { return "categories" }
