package model

import "time"

// Listing moderation states. New posts always start PENDING; only an admin
// moves them to APPROVED or REJECTED, and an approved post can later be
// marked RESOLVED by its owner once the animal is home.
const (
	PostStatusPending  = "PENDING"
	PostStatusApproved = "APPROVED"
	PostStatusRejected = "REJECTED"
	PostStatusResolved = "RESOLVED"
)

type Post struct {
	Id                int       `json:"id" gorm:"primaryKey"`
	Title             string    `json:"title" gorm:"size:200"`
	Description       string    `json:"description" gorm:"type:text"`
	Status            string    `json:"status" gorm:"size:16;default:PENDING;index"`
	RejectionReason   string    `json:"rejectionReason,omitempty" gorm:"type:text"`
	ImageUrl          string    `json:"imageUrl" gorm:"size:500"`
	ProvinceCode      string    `json:"provinceCode" gorm:"size:8;index"`
	ProvinceName      string    `json:"provinceName" gorm:"size:100"`
	DistrictCode      string    `json:"districtCode" gorm:"size:8;index"`
	DistrictName      string    `json:"districtName" gorm:"size:100"`
	NeighbourhoodName string    `json:"neighbourhoodName" gorm:"size:150"`
	CreatedAt         time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt         time.Time `json:"updatedAt"`

	OwnerId    int       `json:"ownerId" gorm:"index"`
	Owner      *User     `json:"owner,omitempty" gorm:"foreignKey:OwnerId"`
	CategoryId *int      `json:"categoryId" gorm:"index"`
	Category   *Category `json:"category,omitempty" gorm:"foreignKey:CategoryId"`
	Tags       []Tag     `json:"tags" gorm:"many2many:post_tags"`
}

func (Post) TableName() string { return "posts" }
