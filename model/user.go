package model

import "time"

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	Id           int       `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:100"`
	Email        string    `json:"email" gorm:"size:191;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;size:100"`
	Role         string    `json:"role" gorm:"size:16;default:USER"`
	IsBanned     bool      `json:"isBanned" gorm:"column:is_banned;default:false"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (User) TableName() string { return "users" }

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// ValidRole reports whether a role value is one of the two known roles.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}
