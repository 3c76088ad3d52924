package model

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User's primary key is the opaque caller id issued by the gateway, not a
// generated uuid.
type User struct {
	ID        string    `gorm:"size:64;primaryKey" json:"id"`
	Nickname  string    `gorm:"size:64" json:"nickname"`
	Avatar    string    `gorm:"size:255" json:"avatar"`
	Role      string    `gorm:"size:16;not null;default:user" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	LastLogin time.Time `json:"last_login"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
