package model

import (
	"time"

	"github.com/google/uuid"
)

// Collection is a user's favorite mark on a point.
type Collection struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PointID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_point_user,priority:1" json:"point_id"`
	UserID    string    `gorm:"size:64;not null;uniqueIndex:uk_point_user,priority:2" json:"user_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
