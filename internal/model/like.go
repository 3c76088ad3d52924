package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	SubjectPoint   = "point"
	SubjectComment = "comment"
)

// LikeRecord is the source of truth for "has this user liked this subject".
// The likes column on the subject is a derived cache kept in step inside the
// same transaction.
type LikeRecord struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SubjectType string    `gorm:"size:16;not null;uniqueIndex:uk_subject_user,priority:1" json:"subject_type"`
	SubjectID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_subject_user,priority:2" json:"subject_id"`
	UserID      string    `gorm:"size:64;not null;uniqueIndex:uk_subject_user,priority:3" json:"user_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}
