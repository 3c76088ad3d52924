package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Submission is a user-proposed point. Status moves pending -> approved or
// pending -> rejected, never out of a terminal state.
type Submission struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string      `gorm:"size:64;not null;index" json:"user_id"`
	MapID       string      `gorm:"size:64;not null;index" json:"map_id"`
	HeroID      string      `gorm:"size:64" json:"hero_id,omitempty"`
	Title       string      `gorm:"size:255;not null" json:"title"`
	Description string      `gorm:"type:text;not null" json:"description"`
	Images      []string    `gorm:"serializer:json" json:"images"`
	Coordinates Coordinates `gorm:"serializer:json" json:"coordinates"`
	Difficulty  int         `gorm:"default:0" json:"difficulty"`
	Tags        []string    `gorm:"serializer:json" json:"tags"`
	Status      string      `gorm:"size:16;not null;default:pending;index" json:"status"`
	ReviewerID  string      `gorm:"size:64" json:"reviewer_id,omitempty"`
	ReviewTime  *time.Time  `json:"review_time,omitempty"`
	Reason      string      `gorm:"size:512" json:"reason,omitempty"`
	// PointID is stamped in the approval transaction with the id of the point
	// materialized from this submission. A non-nil value on an approved row is
	// what makes approval retries detectable.
	PointID   *uuid.UUID `gorm:"type:uuid" json:"point_id,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (s *Submission) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID, err = uuid.NewV7()
	}
	return
}
