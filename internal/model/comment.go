package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Comment struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	PointID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"point_id"`
	ParentID *uuid.UUID `gorm:"type:uuid;index" json:"parent_id,omitempty"`
	UserID   string     `gorm:"size:64;not null;index" json:"user_id"`
	Content  string     `gorm:"type:text;not null" json:"content"`
	// Floor is assigned from the point's floor sequence for top-level
	// comments; replies keep 0.
	Floor     int       `gorm:"default:0" json:"floor"`
	Likes     int       `gorm:"default:0" json:"likes"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID, err = uuid.NewV7()
	}
	return
}

func (c *Comment) IsTopLevel() bool {
	return c.ParentID == nil
}
