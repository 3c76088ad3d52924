package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Coordinates struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Point struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string      `gorm:"size:64;not null;index" json:"user_id"`
	MapID       string      `gorm:"size:64;not null;index" json:"map_id"`
	HeroID      string      `gorm:"size:64;index" json:"hero_id,omitempty"`
	Title       string      `gorm:"size:255;not null" json:"title"`
	Description string      `gorm:"type:text;not null" json:"description"`
	Images      []string    `gorm:"serializer:json" json:"images"`
	Coordinates Coordinates `gorm:"serializer:json" json:"coordinates"`
	Difficulty  int         `gorm:"default:0" json:"difficulty"`
	Tags        []string    `gorm:"serializer:json" json:"tags"`
	Likes       int         `gorm:"default:0" json:"likes"`
	Views       int         `gorm:"default:0" json:"views"`
	// FloorSeq is the per-point floor sequence for top-level comments. It only
	// ever grows, so floors of deleted comments are never reused.
	FloorSeq  int       `gorm:"default:0" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *Point) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID, err = uuid.NewV7()
	}
	return
}
