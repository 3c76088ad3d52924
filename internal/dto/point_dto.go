package dto

import "github.com/heromap/backend/internal/model"

type CreatePointRequest struct {
	Title       string            `json:"title" validate:"required,max=255"`
	Description string            `json:"description" validate:"required"`
	MapID       string            `json:"mapId" validate:"required"`
	HeroID      string            `json:"heroId"`
	Images      []string          `json:"images" validate:"required,min=1"`
	Coordinates model.Coordinates `json:"coordinates"`
	Difficulty  int               `json:"difficulty" validate:"omitempty,min=0,max=5"`
	Tags        []string          `json:"tags"`
}

type GetPointRequest struct {
	ID string `json:"id" validate:"required"`
}

type ListPointsRequest struct {
	MapID  string `json:"mapId"`
	HeroID string `json:"heroId"`
	UserID string `json:"userId"`
	Pagination
}

type UpdatePointRequest struct {
	ID          string             `json:"id" validate:"required"`
	Title       string             `json:"title" validate:"omitempty,max=255"`
	Description string             `json:"description"`
	Images      []string           `json:"images"`
	Coordinates *model.Coordinates `json:"coordinates"`
	Difficulty  *int               `json:"difficulty" validate:"omitempty,min=0,max=5"`
	Tags        []string           `json:"tags"`
}

type DeletePointRequest struct {
	ID string `json:"id" validate:"required"`
}

type LikeRequest struct {
	ID string `json:"id" validate:"required"`
	// Like defaults to true when omitted, mirroring the client contract.
	Like *bool `json:"like"`
}

func (r *LikeRequest) Desired() bool {
	return r.Like == nil || *r.Like
}

type RecountLikesRequest struct {
	SubjectType string `json:"subjectType" validate:"required,oneof=point comment"`
	ID          string `json:"id" validate:"required"`
}
