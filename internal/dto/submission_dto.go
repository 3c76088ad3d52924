package dto

import "github.com/heromap/backend/internal/model"

type CreateSubmissionRequest struct {
	Title       string            `json:"title" validate:"required,max=255"`
	Description string            `json:"description" validate:"required"`
	MapID       string            `json:"mapId" validate:"required"`
	HeroID      string            `json:"heroId"`
	Images      []string          `json:"images" validate:"required,min=1"`
	Coordinates model.Coordinates `json:"coordinates"`
	Difficulty  int               `json:"difficulty" validate:"omitempty,min=0,max=5"`
	Tags        []string          `json:"tags"`
}

type ListSubmissionsRequest struct {
	Status string `json:"status" validate:"omitempty,oneof=pending approved rejected"`
	// UserID is honored for admins only; everyone else sees their own.
	UserID string `json:"userId"`
	Pagination
}

type UpdateSubmissionRequest struct {
	ID          string             `json:"id" validate:"required"`
	Title       string             `json:"title" validate:"omitempty,max=255"`
	Description string             `json:"description"`
	Images      []string           `json:"images"`
	Coordinates *model.Coordinates `json:"coordinates"`
	Difficulty  *int               `json:"difficulty" validate:"omitempty,min=0,max=5"`
	Tags        []string           `json:"tags"`
}

type DeleteSubmissionRequest struct {
	ID string `json:"id" validate:"required"`
}

type ReviewSubmissionRequest struct {
	ID     string `json:"id" validate:"required"`
	Status string `json:"status" validate:"required,oneof=approved rejected"`
	Reason string `json:"reason" validate:"omitempty,max=512"`
}
