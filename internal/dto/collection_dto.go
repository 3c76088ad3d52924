package dto

import "github.com/heromap/backend/internal/model"

type AddCollectionRequest struct {
	PointID string `json:"pointId" validate:"required"`
}

type RemoveCollectionRequest struct {
	PointID string `json:"pointId" validate:"required"`
}

type CheckCollectionRequest struct {
	PointID string `json:"pointId" validate:"required"`
}

type ListCollectionsRequest struct {
	Pagination
}

type CollectionItem struct {
	model.Collection
	PointInfo *model.Point `json:"pointInfo"`
}

type CheckCollectionResponse struct {
	IsCollected bool `json:"isCollected"`
}
