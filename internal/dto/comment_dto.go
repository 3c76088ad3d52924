package dto

import "github.com/heromap/backend/internal/model"

type CreateCommentRequest struct {
	PointID string `json:"pointId" validate:"required"`
	Content string `json:"content" validate:"required,max=2000"`
	// ParentID empty means a top-level comment; set, it must name a top-level
	// comment on the same point.
	ParentID string `json:"parentId"`
}

func (r *CreateCommentRequest) IsTopLevel() bool {
	return r.ParentID == ""
}

type GetCommentsRequest struct {
	PointID string `json:"pointId" validate:"required"`
	Pagination
}

type UpdateCommentRequest struct {
	ID      string `json:"id" validate:"required"`
	Content string `json:"content" validate:"required,max=2000"`
}

type DeleteCommentRequest struct {
	ID string `json:"id" validate:"required"`
}

type CommentThread struct {
	model.Comment
	Replies []model.Comment `json:"replies"`
}

type CreateCommentResponse struct {
	CommentID string `json:"commentId"`
	Floor     int    `json:"floor"`
}
