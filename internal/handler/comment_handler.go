package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/heromap/backend/internal/dto"
	"github.com/heromap/backend/internal/model"
	"github.com/heromap/backend/internal/service"
	"github.com/heromap/backend/pkg/apperror"
	"github.com/heromap/backend/pkg/response"
)

type CommentHandler struct {
	commentService service.CommentService
	likeService    service.LikeService
}

func NewCommentHandler(commentService service.CommentService, likeService service.LikeService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		likeService:    likeService,
	}
}

func (h *CommentHandler) Handle(c *gin.Context) {
	var req dto.RPCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperror.Validation("malformed request envelope"))
		return
	}

	callerID, err := response.GetCallerID(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	ctx := c.Request.Context()

	switch req.Action {
	case "create":
		var data dto.CreateCommentRequest
		if err := bindData(req.Data, &data); err != nil {
			response.Fail(c, err)
			return
		}
		created, err := h.commentService.Create(ctx, callerID, data)
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "comment created", created)

	case "get":
		var data dto.GetCommentsRequest
		if err := bindData(req.Data, &data); err != nil {
			response.Fail(c, err)
			return
		}
		page, err := h.commentService.Get(ctx, data)
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "", page)

	case "update":
		var data dto.UpdateCommentRequest
		if err := bindData(req.Data, &data); err != nil {
			response.Fail(c, err)
			return
		}
		if err := h.commentService.Update(ctx, callerID, data); err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "comment updated", nil)

	case "delete":
		var data dto.DeleteCommentRequest
		if err := bindData(req.Data, &data); err != nil {
			response.Fail(c, err)
			return
		}
		if err := h.commentService.Delete(ctx, callerID, data); err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "comment deleted", nil)

	case "like":
		var data dto.LikeRequest
		if err := bindData(req.Data, &data); err != nil {
			response.Fail(c, err)
			return
		}
		if err := h.likeService.SetLike(ctx, callerID, model.SubjectComment, data.ID, data.Desired()); err != nil {
			response.Fail(c, err)
			return
		}
		if data.Desired() {
			response.OK(c, "comment liked", nil)
		} else {
			response.OK(c, "comment unliked", nil)
		}

	default:
		response.Fail(c, unknownAction(req.Action))
	}
}
