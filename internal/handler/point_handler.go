package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/heromap/backend/internal/dto"
	"github.com/heromap/backend/internal/model"
	"github.com/heromap/backend/internal/service"
	"github.com/heromap/backend/pkg/apperror"
	"github.com/heromap/backend/pkg/response"
)

type PointHandler struct {
	pointService service.PointService
	likeService  service.LikeService
}

func NewPointHandler(pointService service.PointService, likeService service.LikeService) *PointHandler {
	return &PointHandler{
		pointService: pointService,
		likeService:  likeService,
	}
}

func (h *PointHandler) Handle(c *gin.Context) {
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
		var data dto.CreatePointRequest
		if err := bindData(req.Data, &data); err != nil {
			response.Fail(c, err)
			return
		}
		point, err := h.pointService.Create(ctx, callerID, data)
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "point created", gin.H{"pointId": point.ID})

	case "get":
		var data dto.GetPointRequest
		if err := bindData(req.Data, &data); err != nil {
			response.Fail(c, err)
			return
		}
		point, err := h.pointService.Get(ctx, data)
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "", point)

	case "getList":
		var data dto.ListPointsRequest
		if err := bindData(req.Data, &data); err != nil {
			response.Fail(c, err)
			return
		}
		page, err := h.pointService.List(ctx, data)
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "", page)

	case "update":
		var data dto.UpdatePointRequest
		if err := bindData(req.Data, &data); err != nil {
			response.Fail(c, err)
			return
		}
		if err := h.pointService.Update(ctx, callerID, data); err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "point updated", nil)

	case "delete":
		var data dto.DeletePointRequest
		if err := bindData(req.Data, &data); err != nil {
			response.Fail(c, err)
			return
		}
		if err := h.pointService.Delete(ctx, callerID, data); err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "point deleted", nil)

	case "like":
		var data dto.LikeRequest
		if err := bindData(req.Data, &data); err != nil {
			response.Fail(c, err)
			return
		}
		if err := h.likeService.SetLike(ctx, callerID, model.SubjectPoint, data.ID, data.Desired()); err != nil {
			response.Fail(c, err)
			return
		}
		if data.Desired() {
			response.OK(c, "point liked", nil)
		} else {
			response.OK(c, "point unliked", nil)
		}

	case "recount":
		var data dto.RecountLikesRequest
		if err := bindData(req.Data, &data); err != nil {
			response.Fail(c, err)
			return
		}
		likes, err := h.likeService.Recount(ctx, callerID, data.SubjectType, data.ID)
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "likes recounted", gin.H{"likes": likes})

	default:
		response.Fail(c, unknownAction(req.Action))
	}
}
