package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/heromap/backend/internal/dto"
	"github.com/heromap/backend/internal/service"
	"github.com/heromap/backend/pkg/apperror"
	"github.com/heromap/backend/pkg/response"
)

type CollectionHandler struct {
	collectionService service.CollectionService
}

func NewCollectionHandler(collectionService service.CollectionService) *CollectionHandler {
	return &CollectionHandler{collectionService: collectionService}
}

func (h *CollectionHandler) Handle(c *gin.Context) {
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
	case "add":
		var data dto.AddCollectionRequest
		if err := bindData(req.Data, &data); err != nil {
			response.Fail(c, err)
			return
		}
		if err := h.collectionService.Add(ctx, callerID, data); err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "point collected", nil)

	case "remove":
		var data dto.RemoveCollectionRequest
		if err := bindData(req.Data, &data); err != nil {
			response.Fail(c, err)
			return
		}
		if err := h.collectionService.Remove(ctx, callerID, data); err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "collection removed", nil)

	case "check":
		var data dto.CheckCollectionRequest
		if err := bindData(req.Data, &data); err != nil {
			response.Fail(c, err)
			return
		}
		result, err := h.collectionService.Check(ctx, callerID, data)
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "", result)

	case "getList":
		var data dto.ListCollectionsRequest
		if err := bindData(req.Data, &data); err != nil {
			response.Fail(c, err)
			return
		}
		page, err := h.collectionService.List(ctx, callerID, data)
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "", page)

	default:
		response.Fail(c, unknownAction(req.Action))
	}
}
