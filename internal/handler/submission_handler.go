package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/heromap/backend/internal/dto"
	"github.com/heromap/backend/internal/model"
	"github.com/heromap/backend/internal/service"
	"github.com/heromap/backend/pkg/apperror"
	"github.com/heromap/backend/pkg/response"
)

type SubmissionHandler struct {
	submissionService service.SubmissionService
}

func NewSubmissionHandler(submissionService service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

func (h *SubmissionHandler) Handle(c *gin.Context) {
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
		var data dto.CreateSubmissionRequest
		if err := bindData(req.Data, &data); err != nil {
			response.Fail(c, err)
			return
		}
		submission, err := h.submissionService.Create(ctx, callerID, data)
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "submission received, awaiting review", gin.H{"submissionId": submission.ID})

	case "getList":
		var data dto.ListSubmissionsRequest
		if err := bindData(req.Data, &data); err != nil {
			response.Fail(c, err)
			return
		}
		page, err := h.submissionService.List(ctx, callerID, data)
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "", page)

	case "update":
		var data dto.UpdateSubmissionRequest
		if err := bindData(req.Data, &data); err != nil {
			response.Fail(c, err)
			return
		}
		if err := h.submissionService.Update(ctx, callerID, data); err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "submission updated", nil)

	case "delete":
		var data dto.DeleteSubmissionRequest
		if err := bindData(req.Data, &data); err != nil {
			response.Fail(c, err)
			return
		}
		if err := h.submissionService.Delete(ctx, callerID, data); err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "submission deleted", nil)

	case "review":
		var data dto.ReviewSubmissionRequest
		if err := bindData(req.Data, &data); err != nil {
			response.Fail(c, err)
			return
		}
		point, err := h.submissionService.Review(ctx, callerID, data)
		if err != nil {
			response.Fail(c, err)
			return
		}
		if data.Status == model.StatusApproved {
			response.OK(c, "submission approved", gin.H{"pointId": point.ID})
		} else {
			response.OK(c, "submission rejected", nil)
		}

	default:
		response.Fail(c, unknownAction(req.Action))
	}
}
