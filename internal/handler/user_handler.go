package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/heromap/backend/internal/dto"
	"github.com/heromap/backend/internal/service"
	"github.com/heromap/backend/pkg/apperror"
	"github.com/heromap/backend/pkg/response"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Handle(c *gin.Context) {
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
	case "register":
		var data dto.RegisterRequest
		if err := bindData(req.Data, &data); err != nil {
			response.Fail(c, err)
			return
		}
		user, err := h.userService.Register(ctx, callerID, data)
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "registered", user)

	case "login":
		user, err := h.userService.Login(ctx, callerID)
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "", user)

	case "getInfo":
		user, err := h.userService.GetInfo(ctx, callerID)
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "", user)

	case "update":
		var data dto.UpdateUserRequest
		if err := bindData(req.Data, &data); err != nil {
			response.Fail(c, err)
			return
		}
		if err := h.userService.Update(ctx, callerID, data); err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "profile updated", nil)

	default:
		response.Fail(c, unknownAction(req.Action))
	}
}
