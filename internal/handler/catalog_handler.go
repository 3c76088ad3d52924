package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/heromap/backend/internal/dto"
	"github.com/heromap/backend/internal/service"
	"github.com/heromap/backend/pkg/apperror"
	"github.com/heromap/backend/pkg/response"
)

// CatalogHandler serves both the map and hero entities; the two action sets
// are identical in shape.
type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) HandleMap(c *gin.Context) {
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
		var data dto.CreateMapRequest
		if err := bindData(req.Data, &data); err != nil {
			response.Fail(c, err)
			return
		}
		m, err := h.catalogService.CreateMap(ctx, callerID, data)
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "map created", gin.H{"mapId": m.ID})

	case "get":
		var data dto.GetByIDRequest
		if err := bindData(req.Data, &data); err != nil {
			response.Fail(c, err)
			return
		}
		m, err := h.catalogService.GetMap(ctx, data)
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "", m)

	case "getList":
		var data dto.ListCatalogRequest
		if err := bindData(req.Data, &data); err != nil {
			response.Fail(c, err)
			return
		}
		page, err := h.catalogService.ListMaps(ctx, data)
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "", page)

	case "update":
		var data dto.UpdateMapRequest
		if err := bindData(req.Data, &data); err != nil {
			response.Fail(c, err)
			return
		}
		if err := h.catalogService.UpdateMap(ctx, callerID, data); err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "map updated", nil)

	case "delete":
		var data dto.GetByIDRequest
		if err := bindData(req.Data, &data); err != nil {
			response.Fail(c, err)
			return
		}
		if err := h.catalogService.DeleteMap(ctx, callerID, data); err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "map deleted", nil)

	default:
		response.Fail(c, unknownAction(req.Action))
	}
}

func (h *CatalogHandler) HandleHero(c *gin.Context) {
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
		var data dto.CreateHeroRequest
		if err := bindData(req.Data, &data); err != nil {
			response.Fail(c, err)
			return
		}
		hero, err := h.catalogService.CreateHero(ctx, callerID, data)
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "hero created", gin.H{"heroId": hero.ID})

	case "get":
		var data dto.GetByIDRequest
		if err := bindData(req.Data, &data); err != nil {
			response.Fail(c, err)
			return
		}
		hero, err := h.catalogService.GetHero(ctx, data)
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "", hero)

	case "getList":
		var data dto.ListCatalogRequest
		if err := bindData(req.Data, &data); err != nil {
			response.Fail(c, err)
			return
		}
		page, err := h.catalogService.ListHeroes(ctx, data)
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "", page)

	case "update":
		var data dto.UpdateHeroRequest
		if err := bindData(req.Data, &data); err != nil {
			response.Fail(c, err)
			return
		}
		if err := h.catalogService.UpdateHero(ctx, callerID, data); err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "hero updated", nil)

	case "delete":
		var data dto.GetByIDRequest
		if err := bindData(req.Data, &data); err != nil {
			response.Fail(c, err)
			return
		}
		if err := h.catalogService.DeleteHero(ctx, callerID, data); err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, "hero deleted", nil)

	default:
		response.Fail(c, unknownAction(req.Action))
	}
}
