package service

import (
	"context"

	"github.com/heromap/backend/internal/dto"
	"github.com/heromap/backend/internal/model"
	"github.com/heromap/backend/internal/repository"
)

// CatalogService covers the admin-curated reference data: game maps and
// heroes. Reads are open to everyone, writes require the admin role.
type CatalogService interface {
	CreateMap(ctx context.Context, callerID string, req dto.CreateMapRequest) (*model.GameMap, error)
	GetMap(ctx context.Context, req dto.GetByIDRequest) (*model.GameMap, error)
	ListMaps(ctx context.Context, req dto.ListCatalogRequest) (*dto.PagedResponse, error)
	UpdateMap(ctx context.Context, callerID string, req dto.UpdateMapRequest) error
	DeleteMap(ctx context.Context, callerID string, req dto.GetByIDRequest) error

	CreateHero(ctx context.Context, callerID string, req dto.CreateHeroRequest) (*model.Hero, error)
	GetHero(ctx context.Context, req dto.GetByIDRequest) (*model.Hero, error)
	ListHeroes(ctx context.Context, req dto.ListCatalogRequest) (*dto.PagedResponse, error)
	UpdateHero(ctx context.Context, callerID string, req dto.UpdateHeroRequest) error
	DeleteHero(ctx context.Context, callerID string, req dto.GetByIDRequest) error
}

type catalogService struct {
	mapRepo  repository.MapRepository
	heroRepo repository.HeroRepository
	auth     Authorizer
}

func NewCatalogService(mapRepo repository.MapRepository, heroRepo repository.HeroRepository, auth Authorizer) CatalogService {
	return &catalogService{
		mapRepo:  mapRepo,
		heroRepo: heroRepo,
		auth:     auth,
	}
}

func (s *catalogService) CreateMap(ctx context.Context, callerID string, req dto.CreateMapRequest) (*model.GameMap, error) {
	if err := s.auth.RequireAdmin(ctx, callerID); err != nil {
		return nil, err
	}

	m := &model.GameMap{
		Name:        req.Name,
		Cover:       req.Cover,
		Description: req.Description,
		SortOrder:   req.SortOrder,
	}
	if err := s.mapRepo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *catalogService) GetMap(ctx context.Context, req dto.GetByIDRequest) (*model.GameMap, error) {
	id, err := parseID(req.ID, "map")
	if err != nil {
		return nil, err
	}

	m, err := s.mapRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "map not found")
	}
	return m, nil
}

func (s *catalogService) ListMaps(ctx context.Context, req dto.ListCatalogRequest) (*dto.PagedResponse, error) {
	req.Normalize()

	maps, total, err := s.mapRepo.List(ctx, req.Offset(), req.PageSize)
	if err != nil {
		return nil, err
	}
	return dto.NewPagedResponse(maps, total, req.Pagination), nil
}

func (s *catalogService) UpdateMap(ctx context.Context, callerID string, req dto.UpdateMapRequest) error {
	if err := s.auth.RequireAdmin(ctx, callerID); err != nil {
		return err
	}

	id, err := parseID(req.ID, "map")
	if err != nil {
		return err
	}

	if _, err := s.mapRepo.FindByID(ctx, id); err != nil {
		return notFoundOr(err, "map not found")
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Cover != "" {
		updates["cover"] = req.Cover
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}
	if len(updates) == 0 {
		return nil
	}

	return s.mapRepo.Update(ctx, id, updates)
}

func (s *catalogService) DeleteMap(ctx context.Context, callerID string, req dto.GetByIDRequest) error {
	if err := s.auth.RequireAdmin(ctx, callerID); err != nil {
		return err
	}

	id, err := parseID(req.ID, "map")
	if err != nil {
		return err
	}
	return s.mapRepo.Delete(ctx, id)
}

func (s *catalogService) CreateHero(ctx context.Context, callerID string, req dto.CreateHeroRequest) (*model.Hero, error) {
	if err := s.auth.RequireAdmin(ctx, callerID); err != nil {
		return nil, err
	}

	h := &model.Hero{
		Name:      req.Name,
		Avatar:    req.Avatar,
		Class:     req.Class,
		SortOrder: req.SortOrder,
	}
	if err := s.heroRepo.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *catalogService) GetHero(ctx context.Context, req dto.GetByIDRequest) (*model.Hero, error) {
	id, err := parseID(req.ID, "hero")
	if err != nil {
		return nil, err
	}

	h, err := s.heroRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "hero not found")
	}
	return h, nil
}

func (s *catalogService) ListHeroes(ctx context.Context, req dto.ListCatalogRequest) (*dto.PagedResponse, error) {
	req.Normalize()

	heroes, total, err := s.heroRepo.List(ctx, req.Offset(), req.PageSize)
	if err != nil {
		return nil, err
	}
	return dto.NewPagedResponse(heroes, total, req.Pagination), nil
}

func (s *catalogService) UpdateHero(ctx context.Context, callerID string, req dto.UpdateHeroRequest) error {
	if err := s.auth.RequireAdmin(ctx, callerID); err != nil {
		return err
	}

	id, err := parseID(req.ID, "hero")
	if err != nil {
		return err
	}

	if _, err := s.heroRepo.FindByID(ctx, id); err != nil {
		return notFoundOr(err, "hero not found")
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Avatar != "" {
		updates["avatar"] = req.Avatar
	}
	if req.Class != "" {
		updates["class"] = req.Class
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}
	if len(updates) == 0 {
		return nil
	}

	return s.heroRepo.Update(ctx, id, updates)
}

func (s *catalogService) DeleteHero(ctx context.Context, callerID string, req dto.GetByIDRequest) error {
	if err := s.auth.RequireAdmin(ctx, callerID); err != nil {
		return err
	}

	id, err := parseID(req.ID, "hero")
	if err != nil {
		return err
	}
	return s.heroRepo.Delete(ctx, id)
}
