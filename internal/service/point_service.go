package service

import (
	"context"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/redis/go-redis/v9"

	"github.com/heromap/backend/internal/dto"
	"github.com/heromap/backend/internal/model"
	"github.com/heromap/backend/internal/repository"
)

type PointService interface {
	Create(ctx context.Context, callerID string, req dto.CreatePointRequest) (*model.Point, error)
	Get(ctx context.Context, req dto.GetPointRequest) (*model.Point, error)
	List(ctx context.Context, req dto.ListPointsRequest) (*dto.PagedResponse, error)
	Update(ctx context.Context, callerID string, req dto.UpdatePointRequest) error
	Delete(ctx context.Context, callerID string, req dto.DeletePointRequest) error
}

type pointService struct {
	pointRepo   repository.PointRepository
	auth        Authorizer
	views       *ViewCounter
	sanitizer   *bluemonday.Policy
	redisClient *redis.Client
	cooldown    time.Duration
}

func NewPointService(pointRepo repository.PointRepository, auth Authorizer, views *ViewCounter, redisClient *redis.Client, cooldown time.Duration) PointService {
	return &pointService{
		pointRepo:   pointRepo,
		auth:        auth,
		views:       views,
		sanitizer:   bluemonday.StrictPolicy(),
		redisClient: redisClient,
		cooldown:    cooldown,
	}
}

func (s *pointService) Create(ctx context.Context, callerID string, req dto.CreatePointRequest) (*model.Point, error) {
	if err := enforceRateLimit(ctx, s.redisClient, callerID, "point", s.cooldown); err != nil {
		return nil, err
	}

	point := &model.Point{
		UserID:      callerID,
		MapID:       req.MapID,
		HeroID:      req.HeroID,
		Title:       s.sanitizer.Sanitize(req.Title),
		Description: s.sanitizer.Sanitize(req.Description),
		Images:      req.Images,
		Coordinates: req.Coordinates,
		Difficulty:  req.Difficulty,
		Tags:        req.Tags,
	}

	if err := s.pointRepo.Create(ctx, point); err != nil {
		return nil, err
	}
	return point, nil
}

func (s *pointService) Get(ctx context.Context, req dto.GetPointRequest) (*model.Point, error) {
	id, err := parseID(req.ID, "point")
	if err != nil {
		return nil, err
	}

	point, err := s.pointRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "point not found")
	}

	s.views.Bump(ctx, id)
	return point, nil
}

func (s *pointService) List(ctx context.Context, req dto.ListPointsRequest) (*dto.PagedResponse, error) {
	req.Normalize()

	filter := repository.PointFilter{
		MapID:  req.MapID,
		HeroID: req.HeroID,
		UserID: req.UserID,
	}
	points, total, err := s.pointRepo.List(ctx, filter, req.Offset(), req.PageSize)
	if err != nil {
		return nil, err
	}

	return dto.NewPagedResponse(points, total, req.Pagination), nil
}

func (s *pointService) Update(ctx context.Context, callerID string, req dto.UpdatePointRequest) error {
	id, err := parseID(req.ID, "point")
	if err != nil {
		return err
	}

	point, err := s.pointRepo.FindByID(ctx, id)
	if err != nil {
		return notFoundOr(err, "point not found")
	}
	if err := s.auth.RequireOwner(callerID, point.UserID); err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if req.Title != "" {
		updates["title"] = s.sanitizer.Sanitize(req.Title)
	}
	if req.Description != "" {
		updates["description"] = s.sanitizer.Sanitize(req.Description)
	}
	if req.Images != nil {
		updates["images"] = req.Images
	}
	if req.Coordinates != nil {
		updates["coordinates"] = *req.Coordinates
	}
	if req.Difficulty != nil {
		updates["difficulty"] = *req.Difficulty
	}
	if req.Tags != nil {
		updates["tags"] = req.Tags
	}
	if len(updates) == 0 {
		return nil
	}

	return s.pointRepo.Update(ctx, id, updates)
}

func (s *pointService) Delete(ctx context.Context, callerID string, req dto.DeletePointRequest) error {
	id, err := parseID(req.ID, "point")
	if err != nil {
		return err
	}

	point, err := s.pointRepo.FindByID(ctx, id)
	if err != nil {
		return notFoundOr(err, "point not found")
	}
	if err := s.auth.RequireOwner(callerID, point.UserID); err != nil {
		return err
	}

	return s.pointRepo.DeleteCascade(ctx, id)
}
