package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/heromap/backend/internal/dto"
	"github.com/heromap/backend/internal/model"
	"github.com/heromap/backend/internal/repository"
	"github.com/heromap/backend/pkg/apperror"
)

type CollectionService interface {
	Add(ctx context.Context, callerID string, req dto.AddCollectionRequest) error
	Remove(ctx context.Context, callerID string, req dto.RemoveCollectionRequest) error
	Check(ctx context.Context, callerID string, req dto.CheckCollectionRequest) (*dto.CheckCollectionResponse, error)
	List(ctx context.Context, callerID string, req dto.ListCollectionsRequest) (*dto.PagedResponse, error)
}

type collectionService struct {
	collectionRepo repository.CollectionRepository
	pointRepo      repository.PointRepository
}

func NewCollectionService(collectionRepo repository.CollectionRepository, pointRepo repository.PointRepository) CollectionService {
	return &collectionService{
		collectionRepo: collectionRepo,
		pointRepo:      pointRepo,
	}
}

func (s *collectionService) Add(ctx context.Context, callerID string, req dto.AddCollectionRequest) error {
	pointID, err := parseID(req.PointID, "point")
	if err != nil {
		return err
	}

	if _, err := s.pointRepo.FindByID(ctx, pointID); err != nil {
		return notFoundOr(err, "point not found")
	}

	exists, err := s.collectionRepo.Exists(ctx, pointID, callerID)
	if err != nil {
		return err
	}
	if exists {
		return apperror.Conflict("already collected")
	}

	return s.collectionRepo.Add(ctx, &model.Collection{
		PointID: pointID,
		UserID:  callerID,
	})
}

// Remove is idempotent: removing a collection that does not exist succeeds.
// Unlike likes there is no counter that could drift.
func (s *collectionService) Remove(ctx context.Context, callerID string, req dto.RemoveCollectionRequest) error {
	pointID, err := parseID(req.PointID, "point")
	if err != nil {
		return err
	}
	return s.collectionRepo.Remove(ctx, pointID, callerID)
}

func (s *collectionService) Check(ctx context.Context, callerID string, req dto.CheckCollectionRequest) (*dto.CheckCollectionResponse, error) {
	pointID, err := parseID(req.PointID, "point")
	if err != nil {
		return nil, err
	}

	exists, err := s.collectionRepo.Exists(ctx, pointID, callerID)
	if err != nil {
		return nil, err
	}
	return &dto.CheckCollectionResponse{IsCollected: exists}, nil
}

func (s *collectionService) List(ctx context.Context, callerID string, req dto.ListCollectionsRequest) (*dto.PagedResponse, error) {
	req.Normalize()

	collections, total, err := s.collectionRepo.ListByUser(ctx, callerID, req.Offset(), req.PageSize)
	if err != nil {
		return nil, err
	}

	items := make([]dto.CollectionItem, 0, len(collections))
	for _, c := range collections {
		item := dto.CollectionItem{Collection: c}

		point, err := s.pointRepo.FindByID(ctx, c.PointID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		item.PointInfo = point
		items = append(items, item)
	}

	return dto.NewPagedResponse(items, total, req.Pagination), nil
}
