package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/heromap/backend/internal/model"
	"github.com/heromap/backend/pkg/apperror"
)

type CollectionRepository interface {
	Add(ctx context.Context, collection *model.Collection) error
	Remove(ctx context.Context, pointID uuid.UUID, userID string) error
	Exists(ctx context.Context, pointID uuid.UUID, userID string) (bool, error)
	ListByUser(ctx context.Context, userID string, offset, limit int) ([]model.Collection, int64, error)
}

type collectionRepository struct {
	db *gorm.DB
}

func NewCollectionRepository(db *gorm.DB) CollectionRepository {
	return &collectionRepository{db: db}
}

func (r *collectionRepository) Add(ctx context.Context, collection *model.Collection) error {
	err := r.db.WithContext(ctx).Create(collection).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.Conflict("already collected")
	}
	return err
}

func (r *collectionRepository) Remove(ctx context.Context, pointID uuid.UUID, userID string) error {
	return r.db.WithContext(ctx).
		Where("point_id = ? AND user_id = ?", pointID, userID).
		Delete(&model.Collection{}).Error
}

func (r *collectionRepository) Exists(ctx context.Context, pointID uuid.UUID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Collection{}).
		Where("point_id = ? AND user_id = ?", pointID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *collectionRepository) ListByUser(ctx context.Context, userID string, offset, limit int) ([]model.Collection, int64, error) {
	var collections []model.Collection
	var total int64

	query := r.db.WithContext(ctx).
		Model(&model.Collection{}).
		Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&collections).Error; err != nil {
		return nil, 0, err
	}
	return collections, total, nil
}
