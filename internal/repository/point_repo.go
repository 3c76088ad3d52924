package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/heromap/backend/internal/model"
	"github.com/heromap/backend/pkg/apperror"
)

type PointFilter struct {
	MapID  string
	HeroID string
	UserID string
}

type PointRepository interface {
	Create(ctx context.Context, point *model.Point) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Point, error)
	List(ctx context.Context, filter PointFilter, offset, limit int) ([]model.Point, int64, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	IncrementViews(ctx context.Context, id uuid.UUID, delta int) error
	// DeleteCascade removes the point together with its comments, comment like
	// records, point like records and collections in one transaction.
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}

type pointRepository struct {
	db *gorm.DB
}

func NewPointRepository(db *gorm.DB) PointRepository {
	return &pointRepository{db: db}
}

func (r *pointRepository) Create(ctx context.Context, point *model.Point) error {
	return r.db.WithContext(ctx).Create(point).Error
}

func (r *pointRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Point, error) {
	var point model.Point
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&point).Error; err != nil {
		return nil, err
	}
	return &point, nil
}

func (r *pointRepository) List(ctx context.Context, filter PointFilter, offset, limit int) ([]model.Point, int64, error) {
	var points []model.Point
	var total int64

	query := r.db.WithContext(ctx).Model(&model.Point{})
	if filter.MapID != "" {
		query = query.Where("map_id = ?", filter.MapID)
	}
	if filter.HeroID != "" {
		query = query.Where("hero_id = ?", filter.HeroID)
	}
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&points).Error; err != nil {
		return nil, 0, err
	}
	return points, total, nil
}

func (r *pointRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&model.Point{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *pointRepository) IncrementViews(ctx context.Context, id uuid.UUID, delta int) error {
	return r.db.WithContext(ctx).
		Model(&model.Point{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", delta)).Error
}

func (r *pointRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The point row goes first: rival transactions keyed on it (like
		// bumps, floor assignment) serialize against this lock, and the child
		// sweeps below run on fresh snapshots that see whatever those
		// transactions committed while we waited.
		res := tx.Where("id = ?", id).Delete(&model.Point{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperror.NotFound("point not found")
		}

		var commentIDs []uuid.UUID
		if err := tx.Model(&model.Comment{}).
			Where("point_id = ?", id).
			Pluck("id", &commentIDs).Error; err != nil {
			return err
		}

		if len(commentIDs) > 0 {
			if err := tx.Where("subject_type = ? AND subject_id IN ?", model.SubjectComment, commentIDs).
				Delete(&model.LikeRecord{}).Error; err != nil {
				return err
			}
			if err := tx.Where("point_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("subject_type = ? AND subject_id = ?", model.SubjectPoint, id).
			Delete(&model.LikeRecord{}).Error; err != nil {
			return err
		}

		return tx.Where("point_id = ?", id).Delete(&model.Collection{}).Error
	})
}
