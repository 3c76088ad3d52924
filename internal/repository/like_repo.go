package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/heromap/backend/internal/model"
	"github.com/heromap/backend/pkg/apperror"
)

type LikeRepository interface {
	// SetLike inserts or removes the membership record and moves the cached
	// counter in the same transaction.
	SetLike(ctx context.Context, subjectType string, subjectID uuid.UUID, userID string, desired bool) error
	HasLiked(ctx context.Context, subjectType string, subjectID uuid.UUID, userID string) (bool, error)
	CountBySubject(ctx context.Context, subjectType string, subjectID uuid.UUID) (int64, error)
	// Recount rebuilds the cached counter from the membership records and
	// returns the authoritative value.
	Recount(ctx context.Context, subjectType string, subjectID uuid.UUID) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func subjectModel(subjectType string) (interface{}, error) {
	switch subjectType {
	case model.SubjectPoint:
		return &model.Point{}, nil
	case model.SubjectComment:
		return &model.Comment{}, nil
	default:
		return nil, apperror.Validation("unknown subject type")
	}
}

func (r *likeRepository) SetLike(ctx context.Context, subjectType string, subjectID uuid.UUID, userID string, desired bool) error {
	subject, err := subjectModel(subjectType)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if desired {
			var count int64
			if err := tx.Model(&model.LikeRecord{}).
				Where("subject_type = ? AND subject_id = ? AND user_id = ?", subjectType, subjectID, userID).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return apperror.Conflict("already liked")
			}

			record := model.LikeRecord{
				SubjectType: subjectType,
				SubjectID:   subjectID,
				UserID:      userID,
			}
			if err := tx.Create(&record).Error; err != nil {
				// Concurrent liker lost the race to the unique index.
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return apperror.Conflict("already liked")
				}
				return err
			}

			return bumpLikes(tx, subject, subjectID, +1)
		}

		res := tx.Where("subject_type = ? AND subject_id = ? AND user_id = ?", subjectType, subjectID, userID).
			Delete(&model.LikeRecord{})
		if res.Error != nil {
			return res.Error
		}
		// Decrement only when a record actually existed, otherwise the cached
		// counter would drift below the true count.
		if res.RowsAffected == 0 {
			return apperror.Conflict("not liked yet")
		}

		return bumpLikes(tx, subject, subjectID, -1)
	})
}

func bumpLikes(tx *gorm.DB, subject interface{}, subjectID uuid.UUID, delta int) error {
	res := tx.Model(subject).
		Where("id = ?", subjectID).
		UpdateColumn("likes", gorm.Expr("likes + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	// Zero rows means the subject was deleted after the service-level
	// existence check. Rolling back keeps the record insert from outliving
	// its subject.
	if res.RowsAffected == 0 {
		return apperror.NotFound("subject no longer exists")
	}
	return nil
}

func (r *likeRepository) HasLiked(ctx context.Context, subjectType string, subjectID uuid.UUID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.LikeRecord{}).
		Where("subject_type = ? AND subject_id = ? AND user_id = ?", subjectType, subjectID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *likeRepository) CountBySubject(ctx context.Context, subjectType string, subjectID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.LikeRecord{}).
		Where("subject_type = ? AND subject_id = ?", subjectType, subjectID).
		Count(&count).Error
	return count, err
}

func (r *likeRepository) Recount(ctx context.Context, subjectType string, subjectID uuid.UUID) (int64, error) {
	subject, err := subjectModel(subjectType)
	if err != nil {
		return 0, err
	}

	var count int64
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.LikeRecord{}).
			Where("subject_type = ? AND subject_id = ?", subjectType, subjectID).
			Count(&count).Error; err != nil {
			return err
		}
		return tx.Model(subject).
			Where("id = ?", subjectID).
			UpdateColumn("likes", count).Error
	})
	return count, err
}
