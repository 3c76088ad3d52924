package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/heromap/backend/internal/model"
	"github.com/heromap/backend/pkg/apperror"
)

type SubmissionRepository interface {
	Create(ctx context.Context, submission *model.Submission) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Submission, error)
	List(ctx context.Context, userID, status string, offset, limit int) ([]model.Submission, int64, error)
	// UpdatePending applies content updates only while the submission is still
	// pending; a terminal status makes it fail with invalid state.
	UpdatePending(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	DeletePending(ctx context.Context, id uuid.UUID) error
	Reject(ctx context.Context, id uuid.UUID, reviewerID, reason string) error
	// Approve flips pending -> approved and materializes the point in one
	// transaction. The created point's id is stamped back onto the submission.
	Approve(ctx context.Context, id uuid.UUID, reviewerID string) (*model.Point, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(ctx context.Context, submission *model.Submission) error {
	return r.db.WithContext(ctx).Create(submission).Error
}

func (r *submissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Submission, error) {
	var submission model.Submission
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&submission).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) List(ctx context.Context, userID, status string, offset, limit int) ([]model.Submission, int64, error) {
	var submissions []model.Submission
	var total int64

	query := r.db.WithContext(ctx).Model(&model.Submission{})
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&submissions).Error; err != nil {
		return nil, 0, err
	}
	return submissions, total, nil
}

func (r *submissionRepository) UpdatePending(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	res := r.db.WithContext(ctx).
		Model(&model.Submission{}).
		Where("id = ? AND status = ?", id, model.StatusPending).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.InvalidState("only pending submissions can be modified")
	}
	return nil
}

func (r *submissionRepository) DeletePending(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, model.StatusPending).
		Delete(&model.Submission{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.InvalidState("only pending submissions can be deleted")
	}
	return nil
}

func (r *submissionRepository) Reject(ctx context.Context, id uuid.UUID, reviewerID, reason string) error {
	res := r.db.WithContext(ctx).
		Model(&model.Submission{}).
		Where("id = ? AND status = ?", id, model.StatusPending).
		Updates(map[string]interface{}{
			"status":      model.StatusRejected,
			"reviewer_id": reviewerID,
			"review_time": time.Now(),
			"reason":      reason,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.InvalidState("only pending submissions can be reviewed")
	}
	return nil
}

func (r *submissionRepository) Approve(ctx context.Context, id uuid.UUID, reviewerID string) (*model.Point, error) {
	var point *model.Point

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The conditional update doubles as the state guard: a concurrent
		// reviewer who got here first leaves zero rows to update, and no
		// second point is ever created.
		res := tx.Model(&model.Submission{}).
			Where("id = ? AND status = ?", id, model.StatusPending).
			Updates(map[string]interface{}{
				"status":      model.StatusApproved,
				"reviewer_id": reviewerID,
				"review_time": time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperror.InvalidState("only pending submissions can be reviewed")
		}

		// Read the content only after the guard has taken the row lock, so
		// an edit that landed while the submission was still pending is the
		// version that gets published.
		var submission model.Submission
		if err := tx.Where("id = ?", id).First(&submission).Error; err != nil {
			return err
		}

		point = &model.Point{
			UserID:      submission.UserID,
			MapID:       submission.MapID,
			HeroID:      submission.HeroID,
			Title:       submission.Title,
			Description: submission.Description,
			Images:      submission.Images,
			Coordinates: submission.Coordinates,
			Difficulty:  submission.Difficulty,
			Tags:        submission.Tags,
		}
		if err := tx.Create(point).Error; err != nil {
			return err
		}

		return tx.Model(&model.Submission{}).
			Where("id = ?", id).
			Update("point_id", point.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return point, nil
}
