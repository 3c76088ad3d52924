package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/heromap/backend/internal/model"
	"github.com/heromap/backend/pkg/apperror"
)

type CommentRepository interface {
	// CreateTopLevel assigns the next floor from the point's sequence and
	// inserts the comment in one transaction.
	CreateTopLevel(ctx context.Context, comment *model.Comment) error
	CreateReply(ctx context.Context, comment *model.Comment) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Comment, error)
	ListTopLevel(ctx context.Context, pointID uuid.UUID, offset, limit int) ([]model.Comment, int64, error)
	ListReplies(ctx context.Context, parentIDs []uuid.UUID) ([]model.Comment, error)
	UpdateContent(ctx context.Context, id uuid.UUID, content string) error
	// DeleteCascade removes the comment, its replies when it is top-level, and
	// every like record of the removed comments, atomically.
	DeleteCascade(ctx context.Context, comment *model.Comment) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) CreateTopLevel(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The UPDATE takes the point's row lock, so concurrent top-level
		// creators on the same point serialize here and each reads back its
		// own sequence value.
		res := tx.Model(&model.Point{}).
			Where("id = ?", comment.PointID).
			UpdateColumn("floor_seq", gorm.Expr("floor_seq + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperror.NotFound("point not found")
		}

		var seq int
		if err := tx.Model(&model.Point{}).
			Select("floor_seq").
			Where("id = ?", comment.PointID).
			Scan(&seq).Error; err != nil {
			return err
		}

		comment.ParentID = nil
		comment.Floor = seq
		return tx.Create(comment).Error
	})
}

func (r *commentRepository) CreateReply(ctx context.Context, comment *model.Comment) error {
	comment.Floor = 0
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The no-op update takes the parent's row lock, so the insert
		// serializes with a concurrent cascade delete of the parent. Zero
		// rows means the parent is gone, not top-level, or on another point.
		res := tx.Model(&model.Comment{}).
			Where("id = ? AND point_id = ? AND parent_id IS NULL", comment.ParentID, comment.PointID).
			UpdateColumn("updated_at", gorm.Expr("updated_at"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperror.NotFound("parent comment not found")
		}
		return tx.Create(comment).Error
	})
}

func (r *commentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) ListTopLevel(ctx context.Context, pointID uuid.UUID, offset, limit int) ([]model.Comment, int64, error) {
	var comments []model.Comment
	var total int64

	query := r.db.WithContext(ctx).
		Model(&model.Comment{}).
		Where("point_id = ? AND parent_id IS NULL", pointID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at asc").Offset(offset).Limit(limit).Find(&comments).Error; err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (r *commentRepository) ListReplies(ctx context.Context, parentIDs []uuid.UUID) ([]model.Comment, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}

	var replies []model.Comment
	err := r.db.WithContext(ctx).
		Where("parent_id IN ?", parentIDs).
		Order("created_at asc").
		Find(&replies).Error
	return replies, err
}

func (r *commentRepository) UpdateContent(ctx context.Context, id uuid.UUID, content string) error {
	return r.db.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", id).
		Update("content", content).Error
}

func (r *commentRepository) DeleteCascade(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The comment row goes first: taking its lock serializes this cascade
		// with in-flight reply inserts and like bumps keyed on the same row,
		// and the sweeps below run on fresh snapshots that see whatever those
		// transactions committed while we waited.
		res := tx.Where("id = ?", comment.ID).Delete(&model.Comment{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		ids := []uuid.UUID{comment.ID}
		if comment.IsTopLevel() {
			var replyIDs []uuid.UUID
			if err := tx.Model(&model.Comment{}).
				Where("parent_id = ?", comment.ID).
				Pluck("id", &replyIDs).Error; err != nil {
				return err
			}
			if len(replyIDs) > 0 {
				if err := tx.Where("id IN ?", replyIDs).Delete(&model.Comment{}).Error; err != nil {
					return err
				}
				ids = append(ids, replyIDs...)
			}
		}

		return tx.Where("subject_type = ? AND subject_id IN ?", model.SubjectComment, ids).
			Delete(&model.LikeRecord{}).Error
	})
}
