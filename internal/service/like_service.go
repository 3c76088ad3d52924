package service

import (
	"context"

	"github.com/heromap/backend/internal/model"
	"github.com/heromap/backend/internal/repository"
)

type LikeService interface {
	SetLike(ctx context.Context, callerID, subjectType, subjectID string, desired bool) error
	// Recount rebuilds a subject's cached counter from its like records.
	// Admin-only repair path.
	Recount(ctx context.Context, callerID, subjectType, subjectID string) (int64, error)
}

type likeService struct {
	likeRepo    repository.LikeRepository
	pointRepo   repository.PointRepository
	commentRepo repository.CommentRepository
	auth        Authorizer
}

func NewLikeService(likeRepo repository.LikeRepository, pointRepo repository.PointRepository, commentRepo repository.CommentRepository, auth Authorizer) LikeService {
	return &likeService{
		likeRepo:    likeRepo,
		pointRepo:   pointRepo,
		commentRepo: commentRepo,
		auth:        auth,
	}
}

func (s *likeService) SetLike(ctx context.Context, callerID, subjectType, subjectID string, desired bool) error {
	id, err := parseID(subjectID, subjectType)
	if err != nil {
		return err
	}

	switch subjectType {
	case model.SubjectPoint:
		if _, err := s.pointRepo.FindByID(ctx, id); err != nil {
			return notFoundOr(err, "point not found")
		}
	case model.SubjectComment:
		if _, err := s.commentRepo.FindByID(ctx, id); err != nil {
			return notFoundOr(err, "comment not found")
		}
	}

	return s.likeRepo.SetLike(ctx, subjectType, id, callerID, desired)
}

func (s *likeService) Recount(ctx context.Context, callerID, subjectType, subjectID string) (int64, error) {
	if err := s.auth.RequireAdmin(ctx, callerID); err != nil {
		return 0, err
	}

	id, err := parseID(subjectID, subjectType)
	if err != nil {
		return 0, err
	}

	return s.likeRepo.Recount(ctx, subjectType, id)
}
