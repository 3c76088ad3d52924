package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/redis/go-redis/v9"

	"github.com/heromap/backend/internal/dto"
	"github.com/heromap/backend/internal/model"
	"github.com/heromap/backend/internal/repository"
	"github.com/heromap/backend/pkg/apperror"
)

type CommentService interface {
	Create(ctx context.Context, callerID string, req dto.CreateCommentRequest) (*dto.CreateCommentResponse, error)
	Get(ctx context.Context, req dto.GetCommentsRequest) (*dto.PagedResponse, error)
	Update(ctx context.Context, callerID string, req dto.UpdateCommentRequest) error
	Delete(ctx context.Context, callerID string, req dto.DeleteCommentRequest) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	pointRepo   repository.PointRepository
	auth        Authorizer
	sanitizer   *bluemonday.Policy
	redisClient *redis.Client
	cooldown    time.Duration
}

func NewCommentService(commentRepo repository.CommentRepository, pointRepo repository.PointRepository, auth Authorizer, redisClient *redis.Client, cooldown time.Duration) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		pointRepo:   pointRepo,
		auth:        auth,
		sanitizer:   bluemonday.StrictPolicy(),
		redisClient: redisClient,
		cooldown:    cooldown,
	}
}

func (s *commentService) Create(ctx context.Context, callerID string, req dto.CreateCommentRequest) (*dto.CreateCommentResponse, error) {
	pointID, err := parseID(req.PointID, "point")
	if err != nil {
		return nil, err
	}

	if _, err := s.pointRepo.FindByID(ctx, pointID); err != nil {
		return nil, notFoundOr(err, "point not found")
	}

	if err := enforceRateLimit(ctx, s.redisClient, callerID, "comment", s.cooldown); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		PointID: pointID,
		UserID:  callerID,
		Content: s.sanitizer.Sanitize(req.Content),
	}

	if req.IsTopLevel() {
		if err := s.commentRepo.CreateTopLevel(ctx, comment); err != nil {
			return nil, err
		}
	} else {
		parentID, err := parseID(req.ParentID, "parent comment")
		if err != nil {
			return nil, err
		}

		parent, err := s.commentRepo.FindByID(ctx, parentID)
		if err != nil {
			return nil, notFoundOr(err, "parent comment not found")
		}
		if parent.PointID != pointID {
			return nil, apperror.Validation("parent comment belongs to a different point")
		}
		// Threads are exactly two levels deep; floors only make sense that way.
		if !parent.IsTopLevel() {
			return nil, apperror.Validation("replies to replies are not allowed")
		}

		comment.ParentID = &parent.ID
		if err := s.commentRepo.CreateReply(ctx, comment); err != nil {
			return nil, err
		}
	}

	return &dto.CreateCommentResponse{
		CommentID: comment.ID.String(),
		Floor:     comment.Floor,
	}, nil
}

func (s *commentService) Get(ctx context.Context, req dto.GetCommentsRequest) (*dto.PagedResponse, error) {
	pointID, err := parseID(req.PointID, "point")
	if err != nil {
		return nil, err
	}

	req.Normalize()
	topLevel, total, err := s.commentRepo.ListTopLevel(ctx, pointID, req.Offset(), req.PageSize)
	if err != nil {
		return nil, err
	}

	parentIDs := make([]uuid.UUID, 0, len(topLevel))
	for _, c := range topLevel {
		parentIDs = append(parentIDs, c.ID)
	}

	replies, err := s.commentRepo.ListReplies(ctx, parentIDs)
	if err != nil {
		return nil, err
	}

	byParent := make(map[uuid.UUID][]model.Comment, len(topLevel))
	for _, reply := range replies {
		byParent[*reply.ParentID] = append(byParent[*reply.ParentID], reply)
	}

	threads := make([]dto.CommentThread, 0, len(topLevel))
	for _, c := range topLevel {
		threads = append(threads, dto.CommentThread{
			Comment: c,
			Replies: byParent[c.ID],
		})
	}

	return dto.NewPagedResponse(threads, total, req.Pagination), nil
}

func (s *commentService) Update(ctx context.Context, callerID string, req dto.UpdateCommentRequest) error {
	id, err := parseID(req.ID, "comment")
	if err != nil {
		return err
	}

	comment, err := s.commentRepo.FindByID(ctx, id)
	if err != nil {
		return notFoundOr(err, "comment not found")
	}
	if err := s.auth.RequireOwner(callerID, comment.UserID); err != nil {
		return err
	}

	return s.commentRepo.UpdateContent(ctx, id, s.sanitizer.Sanitize(req.Content))
}

func (s *commentService) Delete(ctx context.Context, callerID string, req dto.DeleteCommentRequest) error {
	id, err := parseID(req.ID, "comment")
	if err != nil {
		return err
	}

	comment, err := s.commentRepo.FindByID(ctx, id)
	if err != nil {
		return notFoundOr(err, "comment not found")
	}
	if err := s.auth.RequireOwner(callerID, comment.UserID); err != nil {
		return err
	}

	return s.commentRepo.DeleteCascade(ctx, comment)
}
