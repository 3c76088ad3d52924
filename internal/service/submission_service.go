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

type SubmissionService interface {
	Create(ctx context.Context, callerID string, req dto.CreateSubmissionRequest) (*model.Submission, error)
	List(ctx context.Context, callerID string, req dto.ListSubmissionsRequest) (*dto.PagedResponse, error)
	Update(ctx context.Context, callerID string, req dto.UpdateSubmissionRequest) error
	Delete(ctx context.Context, callerID string, req dto.DeleteSubmissionRequest) error
	// Review transitions a pending submission into a terminal state. Approval
	// materializes the point atomically with the status flip.
	Review(ctx context.Context, callerID string, req dto.ReviewSubmissionRequest) (*model.Point, error)
}

type submissionService struct {
	submissionRepo repository.SubmissionRepository
	auth           Authorizer
	sanitizer      *bluemonday.Policy
	redisClient    *redis.Client
	cooldown       time.Duration
}

func NewSubmissionService(submissionRepo repository.SubmissionRepository, auth Authorizer, redisClient *redis.Client, cooldown time.Duration) SubmissionService {
	return &submissionService{
		submissionRepo: submissionRepo,
		auth:           auth,
		sanitizer:      bluemonday.StrictPolicy(),
		redisClient:    redisClient,
		cooldown:       cooldown,
	}
}

func (s *submissionService) Create(ctx context.Context, callerID string, req dto.CreateSubmissionRequest) (*model.Submission, error) {
	if err := enforceRateLimit(ctx, s.redisClient, callerID, "submission", s.cooldown); err != nil {
		return nil, err
	}

	submission := &model.Submission{
		UserID:      callerID,
		MapID:       req.MapID,
		HeroID:      req.HeroID,
		Title:       s.sanitizer.Sanitize(req.Title),
		Description: s.sanitizer.Sanitize(req.Description),
		Images:      req.Images,
		Coordinates: req.Coordinates,
		Difficulty:  req.Difficulty,
		Tags:        req.Tags,
		Status:      model.StatusPending,
	}

	if err := s.submissionRepo.Create(ctx, submission); err != nil {
		return nil, err
	}
	return submission, nil
}

func (s *submissionService) List(ctx context.Context, callerID string, req dto.ListSubmissionsRequest) (*dto.PagedResponse, error) {
	req.Normalize()

	// Ordinary users only ever see their own submissions; admins may browse
	// everyone's, optionally narrowed to one user.
	userID := callerID
	if err := s.auth.RequireAdmin(ctx, callerID); err == nil {
		userID = req.UserID
	}

	submissions, total, err := s.submissionRepo.List(ctx, userID, req.Status, req.Offset(), req.PageSize)
	if err != nil {
		return nil, err
	}

	return dto.NewPagedResponse(submissions, total, req.Pagination), nil
}

func (s *submissionService) Update(ctx context.Context, callerID string, req dto.UpdateSubmissionRequest) error {
	id, err := parseID(req.ID, "submission")
	if err != nil {
		return err
	}

	submission, err := s.submissionRepo.FindByID(ctx, id)
	if err != nil {
		return notFoundOr(err, "submission not found")
	}
	if err := s.auth.RequireOwner(callerID, submission.UserID); err != nil {
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

	// The pending check happens in the same statement as the write, so a
	// review landing in between cannot be overwritten.
	return s.submissionRepo.UpdatePending(ctx, id, updates)
}

func (s *submissionService) Delete(ctx context.Context, callerID string, req dto.DeleteSubmissionRequest) error {
	id, err := parseID(req.ID, "submission")
	if err != nil {
		return err
	}

	submission, err := s.submissionRepo.FindByID(ctx, id)
	if err != nil {
		return notFoundOr(err, "submission not found")
	}
	if err := s.auth.RequireOwner(callerID, submission.UserID); err != nil {
		return err
	}

	return s.submissionRepo.DeletePending(ctx, id)
}

func (s *submissionService) Review(ctx context.Context, callerID string, req dto.ReviewSubmissionRequest) (*model.Point, error) {
	if err := s.auth.RequireAdmin(ctx, callerID); err != nil {
		return nil, err
	}

	id, err := parseID(req.ID, "submission")
	if err != nil {
		return nil, err
	}

	if _, err := s.submissionRepo.FindByID(ctx, id); err != nil {
		return nil, notFoundOr(err, "submission not found")
	}

	if req.Status == model.StatusRejected {
		return nil, s.submissionRepo.Reject(ctx, id, callerID, req.Reason)
	}

	return s.submissionRepo.Approve(ctx, id, callerID)
}
