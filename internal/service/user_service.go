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

const defaultNickname = "New Explorer"

type UserService interface {
	Register(ctx context.Context, callerID string, req dto.RegisterRequest) (*model.User, error)
	// Login auto-registers unknown callers and touches last_login for known
	// ones.
	Login(ctx context.Context, callerID string) (*model.User, error)
	GetInfo(ctx context.Context, callerID string) (*model.User, error)
	Update(ctx context.Context, callerID string, req dto.UpdateUserRequest) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Register(ctx context.Context, callerID string, req dto.RegisterRequest) (*model.User, error) {
	if _, err := s.userRepo.FindByID(ctx, callerID); err == nil {
		return nil, apperror.Conflict("already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := &model.User{
		ID:       callerID,
		Nickname: req.Nickname,
		Avatar:   req.Avatar,
		Role:     model.RoleUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Login(ctx context.Context, callerID string) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, callerID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		user = &model.User{
			ID:       callerID,
			Nickname: defaultNickname,
			Role:     model.RoleUser,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
		return user, nil
	}

	if err := s.userRepo.TouchLastLogin(ctx, callerID); err != nil {
		return nil, err
	}
	return s.userRepo.FindByID(ctx, callerID)
}

func (s *userService) GetInfo(ctx context.Context, callerID string) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, callerID)
	if err != nil {
		return nil, notFoundOr(err, "user not found")
	}
	return user, nil
}

// Update never touches id or role regardless of what the client sends; the
// request shape simply has no fields for them.
func (s *userService) Update(ctx context.Context, callerID string, req dto.UpdateUserRequest) error {
	if _, err := s.userRepo.FindByID(ctx, callerID); err != nil {
		return notFoundOr(err, "user not found")
	}

	updates := map[string]interface{}{}
	if req.Nickname != "" {
		updates["nickname"] = req.Nickname
	}
	if req.Avatar != "" {
		updates["avatar"] = req.Avatar
	}
	if len(updates) == 0 {
		return nil
	}

	return s.userRepo.Update(ctx, callerID, updates)
}
