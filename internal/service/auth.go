package service

import (
	"context"

	"github.com/heromap/backend/internal/repository"
	"github.com/heromap/backend/pkg/apperror"
)

// Authorizer is the single place ownership and role checks live. It is a pure
// predicate over store state; a missing user record on a role check is a deny,
// never an implicit create.
type Authorizer interface {
	RequireAdmin(ctx context.Context, callerID string) error
	RequireOwner(callerID, ownerID string) error
}

type authorizer struct {
	userRepo repository.UserRepository
}

func NewAuthorizer(userRepo repository.UserRepository) Authorizer {
	return &authorizer{userRepo: userRepo}
}

func (a *authorizer) RequireAdmin(ctx context.Context, callerID string) error {
	user, err := a.userRepo.FindByID(ctx, callerID)
	if err != nil {
		return apperror.PermissionDenied("admin access required")
	}
	if !user.IsAdmin() {
		return apperror.PermissionDenied("admin access required")
	}
	return nil
}

func (a *authorizer) RequireOwner(callerID, ownerID string) error {
	if callerID != ownerID {
		return apperror.PermissionDenied("not the owner of this resource")
	}
	return nil
}
