package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/heromap/backend/pkg/apperror"
)

func parseID(s, what string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, apperror.Validation(fmt.Sprintf("invalid %s id", what))
	}
	return id, nil
}

// notFoundOr maps gorm's record-not-found onto the NotFound kind and passes
// everything else through untouched.
func notFoundOr(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound(message)
	}
	return err
}
