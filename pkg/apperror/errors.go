package apperror

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrNotFound         = errors.New("resource not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrConflict         = errors.New("conflict")
	ErrInvalidState     = errors.New("invalid state")
	ErrInternal         = errors.New("internal server error")
	ErrRateLimited      = errors.New("rate limit exceeded")
)

// AppError pairs one of the sentinel kinds above with a human-readable message.
// errors.Is against the kind still works through Unwrap.
type AppError struct {
	Kind    error
	Message string
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.Error()
}

func (e *AppError) Unwrap() error {
	return e.Kind
}

// New creates an AppError of the given kind
func New(kind error, message string) error {
	return &AppError{Kind: kind, Message: message}
}

func Validation(message string) error {
	return New(ErrValidation, message)
}

func NotFound(message string) error {
	return New(ErrNotFound, message)
}

func PermissionDenied(message string) error {
	return New(ErrPermissionDenied, message)
}

func Conflict(message string) error {
	return New(ErrConflict, message)
}

func InvalidState(message string) error {
	return New(ErrInvalidState, message)
}

// IsExpected reports whether err is one of the business error kinds, as
// opposed to an infrastructure failure that should be logged server-side.
func IsExpected(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrInvalidState) ||
		errors.Is(err, ErrRateLimited)
}
