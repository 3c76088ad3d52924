package handler

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/heromap/backend/pkg/apperror"
	pkgvalidator "github.com/heromap/backend/pkg/validator"
)

var validate = validator.New()

// bindData decodes the envelope's data field into a typed request and runs
// struct validation on it.
func bindData(raw json.RawMessage, out interface{}) error {
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return apperror.Validation("malformed request data")
		}
	}
	if err := validate.Struct(out); err != nil {
		return apperror.Validation(pkgvalidator.FormatValidationError(err))
	}
	return nil
}

func unknownAction(action string) error {
	return apperror.Validation(fmt.Sprintf("unknown action %q", action))
}
