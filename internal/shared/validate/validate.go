package validate

import (
	v "github.com/go-playground/validator/v10"

	"github.com/gassama94/drf-api/internal/shared/apperr"
)

var validator = v.New(v.WithRequiredStructEnabled())

// Struct checks the `validate` tags on a payload and folds failures into the
// request error taxonomy.
func Struct(s any) error {
	if err := validator.Struct(s); err != nil {
		return apperr.Validation(err.Error())
	}
	return nil
}
