package validation

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Struct runs tag-based validation on a request payload. Request types
// call this from their Validate method.
func Struct(v any) error {
	return validate.Struct(v)
}
