// Package validation checks the shape of ingress envelopes.
// Message bodies stay opaque: only routing fields are validated here.
package validation

import (
	"bytes"
	"chat-relay/errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground/validator and maps its failures to
// errors.ErrInvalidRequest.
type Validator struct {
	v *validator.Validate
}

// JSONValue tags a json.RawMessage that must carry an actual value.
// "required" alone lets a literal null through.
const JSONValue = "json_value"

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Only fails on a programming error: the tag name is static.
	if err := v.RegisterValidation(JSONValue, isJSONValue); err != nil {
		panic(err)
	}
	return &Validator{v: v}
}

func isJSONValue(fl validator.FieldLevel) bool {
	raw := bytes.TrimSpace(fl.Field().Bytes())
	return len(raw) > 0 && !bytes.Equal(raw, []byte("null"))
}

func (v *Validator) Struct(payload any) error {
	if err := v.v.Struct(payload); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}
	return nil
}
