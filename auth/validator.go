package auth

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateClaims rejects tokens that are correctly signed but carry no user
// or an unknown role.
func validateClaims(claims CustomClaims) error {
	return validate.Struct(claims)
}
