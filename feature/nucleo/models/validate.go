package models

import (
	"fmt"

	apperrors "catalog-bridge/core/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateBrand checks a canonical brand against its shape contract.
func ValidateBrand(b Brand) error {
	if err := validate.Struct(b); err != nil {
		return fmt.Errorf("brand %q: %w: %w", b.ExternalID, apperrors.ErrValidation, err)
	}
	return nil
}

// ValidateProduct checks a canonical product against its shape contract:
// a non-zero external id and at least one variant.
func ValidateProduct(p Product) error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("product %d: %w: %w", p.ExternalID, apperrors.ErrValidation, err)
	}
	return nil
}
