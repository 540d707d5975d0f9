package product

import (
	"github.com/shopspring/decimal"

	"github.com/lmdupont/boutique-api/internal/apperr"
)

// ValidateCreate checks a creation payload. A price of exactly 0 is
// rejected: the historical API treated 0 as a missing value and clients
// depend on that.
func ValidateCreate(req CreateProductRequest) error {
	if req.Name == "" || req.About == "" || req.Price == nil {
		return apperr.Invalid(apperr.MsgInvalid)
	}
	if req.Price.LessThanOrEqual(decimal.Zero) {
		return apperr.Invalid(apperr.MsgInvalid)
	}
	return nil
}

// ValidateUpdate requires at least one updatable field.
func ValidateUpdate(req UpdateProductRequest) error {
	if req.Name == nil && req.Price == nil {
		return apperr.Invalid(apperr.MsgNoFields)
	}
	if req.Price != nil && req.Price.LessThanOrEqual(decimal.Zero) {
		return apperr.Invalid(apperr.MsgInvalid)
	}
	return nil
}
