package order

import "github.com/lmdupont/boutique-api/internal/apperr"

func ValidateCreate(req CreateOrderRequest) error {
	if req.UserID == nil || len(req.ProductIDs) == 0 {
		return apperr.Invalid(apperr.MsgInvalid)
	}
	return nil
}

func ValidateUpdate(req UpdateOrderRequest) error {
	if req.Payment == nil {
		return apperr.Invalid(apperr.MsgInvalid)
	}
	return nil
}
