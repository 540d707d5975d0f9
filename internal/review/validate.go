package review

import "github.com/lmdupont/boutique-api/internal/apperr"

func ValidateCreate(req CreateReviewRequest) error {
	if req.UserID == nil || req.ProductID == nil || req.Score == nil ||
		req.Content == nil || *req.Content == "" {
		return apperr.Invalid(apperr.MsgInvalid)
	}
	if *req.Score < 1 || *req.Score > 5 {
		return apperr.Invalid(apperr.MsgScoreRange)
	}
	return nil
}

func ValidateUpdate(req UpdateReviewRequest) error {
	if req.Score == nil && req.Content == nil {
		return apperr.Invalid(apperr.MsgNoFields)
	}
	if req.Score != nil && (*req.Score < 1 || *req.Score > 5) {
		return apperr.Invalid(apperr.MsgScoreRange)
	}
	return nil
}
