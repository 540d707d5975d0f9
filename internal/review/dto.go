package review

// CreateReviewRequest payload of review creation. Pointer fields distinguish
// "absent" from a zero value.
// swagger:model CreateReviewRequest
type CreateReviewRequest struct {
	UserID    *int64  `json:"userId"    example:"1"`
	ProductID *int64  `json:"productId" example:"1"`
	Score     *int    `json:"score"     example:"5"`
	Content   *string `json:"content"   example:"Très bon produit"`
}

// UpdateReviewRequest payload of partial update.
// swagger:model UpdateReviewRequest
type UpdateReviewRequest struct {
	Score   *int    `json:"score"`
	Content *string `json:"content"`
}
