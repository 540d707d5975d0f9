package order

// CreateOrderRequest payload of order creation.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	UserID     *int64  `json:"userId" example:"1"`
	ProductIDs []int64 `json:"productIds"`
}

// UpdateOrderRequest payload of partial update.
// swagger:model UpdateOrderRequest
type UpdateOrderRequest struct {
	Payment *bool `json:"payment"`
}
