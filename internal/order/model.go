package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order row. product_ids may contain duplicates, one entry per unit. Total
// is frozen at creation time and never revised when product prices change.
type Order struct {
	ID         int64           `json:"id"`
	UserID     int64           `json:"user_id"`
	ProductIDs []int64         `json:"product_ids"`
	Total      decimal.Decimal `json:"total"`
	Payment    bool            `json:"payment"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
