package product

import "github.com/shopspring/decimal"

// Product row. NUMERIC columns travel as decimals (scanned via ::text) so
// float rounding never touches money or scores.
//
// average_score is derived state: the mean of the scores of every review
// whose product_id references this row, 0 when there are none. review_ids
// mirrors those reviews' ids in insertion order. Both are maintained by the
// review repository inside the review mutation transaction.
type Product struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	About        string          `json:"about"`
	Price        decimal.Decimal `json:"price"`
	ReviewIDs    []int64         `json:"review_ids"`
	AverageScore decimal.Decimal `json:"average_score"`
}

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	// Error message
	// example: Produit non trouvé
	Error string `json:"error"`
}
