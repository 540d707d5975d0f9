package order

import (
	"github.com/shopspring/decimal"

	"github.com/lmdupont/boutique-api/internal/product"
)

// 20% VAT applied to every order subtotal.
var vatRate = decimal.RequireFromString("1.2")

// ComputeTotal sums the unit price of every requested product (duplicates
// count once per unit), applies the VAT and rounds to cents. Any id missing
// from the price map fails the whole computation rather than silently
// shrinking the total.
func ComputeTotal(productIDs []int64, prices map[int64]decimal.Decimal) (decimal.Decimal, error) {
	subtotal := decimal.Zero
	for _, id := range productIDs {
		price, ok := prices[id]
		if !ok {
			return decimal.Zero, product.ErrNotFound
		}
		subtotal = subtotal.Add(price)
	}
	return subtotal.Mul(vatRate).Round(2), nil
}
