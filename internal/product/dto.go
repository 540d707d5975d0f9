package product

import "github.com/shopspring/decimal"

// CreateProductRequest payload of creation (REST and SOAP).
// swagger:model CreateProductRequest
type CreateProductRequest struct {
	Name  string           `json:"name"  example:"Clavier mécanique"`
	About string           `json:"about" example:"RGB 60%"`
	Price *decimal.Decimal `json:"price" swaggertype:"number" example:"199.90"`
}

// UpdateProductRequest payload of partial update. Pointer fields distinguish
// "absent" from a zero value.
// swagger:model UpdateProductRequest
type UpdateProductRequest struct {
	Name  *string          `json:"name"`
	Price *decimal.Decimal `json:"price" swaggertype:"number"`
}
