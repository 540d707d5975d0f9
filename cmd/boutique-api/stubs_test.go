package main

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/lmdupont/boutique-api/internal/order"
	"github.com/lmdupont/boutique-api/internal/product"
	"github.com/lmdupont/boutique-api/internal/review"
)

func init() {
	gin.SetMode(gin.TestMode)
	gin.DefaultWriter = io.Discard
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// stubProductRepo keeps products in memory. The review stub reaches back
// into it so the denormalized aggregate behaves like the real store.
type stubProductRepo struct {
	nextID   int64
	products map[int64]*product.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: map[int64]*product.Product{}}
}

func (r *stubProductRepo) Create(_ context.Context, p *product.Product) error {
	r.nextID++
	stored := *p
	stored.ID = r.nextID
	stored.ReviewIDs = []int64{}
	stored.AverageScore = decimal.Zero
	r.products[stored.ID] = &stored
	*p = stored
	return nil
}

func (r *stubProductRepo) GetByID(_ context.Context, id int64) (*product.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, product.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) List(_ context.Context, f product.Filter) ([]product.Product, error) {
	var out []product.Product
	for _, p := range r.products {
		if f.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Name)) {
			continue
		}
		if f.About != "" && !strings.Contains(strings.ToLower(p.About), strings.ToLower(f.About)) {
			continue
		}
		if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, id int64, name *string, price *decimal.Decimal) (*product.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, product.ErrNotFound
	}
	if name != nil {
		p.Name = *name
	}
	if price != nil {
		p.Price = *price
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.products[id]; !ok {
		return false, nil
	}
	delete(r.products, id)
	return true, nil
}

func (r *stubProductRepo) PricesByID(_ context.Context, ids []int64) (map[int64]decimal.Decimal, error) {
	out := make(map[int64]decimal.Decimal, len(ids))
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out[id] = p.Price
		}
	}
	return out, nil
}

type stubOrderRepo struct {
	nextID int64
	orders map[int64]*order.Order
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: map[int64]*order.Order{}}
}

func (r *stubOrderRepo) Create(_ context.Context, o *order.Order) error {
	r.nextID++
	stored := *o
	stored.ID = r.nextID
	stored.Payment = false
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.orders[stored.ID] = &stored
	*o = stored
	return nil
}

func (r *stubOrderRepo) GetByID(_ context.Context, id int64) (*order.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, order.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *stubOrderRepo) List(_ context.Context) ([]order.Order, error) {
	var out []order.Order
	for _, o := range r.orders {
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubOrderRepo) UpdatePayment(_ context.Context, id int64, payment bool) (*order.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, order.ErrNotFound
	}
	o.Payment = payment
	o.UpdatedAt = time.Now()
	cp := *o
	return &cp, nil
}

func (r *stubOrderRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.orders[id]; !ok {
		return false, nil
	}
	delete(r.orders, id)
	return true, nil
}

// stubReviewRepo mirrors the real repository's contract: every mutation
// updates the owning product's review_ids and average_score.
type stubReviewRepo struct {
	nextID   int64
	reviews  map[int64]*review.Review
	products *stubProductRepo
}

func newStubReviewRepo(products *stubProductRepo) *stubReviewRepo {
	return &stubReviewRepo{reviews: map[int64]*review.Review{}, products: products}
}

func (r *stubReviewRepo) refresh(productID int64) {
	p, ok := r.products.products[productID]
	if !ok {
		return
	}
	sum := decimal.Zero
	n := 0
	for _, rv := range r.reviews {
		if rv.ProductID == productID {
			sum = sum.Add(decimal.NewFromInt(int64(rv.Score)))
			n++
		}
	}
	if n == 0 {
		p.AverageScore = decimal.Zero
		return
	}
	p.AverageScore = sum.Div(decimal.NewFromInt(int64(n))).Round(2)
}

func (r *stubReviewRepo) Create(_ context.Context, rv *review.Review) error {
	p, ok := r.products.products[rv.ProductID]
	if !ok {
		return product.ErrNotFound
	}
	r.nextID++
	stored := *rv
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.reviews[stored.ID] = &stored
	p.ReviewIDs = append(p.ReviewIDs, stored.ID)
	r.refresh(rv.ProductID)
	*rv = stored
	return nil
}

func (r *stubReviewRepo) GetByID(_ context.Context, id int64) (*review.Review, error) {
	rv, ok := r.reviews[id]
	if !ok {
		return nil, review.ErrNotFound
	}
	cp := *rv
	return &cp, nil
}

func (r *stubReviewRepo) List(_ context.Context) ([]review.Review, error) {
	var out []review.Review
	for _, rv := range r.reviews {
		out = append(out, *rv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubReviewRepo) ListByProduct(_ context.Context, productID int64) ([]review.Review, error) {
	var out []review.Review
	for _, rv := range r.reviews {
		if rv.ProductID == productID {
			out = append(out, *rv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubReviewRepo) Update(_ context.Context, id int64, score *int, content *string) (*review.Review, error) {
	rv, ok := r.reviews[id]
	if !ok {
		return nil, review.ErrNotFound
	}
	if score != nil {
		rv.Score = *score
	}
	if content != nil {
		rv.Content = *content
	}
	rv.UpdatedAt = time.Now()
	r.refresh(rv.ProductID)
	cp := *rv
	return &cp, nil
}

func (r *stubReviewRepo) Delete(_ context.Context, id int64) error {
	rv, ok := r.reviews[id]
	if !ok {
		return review.ErrNotFound
	}
	delete(r.reviews, id)
	if p, ok := r.products.products[rv.ProductID]; ok {
		kept := p.ReviewIDs[:0]
		for _, rid := range p.ReviewIDs {
			if rid != id {
				kept = append(kept, rid)
			}
		}
		p.ReviewIDs = kept
	}
	r.refresh(rv.ProductID)
	return nil
}

type testEnv struct {
	router   *gin.Engine
	products *stubProductRepo
	orders   *stubOrderRepo
	reviews  *stubReviewRepo
}

func newTestEnv() *testEnv {
	products := newStubProductRepo()
	orders := newStubOrderRepo()
	reviews := newStubReviewRepo(products)
	return &testEnv{
		router:   newRouter(newTestLogger(), products, orders, reviews),
		products: products,
		orders:   orders,
		reviews:  reviews,
	}
}
