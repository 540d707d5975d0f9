// Package product provides the repository interface and PostgreSQL
// implementation for managing products.
package product

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/lmdupont/boutique-api/internal/database"
)

var (
	ErrNotFound = errors.New("product not found")
)

// Filter narrows List. Text filters are case-insensitive substring matches,
// MaxPrice an inclusive upper bound; all supplied filters are ANDed.
type Filter struct {
	Name     string
	About    string
	MaxPrice *decimal.Decimal
}

type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id int64) (*Product, error)
	List(ctx context.Context, f Filter) ([]Product, error)
	Update(ctx context.Context, id int64, name *string, price *decimal.Decimal) (*Product, error)
	Delete(ctx context.Context, id int64) (bool, error)
	PricesByID(ctx context.Context, ids []int64) (map[int64]decimal.Decimal, error)
}

type PGRepo struct{ db database.Pool }

func NewPGRepo(db database.Pool) *PGRepo { return &PGRepo{db: db} }

const productCols = `id, name, about, price::text, review_ids, average_score::text`

func scanProduct(row pgx.Row) (*Product, error) {
	var (
		p          Product
		price, avg string
	)
	if err := row.Scan(&p.ID, &p.Name, &p.About, &price, &p.ReviewIDs, &avg); err != nil {
		return nil, err
	}
	var err error
	if p.Price, err = decimal.NewFromString(price); err != nil {
		return nil, err
	}
	if p.AverageScore, err = decimal.NewFromString(avg); err != nil {
		return nil, err
	}
	if p.ReviewIDs == nil {
		p.ReviewIDs = []int64{}
	}
	return &p, nil
}

func (r *PGRepo) Create(ctx context.Context, p *Product) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	created, err := scanProduct(r.db.QueryRow(ctx, `
		INSERT INTO products (name, about, price)
		VALUES ($1,$2,$3)
		RETURNING `+productCols+`
	`, p.Name, p.About, p.Price.StringFixed(2)))
	if err != nil {
		return err
	}
	*p = *created
	return nil
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRow(ctx, `
		SELECT `+productCols+`
		FROM products WHERE id=$1
	`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PGRepo) List(ctx context.Context, f Filter) ([]Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var maxPrice any
	if f.MaxPrice != nil {
		maxPrice = f.MaxPrice.String()
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+productCols+`
		FROM products
		WHERE ($1 = '' OR name ILIKE '%'||$1||'%')
		  AND ($2 = '' OR about ILIKE '%'||$2||'%')
		  AND ($3::numeric IS NULL OR price <= $3::numeric)
		ORDER BY id
	`, f.Name, f.About, maxPrice)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *PGRepo) Update(ctx context.Context, id int64, name *string, price *decimal.Decimal) (*Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var priceArg any
	if price != nil {
		priceArg = price.StringFixed(2)
	}

	p, err := scanProduct(r.db.QueryRow(ctx, `
		UPDATE products
		SET name = COALESCE($2, name),
		    price = COALESCE($3::numeric, price)
		WHERE id = $1
		RETURNING `+productCols+`
	`, id, name, priceArg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PGRepo) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

// PricesByID returns the unit price of every requested product that exists.
// Missing ids are simply absent from the map; the caller decides the policy.
func (r *PGRepo) PricesByID(ctx context.Context, ids []int64) (map[int64]decimal.Decimal, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT id, price::text FROM products WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64]decimal.Decimal, len(ids))
	for rows.Next() {
		var (
			id    int64
			price string
		)
		if err := rows.Scan(&id, &price); err != nil {
			return nil, err
		}
		d, err := decimal.NewFromString(price)
		if err != nil {
			return nil, err
		}
		out[id] = d
	}
	return out, rows.Err()
}
