package order

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/lmdupont/boutique-api/internal/database"
)

var (
	ErrNotFound = errors.New("order not found")
)

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id int64) (*Order, error)
	List(ctx context.Context) ([]Order, error)
	UpdatePayment(ctx context.Context, id int64, payment bool) (*Order, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type PGRepo struct{ db database.Pool }

func NewPGRepo(db database.Pool) *PGRepo { return &PGRepo{db: db} }

const orderCols = `id, user_id, product_ids, total::text, payment, created_at, updated_at`

func scanOrder(row pgx.Row) (*Order, error) {
	var (
		o     Order
		total string
	)
	if err := row.Scan(&o.ID, &o.UserID, &o.ProductIDs, &total, &o.Payment, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	var err error
	if o.Total, err = decimal.NewFromString(total); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *PGRepo) Create(ctx context.Context, o *Order) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	created, err := scanOrder(r.db.QueryRow(ctx, `
		INSERT INTO orders (user_id, product_ids, total, payment, created_at, updated_at)
		VALUES ($1,$2,$3,false,NOW(),NOW())
		RETURNING `+orderCols+`
	`, o.UserID, o.ProductIDs, o.Total.StringFixed(2)))
	if err != nil {
		return err
	}
	*o = *created
	return nil
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	o, err := scanOrder(r.db.QueryRow(ctx, `
		SELECT `+orderCols+`
		FROM orders WHERE id=$1
	`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *PGRepo) List(ctx context.Context) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT `+orderCols+`
		FROM orders ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

func (r *PGRepo) UpdatePayment(ctx context.Context, id int64, payment bool) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	o, err := scanOrder(r.db.QueryRow(ctx, `
		UPDATE orders
		SET payment = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+orderCols+`
	`, id, payment))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *PGRepo) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}
