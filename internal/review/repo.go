// Package review provides the repository for reviews together with the
// maintenance of the owning product's derived aggregate (average_score and
// review_ids). Every mutation runs as one transaction: the product row is
// locked first, then the review row changes, then the average is recomputed
// from the full review set. The row lock serializes concurrent writers per
// product, so each recomputation sees the previously committed reviews and
// no update is lost; recomputing from the full set (instead of keeping a
// running sum/count) rules out drift.
package review

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/lmdupont/boutique-api/internal/database"
	"github.com/lmdupont/boutique-api/internal/product"
)

var (
	ErrNotFound = errors.New("review not found")
)

// Mean over zero rows is exactly 0, never NULL.
const refreshAggregate = `
	UPDATE products
	SET average_score = COALESCE(
		(SELECT ROUND(AVG(score), 2) FROM reviews WHERE product_id = $1), 0)
	WHERE id = $1`

type Repository interface {
	Create(ctx context.Context, rv *Review) error
	GetByID(ctx context.Context, id int64) (*Review, error)
	List(ctx context.Context) ([]Review, error)
	ListByProduct(ctx context.Context, productID int64) ([]Review, error)
	Update(ctx context.Context, id int64, score *int, content *string) (*Review, error)
	Delete(ctx context.Context, id int64) error
}

type PGRepo struct{ db database.Pool }

func NewPGRepo(db database.Pool) *PGRepo { return &PGRepo{db: db} }

const reviewCols = `id, user_id, product_id, score, content, created_at, updated_at`

func scanReview(row pgx.Row) (*Review, error) {
	var rv Review
	if err := row.Scan(&rv.ID, &rv.UserID, &rv.ProductID, &rv.Score, &rv.Content, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
		return nil, err
	}
	return &rv, nil
}

// lockProduct takes the row lock that serializes aggregate recomputation for
// one product. ok=false means the product row does not exist (a review can
// be orphaned when its product was deleted); the caller decides whether that
// rejects the mutation or just skips the aggregate refresh.
func lockProduct(ctx context.Context, tx pgx.Tx, productID int64) (bool, error) {
	var id int64
	err := tx.QueryRow(ctx, `SELECT id FROM products WHERE id = $1 FOR UPDATE`, productID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create inserts the review and refreshes the owning product's aggregate in
// one transaction. A review against a missing product is rejected before
// anything is written.
func (r *PGRepo) Create(ctx context.Context, rv *Review) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ok, err := lockProduct(ctx, tx, rv.ProductID)
	if err != nil {
		return err
	}
	if !ok {
		return product.ErrNotFound
	}

	if err := tx.QueryRow(ctx, `
		INSERT INTO reviews (user_id, product_id, score, content, created_at, updated_at)
		VALUES ($1,$2,$3,$4,NOW(),NOW())
		RETURNING id, created_at, updated_at
	`, rv.UserID, rv.ProductID, rv.Score, rv.Content).Scan(&rv.ID, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `
		UPDATE products SET review_ids = array_append(review_ids, $2) WHERE id = $1
	`, rv.ProductID, rv.ID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, refreshAggregate, rv.ProductID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*Review, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rv, err := scanReview(r.db.QueryRow(ctx, `
		SELECT `+reviewCols+`
		FROM reviews WHERE id=$1
	`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rv, nil
}

func (r *PGRepo) List(ctx context.Context) ([]Review, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.queryMany(ctx, `SELECT `+reviewCols+` FROM reviews ORDER BY id`)
}

func (r *PGRepo) ListByProduct(ctx context.Context, productID int64) ([]Review, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.queryMany(ctx, `SELECT `+reviewCols+` FROM reviews WHERE product_id=$1 ORDER BY id`, productID)
}

func (r *PGRepo) queryMany(ctx context.Context, sql string, args ...any) ([]Review, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Review
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rv)
	}
	return out, rows.Err()
}

// Update applies a partial update and recomputes the product's average in
// the same transaction. review_ids is unchanged on update.
func (r *PGRepo) Update(ctx context.Context, id int64, score *int, content *string) (*Review, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var productID int64
	if err := tx.QueryRow(ctx, `SELECT product_id FROM reviews WHERE id = $1`, id).Scan(&productID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	ok, err := lockProduct(ctx, tx, productID)
	if err != nil {
		return nil, err
	}

	rv, err := scanReview(tx.QueryRow(ctx, `
		UPDATE reviews
		SET score = COALESCE($2, score),
		    content = COALESCE($3, content),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING `+reviewCols+`
	`, id, score, content))
	if err != nil {
		return nil, err
	}

	if ok {
		if _, err := tx.Exec(ctx, refreshAggregate, productID); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return rv, nil
}

// Delete removes the review, drops its id from the product's review_ids and
// recomputes the average over the remaining reviews, atomically.
func (r *PGRepo) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var productID int64
	if err := tx.QueryRow(ctx, `SELECT product_id FROM reviews WHERE id = $1`, id).Scan(&productID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	ok, err := lockProduct(ctx, tx, productID)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	if ok {
		if _, err := tx.Exec(ctx, `
			UPDATE products SET review_ids = array_remove(review_ids, $2) WHERE id = $1
		`, productID, id); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, refreshAggregate, productID); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
