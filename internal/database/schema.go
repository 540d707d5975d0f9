package database

import (
	"context"
	"fmt"
	"log/slog"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		about TEXT NOT NULL DEFAULT '',
		price NUMERIC(10,2) NOT NULL,
		review_ids BIGINT[] NOT NULL DEFAULT '{}',
		average_score NUMERIC(3,2) NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL,
		product_ids BIGINT[] NOT NULL,
		total NUMERIC(10,2) NOT NULL,
		payment BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL,
		product_id BIGINT NOT NULL,
		score INTEGER NOT NULL CHECK (score >= 1 AND score <= 5),
		content TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS reviews_product_id_idx ON reviews (product_id)`,
}

// Bootstrap creates the tables if they do not exist. Safe to run on every
// start.
func Bootstrap(ctx context.Context, db Pool, log *slog.Logger) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}
	log.Info("schema bootstrapped")
	return nil
}
