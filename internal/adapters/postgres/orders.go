// Package postgres provides the PostgreSQL-backed order store. The schema is
// managed by embedded goose migrations; see Migrate.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NishaManivannan/Bakery-chatbot/pkg/domain"
)

// OrderStore implements ports.OrderStore on a pgx connection pool.
type OrderStore struct {
	pool *pgxpool.Pool
}

// New connects to the database, verifies the connection, and returns the
// store. Call Migrate first (or out of band) to ensure the schema exists.
func New(ctx context.Context, dsn string) (*OrderStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}
	return &OrderStore{pool: pool}, nil
}

// NewFromPool wraps an existing pool.
func NewFromPool(pool *pgxpool.Pool) *OrderStore {
	return &OrderStore{pool: pool}
}

// Insert stores one order as a single statement.
func (s *OrderStore) Insert(ctx context.Context, order domain.Order) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO orders (name, phone, category, flavor, topping, size, customization, cost)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		order.Name,
		order.Phone,
		order.Category,
		order.Flavor,
		order.Topping,
		order.Size,
		order.Customization,
		order.Cost,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

// ExistsByNamePhone reports whether any order matches (name, phone) exactly.
func (s *OrderStore) ExistsByNamePhone(ctx context.Context, name, phone string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM orders WHERE name = $1 AND phone = $2)`,
		name, phone,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check order existence: %w", err)
	}
	return exists, nil
}

// DeleteByNamePhone removes every order matching (name, phone) exactly.
func (s *OrderStore) DeleteByNamePhone(ctx context.Context, name, phone string) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM orders WHERE name = $1 AND phone = $2`,
		name, phone,
	)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (s *OrderStore) Close() {
	s.pool.Close()
}
