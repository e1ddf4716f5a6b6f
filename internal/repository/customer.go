package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/josh-kwaku/bank-service/internal/domain"
)

const customerColumns = `id, name`

type CustomerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) FindAll(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+customerColumns+` FROM customer ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("FindAll: %w", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("FindAll: scan: %w", err)
		}
		customers = append(customers, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("FindAll: rows: %w", err)
	}
	return customers, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+customerColumns+` FROM customer WHERE id = $1`, id,
	)
	c, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("FindByID: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("FindByID: %w", err)
	}
	return c, nil
}

// Save inserts the customer when ID is zero and assigns the generated id,
// otherwise it replaces the row with that id.
func (r *CustomerRepository) Save(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	var row *sql.Row
	if customer.ID == 0 {
		row = r.db.QueryRowContext(ctx,
			`INSERT INTO customer (name) VALUES ($1) RETURNING `+customerColumns,
			customer.Name,
		)
	} else {
		row = r.db.QueryRowContext(ctx,
			`INSERT INTO customer (id, name) VALUES ($1, $2)
			ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name
			RETURNING `+customerColumns,
			customer.ID, customer.Name,
		)
	}

	saved, err := scanCustomer(row)
	if err != nil {
		return nil, fmt.Errorf("Save: %w", err)
	}
	return saved, nil
}

func (r *CustomerRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM customer WHERE id = $1`, id); err != nil {
		return fmt.Errorf("DeleteByID: %w", err)
	}
	return nil
}

func scanCustomer(s scanner) (*domain.Customer, error) {
	var c domain.Customer
	if err := s.Scan(&c.ID, &c.Name); err != nil {
		return nil, err
	}
	return &c, nil
}
