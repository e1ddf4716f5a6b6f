package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/josh-kwaku/bank-service/internal/domain"
)

const bankAccountColumns = `id, created_at, balance, currency, type, customer_id`

type BankAccountRepository struct {
	db *sql.DB
}

func NewBankAccountRepository(db *sql.DB) *BankAccountRepository {
	return &BankAccountRepository{db: db}
}

func (r *BankAccountRepository) FindAll(ctx context.Context) ([]domain.BankAccount, error) {
	accounts, err := r.query(ctx,
		`SELECT `+bankAccountColumns+` FROM bank_account ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("FindAll: %w", err)
	}
	return accounts, nil
}

func (r *BankAccountRepository) FindByType(ctx context.Context, accountType domain.AccountType) ([]domain.BankAccount, error) {
	accounts, err := r.query(ctx,
		`SELECT `+bankAccountColumns+` FROM bank_account WHERE type = $1 ORDER BY created_at, id`,
		accountType,
	)
	if err != nil {
		return nil, fmt.Errorf("FindByType: %w", err)
	}
	return accounts, nil
}

func (r *BankAccountRepository) FindByCustomerID(ctx context.Context, customerID int64) ([]domain.BankAccount, error) {
	accounts, err := r.query(ctx,
		`SELECT `+bankAccountColumns+` FROM bank_account WHERE customer_id = $1 ORDER BY created_at, id`,
		customerID,
	)
	if err != nil {
		return nil, fmt.Errorf("FindByCustomerID: %w", err)
	}
	return accounts, nil
}

func (r *BankAccountRepository) FindByID(ctx context.Context, id string) (*domain.BankAccount, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+bankAccountColumns+` FROM bank_account WHERE id = $1`, id,
	)
	a, err := scanBankAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("FindByID: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("FindByID: %w", err)
	}
	return a, nil
}

// Save inserts the account or replaces every column of the row with the same id.
func (r *BankAccountRepository) Save(ctx context.Context, account *domain.BankAccount) (*domain.BankAccount, error) {
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO bank_account (id, created_at, balance, currency, type, customer_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			created_at = EXCLUDED.created_at,
			balance = EXCLUDED.balance,
			currency = EXCLUDED.currency,
			type = EXCLUDED.type,
			customer_id = EXCLUDED.customer_id
		RETURNING `+bankAccountColumns,
		account.ID, account.CreatedAt, account.Balance, account.Currency,
		account.Type, account.CustomerID,
	)
	saved, err := scanBankAccount(row)
	if err != nil {
		return nil, fmt.Errorf("Save: %w", err)
	}
	return saved, nil
}

func (r *BankAccountRepository) DeleteByID(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM bank_account WHERE id = $1`, id); err != nil {
		return fmt.Errorf("DeleteByID: %w", err)
	}
	return nil
}

func (r *BankAccountRepository) query(ctx context.Context, query string, args ...any) ([]domain.BankAccount, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := []domain.BankAccount{}
	for rows.Next() {
		a, err := scanBankAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		accounts = append(accounts, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return accounts, nil
}

func scanBankAccount(s scanner) (*domain.BankAccount, error) {
	var a domain.BankAccount
	err := s.Scan(&a.ID, &a.CreatedAt, &a.Balance, &a.Currency, &a.Type, &a.CustomerID)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
