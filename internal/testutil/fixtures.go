package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/josh-kwaku/bank-service/internal/domain"
)

func SeedTestCustomer(t *testing.T, db *sql.DB, name string) *domain.Customer {
	t.Helper()

	c := domain.NewCustomer(name)
	err := db.QueryRow(
		`INSERT INTO customer (name) VALUES ($1) RETURNING id`, c.Name,
	).Scan(&c.ID)
	if err != nil {
		t.Fatalf("seed test customer %s: %v", name, err)
	}
	return c
}

func SeedTestAccount(t *testing.T, db *sql.DB, customerID *int64, accountType domain.AccountType, balance float64) *domain.BankAccount {
	t.Helper()

	a := domain.NewBankAccount(domain.BankAccountParams{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
		Balance:    balance,
		Currency:   "MAD",
		Type:       accountType,
		CustomerID: customerID,
	})

	_, err := db.Exec(
		`INSERT INTO bank_account (id, created_at, balance, currency, type, customer_id)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.CreatedAt, a.Balance, a.Currency, a.Type, a.CustomerID,
	)
	if err != nil {
		t.Fatalf("seed test account %s: %v", accountType, err)
	}
	return a
}

func CountAccounts(t *testing.T, db *sql.DB) int {
	t.Helper()

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM bank_account`).Scan(&count); err != nil {
		t.Fatalf("count bank accounts: %v", err)
	}
	return count
}
