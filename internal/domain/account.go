package domain

import (
	"time"
)

type AccountType string

const (
	AccountTypeCurrent AccountType = "CURRENT_ACCOUNT"
	AccountTypeSaving  AccountType = "SAVING_ACCOUNT"
)

func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeCurrent, AccountTypeSaving:
		return true
	}
	return false
}

type BankAccount struct {
	ID         string
	CreatedAt  time.Time
	Balance    float64
	Currency   string
	Type       AccountType
	CustomerID *int64
}

// BankAccountParams lists every field a BankAccount is built from.
// CustomerID is the only optional one.
type BankAccountParams struct {
	ID         string
	CreatedAt  time.Time
	Balance    float64
	Currency   string
	Type       AccountType
	CustomerID *int64
}

func NewBankAccount(p BankAccountParams) *BankAccount {
	return &BankAccount{
		ID:         p.ID,
		CreatedAt:  p.CreatedAt,
		Balance:    p.Balance,
		Currency:   p.Currency,
		Type:       p.Type,
		CustomerID: p.CustomerID,
	}
}
