package dto

import (
	"time"

	"github.com/josh-kwaku/bank-service/internal/domain"
)

type BankAccountRequest struct {
	Balance  float64            `json:"balance"`
	Type     domain.AccountType `json:"type"`
	Currency string             `json:"currency"`
}

type BankAccountResponse struct {
	ID        string             `json:"id"`
	CreatedAt time.Time          `json:"createdAt"`
	Balance   float64            `json:"balance"`
	Currency  string             `json:"currency"`
	Type      domain.AccountType `json:"type"`
}

func FromBankAccount(a *domain.BankAccount) BankAccountResponse {
	return BankAccountResponse{
		ID:        a.ID,
		CreatedAt: a.CreatedAt,
		Balance:   a.Balance,
		Currency:  a.Currency,
		Type:      a.Type,
	}
}
