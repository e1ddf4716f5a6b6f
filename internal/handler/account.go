package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/josh-kwaku/bank-service/internal/domain"
	"github.com/josh-kwaku/bank-service/internal/logging"
)

type accountReader interface {
	FindAll(ctx context.Context) ([]domain.BankAccount, error)
	FindByID(ctx context.Context, id string) (*domain.BankAccount, error)
	FindByType(ctx context.Context, accountType domain.AccountType) ([]domain.BankAccount, error)
}

type customerReader interface {
	FindAll(ctx context.Context) ([]domain.Customer, error)
}

// AccountHandler is a read-only REST view over the same store the GraphQL
// API writes to.
type AccountHandler struct {
	accounts  accountReader
	customers customerReader
}

func NewAccountHandler(accounts accountReader, customers customerReader) *AccountHandler {
	return &AccountHandler{accounts: accounts, customers: customers}
}

type accountDTO struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	Balance    float64   `json:"balance"`
	Currency   string    `json:"currency"`
	Type       string    `json:"type"`
	CustomerID *int64    `json:"customer_id"`
}

func toAccountDTO(a *domain.BankAccount) accountDTO {
	return accountDTO{
		ID:         a.ID,
		CreatedAt:  a.CreatedAt,
		Balance:    a.Balance,
		Currency:   a.Currency,
		Type:       string(a.Type),
		CustomerID: a.CustomerID,
	}
}

type customerDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		accounts []domain.BankAccount
		err      error
	)

	if t := r.URL.Query().Get("type"); t != "" {
		accountType := domain.AccountType(t)
		if !accountType.IsValid() {
			RespondAppError(w, ErrInvalidAccountType, map[string]string{"type": t})
			return
		}
		accounts, err = h.accounts.FindByType(r.Context(), accountType)
	} else {
		accounts, err = h.accounts.FindAll(r.Context())
	}
	if err != nil {
		logging.FromContext(r.Context()).Error("failed to list accounts", "error", err)
		RespondDomainError(w, err)
		return
	}

	dtos := make([]accountDTO, len(accounts))
	for i := range accounts {
		dtos[i] = toAccountDTO(&accounts[i])
	}
	RespondSuccess(w, http.StatusOK, dtos)
}

func (h *AccountHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	account, err := h.accounts.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			RespondDomainError(w, domain.NewAccountNotFound(id))
			return
		}
		logging.FromContext(r.Context()).Error("failed to get account", "error", err, "account_id", id)
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusOK, toAccountDTO(account))
}

func (h *AccountHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.FindAll(r.Context())
	if err != nil {
		logging.FromContext(r.Context()).Error("failed to list customers", "error", err)
		RespondDomainError(w, err)
		return
	}

	dtos := make([]customerDTO, len(customers))
	for i, c := range customers {
		dtos[i] = customerDTO{ID: c.ID, Name: c.Name}
	}
	RespondSuccess(w, http.StatusOK, dtos)
}
