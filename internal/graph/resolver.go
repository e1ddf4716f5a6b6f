package graph

import (
	"context"
	"errors"
	"fmt"

	"github.com/josh-kwaku/bank-service/internal/domain"
	"github.com/josh-kwaku/bank-service/internal/dto"
	"github.com/josh-kwaku/bank-service/internal/logging"
)

type accountReader interface {
	FindAll(ctx context.Context) ([]domain.BankAccount, error)
	FindByID(ctx context.Context, id string) (*domain.BankAccount, error)
	FindByType(ctx context.Context, accountType domain.AccountType) ([]domain.BankAccount, error)
	FindByCustomerID(ctx context.Context, customerID int64) ([]domain.BankAccount, error)
}

type customerReader interface {
	FindAll(ctx context.Context) ([]domain.Customer, error)
	FindByID(ctx context.Context, id int64) (*domain.Customer, error)
}

type accountService interface {
	AddAccount(ctx context.Context, req dto.BankAccountRequest) (*dto.BankAccountResponse, error)
	UpdateAccount(ctx context.Context, id string, req dto.BankAccountRequest) (*dto.BankAccountResponse, error)
	DeleteAccount(ctx context.Context, id string) error
}

// Resolver is the root for both Query and Mutation. Reads go straight to the
// repositories; writes go through the account service.
type Resolver struct {
	accounts  accountReader
	customers customerReader
	service   accountService
}

func NewResolver(accounts accountReader, customers customerReader, service accountService) *Resolver {
	return &Resolver{accounts: accounts, customers: customers, service: service}
}

type bankAccountInput struct {
	Balance  *float64
	Type     *string
	Currency *string
}

func (in bankAccountInput) toRequest() dto.BankAccountRequest {
	var req dto.BankAccountRequest
	if in.Balance != nil {
		req.Balance = *in.Balance
	}
	if in.Type != nil {
		req.Type = domain.AccountType(*in.Type)
	}
	if in.Currency != nil {
		req.Currency = *in.Currency
	}
	return req
}

func (r *Resolver) AccountsList(ctx context.Context) ([]*accountResolver, error) {
	accounts, err := r.accounts.FindAll(ctx)
	if err != nil {
		return nil, internal(ctx, "accountsList", err)
	}
	return r.wrapAccounts(accounts), nil
}

func (r *Resolver) Customers(ctx context.Context) ([]*customerResolver, error) {
	customers, err := r.customers.FindAll(ctx)
	if err != nil {
		return nil, internal(ctx, "customers", err)
	}
	out := make([]*customerResolver, len(customers))
	for i := range customers {
		out[i] = &customerResolver{root: r, customer: customers[i]}
	}
	return out, nil
}

func (r *Resolver) AccountByID(ctx context.Context, args struct{ ID string }) (*accountResolver, error) {
	account, err := r.accounts.FindByID(ctx, args.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewAccountNotFound(args.ID)
		}
		return nil, internal(ctx, "accountById", err)
	}
	return &accountResolver{root: r, account: *account}, nil
}

func (r *Resolver) AccountsByType(ctx context.Context, args struct{ Type string }) ([]*accountResolver, error) {
	accountType := domain.AccountType(args.Type)
	if !accountType.IsValid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAccountType, args.Type)
	}
	accounts, err := r.accounts.FindByType(ctx, accountType)
	if err != nil {
		return nil, internal(ctx, "accountsByType", err)
	}
	return r.wrapAccounts(accounts), nil
}

func (r *Resolver) AddAccount(ctx context.Context, args struct{ BankAccount bankAccountInput }) (*responseResolver, error) {
	resp, err := r.service.AddAccount(ctx, args.BankAccount.toRequest())
	if err != nil {
		return nil, internal(ctx, "addAccount", err)
	}
	return &responseResolver{resp: *resp}, nil
}

func (r *Resolver) UpdateAccount(ctx context.Context, args struct {
	ID          string
	BankAccount bankAccountInput
}) (*responseResolver, error) {
	resp, err := r.service.UpdateAccount(ctx, args.ID, args.BankAccount.toRequest())
	if err != nil {
		return nil, internal(ctx, "updateAccount", err)
	}
	return &responseResolver{resp: *resp}, nil
}

func (r *Resolver) DeleteAccount(ctx context.Context, args struct{ ID string }) (*bool, error) {
	if err := r.service.DeleteAccount(ctx, args.ID); err != nil {
		return nil, internal(ctx, "deleteAccount", err)
	}
	deleted := true
	return &deleted, nil
}

func (r *Resolver) wrapAccounts(accounts []domain.BankAccount) []*accountResolver {
	out := make([]*accountResolver, len(accounts))
	for i := range accounts {
		out[i] = &accountResolver{root: r, account: accounts[i]}
	}
	return out
}

// internalError hides store failures from clients; the cause is logged.
type internalError struct{}

func (internalError) Error() string { return "internal server error" }

func (internalError) Extensions() map[string]any {
	return map[string]any{"code": "INTERNAL"}
}

func internal(ctx context.Context, field string, err error) error {
	logging.FromContext(ctx).Error("graphql resolver failed", "field", field, "error", err)
	return internalError{}
}
