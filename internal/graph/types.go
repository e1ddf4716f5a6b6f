package graph

import (
	"context"
	"errors"
	"strconv"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/josh-kwaku/bank-service/internal/domain"
	"github.com/josh-kwaku/bank-service/internal/dto"
)

type accountResolver struct {
	root    *Resolver
	account domain.BankAccount
}

func (a *accountResolver) ID() string          { return a.account.ID }
func (a *accountResolver) CreatedAt() DateTime { return DateTime{a.account.CreatedAt} }
func (a *accountResolver) Balance() float64    { return a.account.Balance }
func (a *accountResolver) Currency() string    { return a.account.Currency }
func (a *accountResolver) Type() string        { return string(a.account.Type) }

// Customer resolves the owner lazily. A dangling reference resolves to null.
func (a *accountResolver) Customer(ctx context.Context) (*customerResolver, error) {
	if a.account.CustomerID == nil {
		return nil, nil
	}
	c, err := a.root.customers.FindByID(ctx, *a.account.CustomerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, internal(ctx, "BankAccount.customer", err)
	}
	return &customerResolver{root: a.root, customer: *c}, nil
}

type customerResolver struct {
	root     *Resolver
	customer domain.Customer
}

func (c *customerResolver) ID() graphql.ID {
	return graphql.ID(strconv.FormatInt(c.customer.ID, 10))
}

func (c *customerResolver) Name() string { return c.customer.Name }

func (c *customerResolver) Accounts(ctx context.Context) ([]*accountResolver, error) {
	accounts, err := c.root.accounts.FindByCustomerID(ctx, c.customer.ID)
	if err != nil {
		return nil, internal(ctx, "Customer.accounts", err)
	}
	return c.root.wrapAccounts(accounts), nil
}

type responseResolver struct {
	resp dto.BankAccountResponse
}

func (r *responseResolver) ID() string          { return r.resp.ID }
func (r *responseResolver) CreatedAt() DateTime { return DateTime{r.resp.CreatedAt} }
func (r *responseResolver) Balance() float64    { return r.resp.Balance }
func (r *responseResolver) Currency() string    { return r.resp.Currency }
func (r *responseResolver) Type() string        { return string(r.resp.Type) }
