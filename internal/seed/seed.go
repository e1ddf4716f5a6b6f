// Package seed fills an empty store with demo customers and accounts.
package seed

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/josh-kwaku/bank-service/internal/domain"
	"github.com/josh-kwaku/bank-service/internal/logging"
)

const (
	minBalance    = 10_000
	balanceSpread = 90_000
	currency      = "MAD"
)

var DefaultCustomers = []string{"yassine", "nissrine", "imane"}

type customerRepo interface {
	FindAll(ctx context.Context) ([]domain.Customer, error)
	Save(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
}

type accountRepo interface {
	Save(ctx context.Context, account *domain.BankAccount) (*domain.BankAccount, error)
}

type Options struct {
	Customers           []string
	AccountsPerCustomer int
	Rand                *rand.Rand
	Now                 func() time.Time
}

type Result struct {
	Customers int
	Accounts  int
}

func (o Options) withDefaults() Options {
	if o.Customers == nil {
		o.Customers = DefaultCustomers
	}
	if o.AccountsPerCustomer == 0 {
		o.AccountsPerCustomer = 9
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if o.Now == nil {
		o.Now = func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) }
	}
	return o
}

// Run saves one customer per name, then gives every stored customer
// AccountsPerCustomer accounts, including customers saved by earlier runs.
func Run(ctx context.Context, customers customerRepo, accounts accountRepo, opts Options) (Result, error) {
	opts = opts.withDefaults()
	log := logging.FromContext(ctx)

	var res Result
	for _, name := range opts.Customers {
		if _, err := customers.Save(ctx, domain.NewCustomer(name)); err != nil {
			return res, fmt.Errorf("seed.Run: save customer %q: %w", name, err)
		}
		res.Customers++
	}

	stored, err := customers.FindAll(ctx)
	if err != nil {
		return res, fmt.Errorf("seed.Run: list customers: %w", err)
	}

	for _, c := range stored {
		for range opts.AccountsPerCustomer {
			account := domain.NewBankAccount(domain.BankAccountParams{
				ID:         uuid.NewString(),
				CreatedAt:  opts.Now(),
				Balance:    randomBalance(opts.Rand),
				Currency:   currency,
				Type:       randomType(opts.Rand),
				CustomerID: &c.ID,
			})
			if _, err := accounts.Save(ctx, account); err != nil {
				return res, fmt.Errorf("seed.Run: save account for customer %d: %w", c.ID, err)
			}
			res.Accounts++
		}
	}

	log.Info("seed completed", "customers", res.Customers, "accounts", res.Accounts)
	return res, nil
}

func randomBalance(r *rand.Rand) float64 {
	return decimal.NewFromFloat(minBalance + r.Float64()*balanceSpread).Round(2).InexactFloat64()
}

func randomType(r *rand.Rand) domain.AccountType {
	if r.Float64() > 0.5 {
		return domain.AccountTypeCurrent
	}
	return domain.AccountTypeSaving
}
