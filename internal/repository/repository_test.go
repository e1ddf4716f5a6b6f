package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josh-kwaku/bank-service/internal/domain"
	"github.com/josh-kwaku/bank-service/internal/repository"
	"github.com/josh-kwaku/bank-service/internal/testutil"
)

func newAccount(accountType domain.AccountType, balance float64, customerID *int64) *domain.BankAccount {
	return domain.NewBankAccount(domain.BankAccountParams{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
		Balance:    balance,
		Currency:   "MAD",
		Type:       accountType,
		CustomerID: customerID,
	})
}

func TestBankAccountRepository_SaveAndFind(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewBankAccountRepository(db)
	ctx := context.Background()

	customer := testutil.SeedTestCustomer(t, db, "yassine")
	account := newAccount(domain.AccountTypeCurrent, 1234.56, &customer.ID)

	saved, err := repo.Save(ctx, account)
	require.NoError(t, err)
	assert.Equal(t, account.ID, saved.ID)
	assert.Equal(t, 1234.56, saved.Balance)
	assert.Equal(t, "MAD", saved.Currency)
	assert.Equal(t, domain.AccountTypeCurrent, saved.Type)
	assert.True(t, account.CreatedAt.Equal(saved.CreatedAt))
	require.NotNil(t, saved.CustomerID)
	assert.Equal(t, customer.ID, *saved.CustomerID)

	found, err := repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, found.ID)
	assert.Equal(t, saved.Balance, found.Balance)
	assert.Equal(t, saved.Type, found.Type)
	assert.True(t, saved.CreatedAt.Equal(found.CreatedAt))
}

func TestBankAccountRepository_SaveReplacesExisting(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewBankAccountRepository(db)
	ctx := context.Background()

	customer := testutil.SeedTestCustomer(t, db, "imane")
	original := testutil.SeedTestAccount(t, db, &customer.ID, domain.AccountTypeCurrent, 1000)

	replacement := newAccount(domain.AccountTypeSaving, 2000, nil)
	replacement.ID = original.ID

	saved, err := repo.Save(ctx, replacement)
	require.NoError(t, err)
	assert.Equal(t, original.ID, saved.ID)
	assert.Equal(t, 2000.0, saved.Balance)
	assert.Equal(t, domain.AccountTypeSaving, saved.Type)
	assert.Nil(t, saved.CustomerID)
	assert.Equal(t, 1, testutil.CountAccounts(t, db))
}

func TestBankAccountRepository_FindByIDMissing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewBankAccountRepository(db)

	_, err := repo.FindByID(context.Background(), "does-not-exist")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBankAccountRepository_DeleteIsIdempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewBankAccountRepository(db)
	ctx := context.Background()

	account := testutil.SeedTestAccount(t, db, nil, domain.AccountTypeSaving, 500)

	require.NoError(t, repo.DeleteByID(ctx, account.ID))
	require.NoError(t, repo.DeleteByID(ctx, account.ID))
	require.NoError(t, repo.DeleteByID(ctx, uuid.NewString()))

	_, err := repo.FindByID(ctx, account.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBankAccountRepository_Listing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewBankAccountRepository(db)
	ctx := context.Background()

	yassine := testutil.SeedTestCustomer(t, db, "yassine")
	nissrine := testutil.SeedTestCustomer(t, db, "nissrine")
	testutil.SeedTestAccount(t, db, &yassine.ID, domain.AccountTypeCurrent, 100)
	testutil.SeedTestAccount(t, db, &yassine.ID, domain.AccountTypeSaving, 200)
	testutil.SeedTestAccount(t, db, &nissrine.ID, domain.AccountTypeSaving, 300)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	tests := []struct {
		name        string
		accountType domain.AccountType
		want        int
	}{
		{"current accounts", domain.AccountTypeCurrent, 1},
		{"saving accounts", domain.AccountTypeSaving, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			accounts, err := repo.FindByType(ctx, tc.accountType)
			require.NoError(t, err)
			assert.Len(t, accounts, tc.want)
			for _, a := range accounts {
				assert.Equal(t, tc.accountType, a.Type)
			}
		})
	}

	owned, err := repo.FindByCustomerID(ctx, yassine.ID)
	require.NoError(t, err)
	assert.Len(t, owned, 2)

	none, err := repo.FindByCustomerID(ctx, 9999)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCustomerRepository(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewCustomerRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, domain.NewCustomer("yassine"))
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.Equal(t, "yassine", saved.Name)

	saved.Name = "yassine b."
	renamed, err := repo.Save(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, renamed.ID)

	found, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "yassine b.", found.Name)

	_, err = repo.Save(ctx, domain.NewCustomer("imane"))
	require.NoError(t, err)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, repo.DeleteByID(ctx, saved.ID))
	require.NoError(t, repo.DeleteByID(ctx, saved.ID))

	_, err = repo.FindByID(ctx, saved.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomerDeleteDetachesAccounts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	customers := repository.NewCustomerRepository(db)
	accounts := repository.NewBankAccountRepository(db)
	ctx := context.Background()

	customer := testutil.SeedTestCustomer(t, db, "nissrine")
	account := testutil.SeedTestAccount(t, db, &customer.ID, domain.AccountTypeCurrent, 10)

	require.NoError(t, customers.DeleteByID(ctx, customer.ID))

	found, err := accounts.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Nil(t, found.CustomerID)
}
