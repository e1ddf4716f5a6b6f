package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josh-kwaku/bank-service/internal/domain"
	"github.com/josh-kwaku/bank-service/internal/dto"
	"github.com/josh-kwaku/bank-service/internal/events"
)

type fakeAccountRepo struct {
	accounts map[string]domain.BankAccount
	saveErr  error
	findErr  error
	saves    int
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]domain.BankAccount{}}
}

func (f *fakeAccountRepo) FindByID(_ context.Context, id string) (*domain.BankAccount, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	a, ok := f.accounts[id]
	if !ok {
		return nil, fmt.Errorf("FindByID: %w", domain.ErrNotFound)
	}
	return &a, nil
}

func (f *fakeAccountRepo) Save(_ context.Context, account *domain.BankAccount) (*domain.BankAccount, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.saves++
	f.accounts[account.ID] = *account
	saved := *account
	return &saved, nil
}

func (f *fakeAccountRepo) DeleteByID(_ context.Context, id string) error {
	delete(f.accounts, id)
	return nil
}

type publishedEvent struct {
	stream    string
	eventType string
	data      any
}

type fakePublisher struct {
	published []publishedEvent
	err       error
}

func (f *fakePublisher) Publish(_ context.Context, stream, eventType string, data any) error {
	f.published = append(f.published, publishedEvent{stream, eventType, data})
	return f.err
}

var (
	createdAt = time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	updatedAt = time.Date(2026, 2, 20, 17, 30, 0, 0, time.UTC)
)

func newTestService(repo *fakeAccountRepo, pub *fakePublisher, preserve bool) *AccountService {
	svc := NewAccountService(repo, pub, preserve)
	svc.now = func() time.Time { return createdAt }
	return svc
}

func TestAddAccount(t *testing.T) {
	repo := newFakeAccountRepo()
	pub := &fakePublisher{}
	svc := NewAccountService(repo, pub, false)
	ctx := context.Background()

	req := dto.BankAccountRequest{Balance: 1000, Type: domain.AccountTypeCurrent, Currency: "MAD"}

	first, err := svc.AddAccount(ctx, req)
	require.NoError(t, err)
	second, err := svc.AddAccount(ctx, req)
	require.NoError(t, err)

	for _, resp := range []*dto.BankAccountResponse{first, second} {
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, 1000.0, resp.Balance)
		assert.Equal(t, domain.AccountTypeCurrent, resp.Type)
		assert.Equal(t, "MAD", resp.Currency)
		assert.False(t, resp.CreatedAt.IsZero())
	}
	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, repo.accounts, 2)

	require.Len(t, pub.published, 2)
	assert.Equal(t, events.AccountEventsStream, pub.published[0].stream)
	assert.Equal(t, events.AccountCreated, pub.published[0].eventType)
	assert.Equal(t, events.AccountSavedEvent{Account: *first}, pub.published[0].data)
}

func TestAddAccount_StoreFailure(t *testing.T) {
	repo := newFakeAccountRepo()
	repo.saveErr = errors.New("connection refused")
	pub := &fakePublisher{}
	svc := NewAccountService(repo, pub, false)

	_, err := svc.AddAccount(context.Background(), dto.BankAccountRequest{Type: domain.AccountTypeSaving})
	require.Error(t, err)
	assert.ErrorIs(t, err, repo.saveErr)
	assert.Empty(t, pub.published)
}

func TestAddAccount_PublishFailureDoesNotFail(t *testing.T) {
	repo := newFakeAccountRepo()
	pub := &fakePublisher{err: errors.New("redis down")}
	svc := NewAccountService(repo, pub, false)

	resp, err := svc.AddAccount(context.Background(), dto.BankAccountRequest{Type: domain.AccountTypeSaving, Currency: "MAD"})
	require.NoError(t, err)
	assert.Contains(t, repo.accounts, resp.ID)
}

func TestUpdateAccount(t *testing.T) {
	customerID := int64(3)
	req := dto.BankAccountRequest{Balance: 2000, Type: domain.AccountTypeSaving, Currency: "MAD"}

	tests := []struct {
		name          string
		preserve      bool
		wantCreatedAt time.Time
		wantCustomer  *int64
	}{
		{
			name:          "re-stamps created_at and drops the customer link",
			preserve:      false,
			wantCreatedAt: updatedAt,
			wantCustomer:  nil,
		},
		{
			name:          "preserves created_at and the customer link",
			preserve:      true,
			wantCreatedAt: createdAt,
			wantCustomer:  &customerID,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeAccountRepo()
			repo.accounts["acc-1"] = domain.BankAccount{
				ID:         "acc-1",
				CreatedAt:  createdAt,
				Balance:    1000,
				Currency:   "MAD",
				Type:       domain.AccountTypeCurrent,
				CustomerID: &customerID,
			}
			pub := &fakePublisher{}
			svc := newTestService(repo, pub, tc.preserve)
			svc.now = func() time.Time { return updatedAt }

			resp, err := svc.UpdateAccount(context.Background(), "acc-1", req)
			require.NoError(t, err)

			assert.Equal(t, "acc-1", resp.ID)
			assert.Equal(t, 2000.0, resp.Balance)
			assert.Equal(t, domain.AccountTypeSaving, resp.Type)
			assert.Equal(t, "MAD", resp.Currency)
			assert.Equal(t, tc.wantCreatedAt, resp.CreatedAt)
			assert.Equal(t, tc.wantCustomer, repo.accounts["acc-1"].CustomerID)

			require.Len(t, pub.published, 1)
			assert.Equal(t, events.AccountUpdated, pub.published[0].eventType)
		})
	}
}

func TestUpdateAccount_UnknownIDCreates(t *testing.T) {
	for _, preserve := range []bool{false, true} {
		t.Run(fmt.Sprintf("preserve=%v", preserve), func(t *testing.T) {
			repo := newFakeAccountRepo()
			svc := newTestService(repo, &fakePublisher{}, preserve)

			resp, err := svc.UpdateAccount(context.Background(), "missing", dto.BankAccountRequest{
				Balance: 10, Type: domain.AccountTypeCurrent, Currency: "EUR",
			})
			require.NoError(t, err)
			assert.Equal(t, "missing", resp.ID)
			assert.Equal(t, createdAt, resp.CreatedAt)
			assert.Contains(t, repo.accounts, "missing")
		})
	}
}

func TestUpdateAccount_LookupFailure(t *testing.T) {
	repo := newFakeAccountRepo()
	repo.findErr = errors.New("timeout")
	svc := newTestService(repo, &fakePublisher{}, true)

	_, err := svc.UpdateAccount(context.Background(), "acc-1", dto.BankAccountRequest{})
	require.ErrorIs(t, err, repo.findErr)
	assert.Zero(t, repo.saves)
}

func TestDeleteAccount(t *testing.T) {
	repo := newFakeAccountRepo()
	repo.accounts["acc-1"] = domain.BankAccount{ID: "acc-1"}
	pub := &fakePublisher{}
	svc := newTestService(repo, pub, false)
	ctx := context.Background()

	require.NoError(t, svc.DeleteAccount(ctx, "acc-1"))
	require.NoError(t, svc.DeleteAccount(ctx, "acc-1"))
	assert.Empty(t, repo.accounts)

	require.Len(t, pub.published, 2)
	assert.Equal(t, events.AccountDeleted, pub.published[0].eventType)
	assert.Equal(t, events.AccountDeletedEvent{AccountID: "acc-1"}, pub.published[0].data)
}
