package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/josh-kwaku/bank-service/internal/domain"
	"github.com/josh-kwaku/bank-service/internal/dto"
	"github.com/josh-kwaku/bank-service/internal/events"
	"github.com/josh-kwaku/bank-service/internal/logging"
)

type AccountService struct {
	accounts accountRepository
	events   eventPublisher

	// preserveCreatedAt keeps the stored creation time and customer link on
	// update. When false an update re-stamps CreatedAt and detaches the customer.
	preserveCreatedAt bool

	now   func() time.Time
	newID func() string
}

func NewAccountService(accounts accountRepository, publisher eventPublisher, preserveCreatedAt bool) *AccountService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &AccountService{
		accounts:          accounts,
		events:            publisher,
		preserveCreatedAt: preserveCreatedAt,
		now:               func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		newID:             uuid.NewString,
	}
}

func (s *AccountService) AddAccount(ctx context.Context, req dto.BankAccountRequest) (*dto.BankAccountResponse, error) {
	account := domain.NewBankAccount(domain.BankAccountParams{
		ID:        s.newID(),
		CreatedAt: s.now(),
		Balance:   req.Balance,
		Currency:  req.Currency,
		Type:      req.Type,
	})

	saved, err := s.accounts.Save(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("AddAccount: %w", err)
	}

	resp := dto.FromBankAccount(saved)
	logging.FromContext(ctx).Info("account created",
		"account_id", resp.ID,
		"type", resp.Type,
		"currency", resp.Currency,
	)
	s.publish(ctx, events.AccountCreated, events.AccountSavedEvent{Account: resp})

	return &resp, nil
}

// UpdateAccount replaces the mutable fields of the account with the given id.
// It does not require the account to exist: an unknown id is saved as a new
// account.
func (s *AccountService) UpdateAccount(ctx context.Context, id string, req dto.BankAccountRequest) (*dto.BankAccountResponse, error) {
	log := logging.FromContext(ctx)

	params := domain.BankAccountParams{
		ID:        id,
		CreatedAt: s.now(),
		Balance:   req.Balance,
		Currency:  req.Currency,
		Type:      req.Type,
	}

	if s.preserveCreatedAt {
		existing, err := s.accounts.FindByID(ctx, id)
		switch {
		case err == nil:
			params.CreatedAt = existing.CreatedAt
			params.CustomerID = existing.CustomerID
		case errors.Is(err, domain.ErrNotFound):
			log.Debug("updating unknown account, creating it", "account_id", id)
		default:
			return nil, fmt.Errorf("UpdateAccount: load existing: %w", err)
		}
	} else {
		log.Debug("account update re-stamps created_at", "account_id", id)
	}

	saved, err := s.accounts.Save(ctx, domain.NewBankAccount(params))
	if err != nil {
		return nil, fmt.Errorf("UpdateAccount: %w", err)
	}

	resp := dto.FromBankAccount(saved)
	log.Info("account updated",
		"account_id", resp.ID,
		"type", resp.Type,
		"currency", resp.Currency,
	)
	s.publish(ctx, events.AccountUpdated, events.AccountSavedEvent{Account: resp})

	return &resp, nil
}

// DeleteAccount succeeds whether or not the account exists.
func (s *AccountService) DeleteAccount(ctx context.Context, id string) error {
	if err := s.accounts.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("DeleteAccount: %w", err)
	}

	logging.FromContext(ctx).Info("account deleted", "account_id", id)
	s.publish(ctx, events.AccountDeleted, events.AccountDeletedEvent{AccountID: id})
	return nil
}

func (s *AccountService) publish(ctx context.Context, eventType string, data any) {
	if err := s.events.Publish(ctx, events.AccountEventsStream, eventType, data); err != nil {
		logging.FromContext(ctx).Warn("failed to publish account event",
			"event_type", eventType,
			"error", err,
		)
	}
}
