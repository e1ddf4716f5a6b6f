package service

import (
	"context"

	"github.com/josh-kwaku/bank-service/internal/domain"
)

type accountRepository interface {
	FindByID(ctx context.Context, id string) (*domain.BankAccount, error)
	Save(ctx context.Context, account *domain.BankAccount) (*domain.BankAccount, error)
	DeleteByID(ctx context.Context, id string) error
}

type eventPublisher interface {
	Publish(ctx context.Context, stream, eventType string, data any) error
}
