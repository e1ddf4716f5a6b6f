package events

import (
	"context"
	"time"

	"github.com/josh-kwaku/bank-service/internal/dto"
)

const (
	AccountCreated = "account.created"
	AccountUpdated = "account.updated"
	AccountDeleted = "account.deleted"
)

const AccountEventsStream = "account.events"

type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

type AccountSavedEvent struct {
	Account dto.BankAccountResponse `json:"account"`
}

type AccountDeletedEvent struct {
	AccountID string `json:"accountId"`
}

// NopPublisher drops every event. It is used when no Redis address is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, string, any) error { return nil }
