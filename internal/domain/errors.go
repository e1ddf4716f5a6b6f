package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidAccountType = errors.New("invalid account type")
)

// NotFoundError carries the id a lookup failed for. It matches ErrNotFound
// under errors.Is.
type NotFoundError struct {
	Resource string
	ID       string
}

func NewAccountNotFound(id string) *NotFoundError {
	return &NotFoundError{Resource: "Account", ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func (e *NotFoundError) Extensions() map[string]any {
	return map[string]any{
		"code": "NOT_FOUND",
		"id":   e.ID,
	}
}
