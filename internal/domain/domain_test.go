package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountTypeIsValid(t *testing.T) {
	tests := []struct {
		in   AccountType
		want bool
	}{
		{AccountTypeCurrent, true},
		{AccountTypeSaving, true},
		{AccountType("current_account"), false},
		{AccountType(""), false},
	}
	for _, tc := range tests {
		t.Run(string(tc.in), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.IsValid())
		})
	}
}

func TestNotFoundError(t *testing.T) {
	err := fmt.Errorf("GetAccount: %w", NewAccountNotFound("abc"))

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.EqualError(t, err, "GetAccount: Account abc not found")

	var nf *NotFoundError
	if assert.True(t, errors.As(err, &nf)) {
		assert.Equal(t, "abc", nf.ID)
		assert.Equal(t, map[string]any{"code": "NOT_FOUND", "id": "abc"}, nf.Extensions())
	}
}
