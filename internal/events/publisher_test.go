package events_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josh-kwaku/bank-service/internal/events"
	"github.com/josh-kwaku/bank-service/internal/testutil"
)

func TestPublisher_AppendsToStream(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	pub := events.NewPublisher(client, 1000)
	ctx := context.Background()

	err := pub.Publish(ctx, events.AccountEventsStream, events.AccountDeleted,
		events.AccountDeletedEvent{AccountID: "acc-1"})
	require.NoError(t, err)

	msgs, err := client.XRange(ctx, events.AccountEventsStream, "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, msgs, 1)

	raw, ok := msgs[0].Values["event"].(string)
	require.True(t, ok)

	var got struct {
		Type string                     `json:"type"`
		Data events.AccountDeletedEvent `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &got))
	assert.Equal(t, events.AccountDeleted, got.Type)
	assert.Equal(t, "acc-1", got.Data.AccountID)
}

func TestNopPublisher(t *testing.T) {
	var p events.NopPublisher
	assert.NoError(t, p.Publish(context.Background(), events.AccountEventsStream, events.AccountCreated, nil))
}
