package kafka

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartUpdatedPayload struct {
	SessionID string `json:"session_id"`
	ItemCount int    `json:"item_count"`
}

func TestNewEvent(t *testing.T) {
	payload := cartUpdatedPayload{SessionID: "sess-1", ItemCount: 3}

	event, err := NewEvent("cart.updated", "sess-1", "cart", "storefront", payload)
	require.NoError(t, err)

	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, "cart.updated", event.EventType)
	assert.Equal(t, "sess-1", event.AggregateID)
	assert.Equal(t, "cart", event.AggregateType)
	assert.Equal(t, 1, event.Version)
	assert.False(t, event.Timestamp.IsZero())
}

func TestEvent_RoundTrip(t *testing.T) {
	event, err := NewEvent("checkout.completed", "sess-2", "checkout", "storefront",
		cartUpdatedPayload{SessionID: "sess-2", ItemCount: 1})
	require.NoError(t, err)
	event.WithCorrelationID("corr-9")

	data, err := event.Marshal()
	require.NoError(t, err)

	decoded, err := UnmarshalEvent(data)
	require.NoError(t, err)
	assert.Equal(t, event.EventID, decoded.EventID)
	assert.Equal(t, "corr-9", decoded.CorrelationID)

	var payload cartUpdatedPayload
	require.NoError(t, decoded.UnmarshalData(&payload))
	assert.Equal(t, "sess-2", payload.SessionID)
	assert.Equal(t, 1, payload.ItemCount)
}
