package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanscope/loanscope/pkg/events"
)

func TestNewBaseEvent(t *testing.T) {
	before := time.Now().UTC()
	event := events.NewBaseEvent("analysis.completed", "req-1", "LoanAnalysis")

	assert.NotEqual(t, uuid.Nil, event.EventID())
	assert.Equal(t, "analysis.completed", event.EventType())
	assert.Equal(t, "req-1", event.AggregateID())
	assert.Equal(t, "LoanAnalysis", event.AggregateType())
	assert.False(t, event.OccurredAt().Before(before))
	assert.False(t, event.OccurredAt().After(time.Now().UTC()))
}

func TestBaseEvent_JSON(t *testing.T) {
	event := events.NewBaseEvent("analysis.completed", "req-1", "LoanAnalysis")

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(payload, &fields))
	assert.Equal(t, event.EventID().String(), fields["event_id"])
	assert.Equal(t, "analysis.completed", fields["event_type"])
	assert.Equal(t, "req-1", fields["aggregate_id"])
	assert.Equal(t, "LoanAnalysis", fields["aggregate_type"])
	assert.Contains(t, fields, "occurred_at")
}
