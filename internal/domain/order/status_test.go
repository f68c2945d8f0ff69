package order

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/printguard/printguard-api/internal/httperr"
)

func TestInitialStatus(t *testing.T) {
	require.Equal(t, StatusPending, InitialStatus())
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name     string
		from     Status
		to       Status
		wantCode string
	}{
		{name: "pending to in_progress", from: StatusPending, to: StatusInProgress},
		{name: "pending to waiting_parts", from: StatusPending, to: StatusWaitingParts},
		{name: "pending to completed", from: StatusPending, to: StatusCompleted},
		{name: "pending to canceled", from: StatusPending, to: StatusCanceled},
		{name: "in_progress to waiting_parts", from: StatusInProgress, to: StatusWaitingParts},
		{name: "in_progress to completed", from: StatusInProgress, to: StatusCompleted},
		{name: "waiting_parts back to in_progress", from: StatusWaitingParts, to: StatusInProgress},
		{name: "waiting_parts to canceled", from: StatusWaitingParts, to: StatusCanceled},

		{name: "in_progress back to pending", from: StatusInProgress, to: StatusPending, wantCode: "invalid_transition"},
		{name: "waiting_parts back to pending", from: StatusWaitingParts, to: StatusPending, wantCode: "invalid_transition"},
		{name: "completed is terminal", from: StatusCompleted, to: StatusInProgress, wantCode: "order_already_closed"},
		{name: "canceled is terminal", from: StatusCanceled, to: StatusPending, wantCode: "order_already_closed"},
		{name: "unknown target status", from: StatusPending, to: Status("archived"), wantCode: "invalid_status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanTransition(tt.from, tt.to)
			if tt.wantCode == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.True(t, httperr.IsBusiness(err, tt.wantCode), "expected code %s, got %v", tt.wantCode, err)
		})
	}
}

func TestIsTerminal(t *testing.T) {
	require.True(t, IsTerminal(StatusCompleted))
	require.True(t, IsTerminal(StatusCanceled))
	require.False(t, IsTerminal(StatusPending))
	require.False(t, IsTerminal(StatusInProgress))
	require.False(t, IsTerminal(StatusWaitingParts))
}
