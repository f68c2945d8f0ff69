package order

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/printguard/printguard-api/internal/models"
)

func TestApplyStatusStampsClosedAtOnCompletion(t *testing.T) {
	o := models.ServiceOrder{ID: "OS-2026-001", Status: string(StatusInProgress)}

	ApplyStatus(&o, StatusCompleted, "Troca do fusor.", "2026-08-30")

	require.Equal(t, string(StatusCompleted), o.Status)
	require.Equal(t, "Troca do fusor.", o.Solution)
	require.Equal(t, "2026-08-30", o.ClosedAt)
}

func TestApplyStatusKeepsPriorClosedAt(t *testing.T) {
	o := models.ServiceOrder{
		ID:       "OS-2026-001",
		Status:   string(StatusCompleted),
		ClosedAt: "2026-07-01",
	}

	// atualização não-concluinte nunca apaga uma conclusão anterior
	ApplyStatus(&o, StatusInProgress, "", "2026-08-30")

	require.Equal(t, string(StatusInProgress), o.Status)
	require.Equal(t, "2026-07-01", o.ClosedAt)
}

func TestApplyStatusRetainsSolutionWithoutResolution(t *testing.T) {
	o := models.ServiceOrder{
		ID:       "OS-2026-001",
		Status:   string(StatusPending),
		Solution: "Limpeza dos roletes.",
	}

	ApplyStatus(&o, StatusWaitingParts, "", "2026-08-30")
	require.Equal(t, "Limpeza dos roletes.", o.Solution)

	ApplyStatus(&o, StatusInProgress, "Peça substituída.", "2026-08-30")
	require.Equal(t, "Peça substituída.", o.Solution)
}
