package order

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/printguard/printguard-api/internal/models"
)

func TestNextIDStartsAtOne(t *testing.T) {
	id := NextID(nil, 2026)
	require.Equal(t, "OS-2026-001", id)
	require.Regexp(t, IDPattern, id)
}

func TestNextIDContinuesSequence(t *testing.T) {
	existing := []models.ServiceOrder{
		{ID: "OS-2026-002"},
		{ID: "OS-2026-017"},
		{ID: "OS-2026-001"},
	}
	require.Equal(t, "OS-2026-018", NextID(existing, 2026))
}

func TestNextIDIgnoresOtherYears(t *testing.T) {
	existing := []models.ServiceOrder{
		{ID: "OS-2024-120"},
		{ID: "OS-2025-004"},
	}
	// a sequência reinicia a cada ano
	require.Equal(t, "OS-2026-001", NextID(existing, 2026))
}

func TestNextIDSkipsMalformedIDs(t *testing.T) {
	existing := []models.ServiceOrder{
		{ID: "OS-2026-abc"},
		{ID: "avulso-99"},
		{ID: "OS-2026-003"},
	}
	require.Equal(t, "OS-2026-004", NextID(existing, 2026))
}

func TestNextIDGrowsPastThreeDigits(t *testing.T) {
	existing := []models.ServiceOrder{{ID: "OS-2026-999"}}
	id := NextID(existing, 2026)
	require.Equal(t, "OS-2026-1000", id)
	require.Regexp(t, IDPattern, id)
}
