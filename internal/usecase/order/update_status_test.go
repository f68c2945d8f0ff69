package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	domain "github.com/printguard/printguard-api/internal/domain/order"
	"github.com/printguard/printguard-api/internal/httperr"
	"github.com/printguard/printguard-api/internal/store"
	"github.com/printguard/printguard-api/internal/timezone"
)

func TestUpdateStatusCompletedStampsClosedAt(t *testing.T) {
	repo := newTestRepo(t)
	uc := NewUpdateOrderStatus(repo)
	ctx := context.Background()

	o, err := uc.Execute(ctx, "OS-2024-002", domain.StatusCompleted, "Rolete trocado.")
	require.NoError(t, err)
	require.Equal(t, string(domain.StatusCompleted), o.Status)
	require.Equal(t, timezone.Today(), o.ClosedAt)
	require.Equal(t, "Rolete trocado.", o.Solution)

	// a mudança persiste na coleção
	stored, err := repo.GetOrderByID(ctx, "OS-2024-002")
	require.NoError(t, err)
	require.Equal(t, timezone.Today(), stored.ClosedAt)
}

func TestUpdateStatusNonCompletingKeepsClosedAt(t *testing.T) {
	repo := newTestRepo(t)
	uc := NewUpdateOrderStatus(repo)
	ctx := context.Background()

	// OS-2024-001 foi concluída em 2024-05-02; o workflow em si não barra
	// reaberturas, e a data de conclusão anterior é preservada
	o, err := uc.Execute(ctx, "OS-2024-001", domain.StatusInProgress, "")
	require.NoError(t, err)
	require.Equal(t, string(domain.StatusInProgress), o.Status)
	require.Equal(t, "2024-05-02", o.ClosedAt)
	require.Equal(t, "Troca do cartucho de toner e limpeza interna.", o.Solution)
}

func TestUpdateStatusWithoutResolutionKeepsSolution(t *testing.T) {
	repo := newTestRepo(t)
	uc := NewUpdateOrderStatus(repo)

	o, err := uc.Execute(context.Background(), "OS-2024-002", domain.StatusWaitingParts, "")
	require.NoError(t, err)
	require.Empty(t, o.Solution)
	require.Empty(t, o.ClosedAt)
}

func TestUpdateStatusUnknownID(t *testing.T) {
	repo := newTestRepo(t)
	uc := NewUpdateOrderStatus(repo)

	_, err := uc.Execute(context.Background(), "OS-1999-001", domain.StatusCanceled, "")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	repo := newTestRepo(t)
	uc := NewUpdateOrderStatus(repo)

	_, err := uc.Execute(context.Background(), "OS-2024-002", domain.Status("archived"), "")
	require.Error(t, err)
	require.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestDeleteOrderUseCase(t *testing.T) {
	repo := newTestRepo(t)
	uc := NewDeleteOrder(repo)
	ctx := context.Background()

	require.NoError(t, uc.Execute(ctx, "OS-2024-004"))

	_, err := repo.GetOrderByID(ctx, "OS-2024-004")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, uc.Execute(ctx, "OS-2024-004"), store.ErrNotFound)
}
