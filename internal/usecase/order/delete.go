package order

import (
	"context"

	domain "github.com/printguard/printguard-api/internal/domain/order"
)

type DeleteOrder struct {
	repo domain.Repository
}

func NewDeleteOrder(repo domain.Repository) *DeleteOrder {
	return &DeleteOrder{repo: repo}
}

// Execute remove a OS em definitivo. Id desconhecido devolve
// store.ErrNotFound em vez de no-op silencioso.
func (uc *DeleteOrder) Execute(ctx context.Context, id string) error {
	return uc.repo.DeleteOrder(ctx, id)
}
