package order

import (
	"context"

	domain "github.com/printguard/printguard-api/internal/domain/order"
	"github.com/printguard/printguard-api/internal/httperr"
	"github.com/printguard/printguard-api/internal/models"
	"github.com/printguard/printguard-api/internal/timezone"
)

type UpdateOrderStatus struct {
	repo domain.Repository
}

func NewUpdateOrderStatus(repo domain.Repository) *UpdateOrderStatus {
	return &UpdateOrderStatus{repo: repo}
}

// Execute aplica o novo status à OS. Id desconhecido devolve
// store.ErrNotFound; esta camada não barra transições a partir de status
// terminais — esse guarda fica com o chamador (domain.CanTransition).
func (uc *UpdateOrderStatus) Execute(
	ctx context.Context,
	id string,
	newStatus domain.Status,
	resolution string,
) (*models.ServiceOrder, error) {

	if !domain.IsValid(newStatus) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	o, err := uc.repo.ApplyOrder(ctx, id, func(o *models.ServiceOrder) {
		domain.ApplyStatus(o, newStatus, resolution, timezone.Today())
	})
	if err != nil {
		return nil, err
	}

	return &o, nil
}
