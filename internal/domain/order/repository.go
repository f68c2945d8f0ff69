package order

import (
	"context"

	"github.com/printguard/printguard-api/internal/models"
)

type Repository interface {
	// -------- Referências --------
	GetClientByID(
		ctx context.Context,
		id string,
	) (models.Client, error)

	GetPrinterByID(
		ctx context.Context,
		id string,
	) (models.Printer, error)

	GetTechnicianByID(
		ctx context.Context,
		id string,
	) (models.Technician, error)

	// -------- Ordens de serviço --------
	// CreateOrder executa o builder e insere o resultado dentro de uma
	// única seção crítica; o builder recebe a coleção vigente para
	// derivar a numeração sequencial sem corrida.
	CreateOrder(
		ctx context.Context,
		build func(existing []models.ServiceOrder) models.ServiceOrder,
	) (models.ServiceOrder, error)

	// ApplyOrder faz localizar-mutar-gravar sem soltar o lock no meio.
	ApplyOrder(
		ctx context.Context,
		id string,
		apply func(o *models.ServiceOrder),
	) (models.ServiceOrder, error)

	DeleteOrder(
		ctx context.Context,
		id string,
	) error
}
