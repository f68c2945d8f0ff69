package order

import (
	"context"
	"errors"

	domain "github.com/printguard/printguard-api/internal/domain/order"
	"github.com/printguard/printguard-api/internal/httperr"
	"github.com/printguard/printguard-api/internal/models"
	"github.com/printguard/printguard-api/internal/store"
	"github.com/printguard/printguard-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateOrderInput struct {
	ClientID     string
	PrinterID    string
	TechnicianID string

	Priority    string
	Description string

	// Texto pré-gerado pelo cliente de IA; armazenado tal qual
	Diagnosis string
	Solution  string
}

// ======================================================
// USE CASE
// ======================================================

type CreateOrder struct {
	repo domain.Repository
}

func NewCreateOrder(repo domain.Repository) *CreateOrder {
	return &CreateOrder{repo: repo}
}

func (uc *CreateOrder) Execute(
	ctx context.Context,
	in CreateOrderInput,
) (*models.ServiceOrder, error) {

	// --------------------------------------------------
	// Integridade referencial: cliente existe e a
	// impressora pertence a ele
	// --------------------------------------------------
	client, err := uc.repo.GetClientByID(ctx, in.ClientID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, httperr.ErrBusiness("client_not_found")
		}
		return nil, err
	}

	printer, err := uc.repo.GetPrinterByID(ctx, in.PrinterID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, httperr.ErrBusiness("printer_not_found")
		}
		return nil, err
	}

	if printer.ClientID != client.ID {
		return nil, httperr.ErrBusiness("printer_client_mismatch")
	}

	if in.TechnicianID != "" {
		if _, err := uc.repo.GetTechnicianByID(ctx, in.TechnicianID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, httperr.ErrBusiness("technician_not_found")
			}
			return nil, err
		}
	}

	// --------------------------------------------------
	// Prioridade (padrão: média)
	// --------------------------------------------------
	priority := models.PriorityMedium
	if in.Priority != "" {
		priority = models.Priority(in.Priority)
		if !priority.Valid() {
			return nil, httperr.ErrBusiness("invalid_priority")
		}
	}

	// --------------------------------------------------
	// Numeração sequencial por ano, derivada da coleção
	// vigente dentro da mesma seção crítica da inserção
	// --------------------------------------------------
	now := timezone.Now()

	o, err := uc.repo.CreateOrder(ctx, func(existing []models.ServiceOrder) models.ServiceOrder {
		return models.ServiceOrder{
			ID:           domain.NextID(existing, now.Year()),
			ClientID:     client.ID,
			PrinterID:    printer.ID,
			TechnicianID: in.TechnicianID,
			Status:       string(domain.InitialStatus()),
			Priority:     priority,
			Description:  in.Description,
			Diagnosis:    in.Diagnosis,
			Solution:     in.Solution,
			OpenedAt:     timezone.DateOf(now),
			PartsUsed:    []models.PartUsage{},
			TotalValue:   0,
		}
	})
	if err != nil {
		return nil, err
	}

	return &o, nil
}
