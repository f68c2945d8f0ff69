package store

import "github.com/printguard/printguard-api/internal/models"

// Conjuntos padrão gravados na primeira inicialização, para o sistema ser
// utilizável antes de qualquer cadastro.

func seedClients() []models.Client {
	return []models.Client{
		{ID: "1", Name: "Escritório Silva & Associados", Document: "12.345.678/0001-90", Address: "Av. Paulista, 1000", Contact: "Roberto"},
		{ID: "2", Name: "Hospital Central", Document: "98.765.432/0001-10", Address: "Rua da Saúde, 500", Contact: "Dra. Ana"},
		{ID: "3", Name: "Tech Solutions Ltda", Document: "11.222.333/0001-44", Address: "Rua Inovação, 202", Contact: "Carlos"},
	}
}

func seedPrinters() []models.Printer {
	return []models.Printer{
		{ID: "1", ClientID: "1", Brand: "HP", Model: "LaserJet Pro M404", SerialNumber: "VNC34221", PageCounter: 45000, LastMaintenanceDate: "2023-10-15", ContractType: models.ContractMonthly},
		{ID: "2", ClientID: "2", Brand: "Brother", Model: "DCP-L2540", SerialNumber: "BR998877", PageCounter: 125000, LastMaintenanceDate: "2023-11-20", ContractType: models.ContractCostPerPage},
		{ID: "3", ClientID: "1", Brand: "Epson", Model: "EcoTank L3150", SerialNumber: "X5T9921", PageCounter: 12000, LastMaintenanceDate: "2024-01-10", ContractType: models.ContractSingle},
		{ID: "4", ClientID: "3", Brand: "Ricoh", Model: "MP 3055", SerialNumber: "RC554433", PageCounter: 250000, LastMaintenanceDate: "2023-12-05", ContractType: models.ContractMonthly},
	}
}

func seedParts() []models.Part {
	return []models.Part{
		{ID: "1", Name: "Fusor HP M404", SKU: "RM2-2233", Quantity: 2, MinQuantity: 3, Cost: 450, Price: 850},
		{ID: "2", Name: "Kit Roletes Brother", SKU: "LY2211", Quantity: 15, MinQuantity: 5, Cost: 45, Price: 120},
		{ID: "3", Name: "Toner Preto Genérico", SKU: "TN-GEN-01", Quantity: 50, MinQuantity: 10, Cost: 35, Price: 90},
		{ID: "4", Name: "Placa Lógica Epson", SKU: "EP-MB-33", Quantity: 0, MinQuantity: 2, Cost: 300, Price: 600},
	}
}

func seedTechnicians() []models.Technician {
	return []models.Technician{
		{ID: "1", Name: "João Técnico", Specialty: "Laser e Grandes Formatos", Active: true},
		{ID: "2", Name: "Maria Manutenção", Specialty: "Jato de Tinta e Scanners", Active: true},
	}
}

func seedOrders() []models.ServiceOrder {
	return []models.ServiceOrder{
		{
			ID:           "OS-2024-001",
			ClientID:     "1",
			PrinterID:    "1",
			TechnicianID: "1",
			Status:       "completed",
			Priority:     models.PriorityMedium,
			Description:  "Manchas pretas na lateral da folha.",
			Diagnosis:    "Cilindro do toner danificado.",
			Solution:     "Troca do cartucho de toner e limpeza interna.",
			OpenedAt:     "2024-05-01",
			ClosedAt:     "2024-05-02",
			PartsUsed:    []models.PartUsage{{PartID: "3", Quantity: 1}},
			TotalValue:   250,
		},
		{
			ID:           "OS-2024-002",
			ClientID:     "2",
			PrinterID:    "2",
			TechnicianID: "2",
			Status:       "in_progress",
			Priority:     models.PriorityHigh,
			Description:  "Atolamento de papel constante na gaveta 1.",
			OpenedAt:     "2024-05-10",
			PartsUsed:    []models.PartUsage{},
		},
		{
			ID:          "OS-2024-003",
			ClientID:    "3",
			PrinterID:   "4",
			Status:      "pending",
			Priority:    models.PriorityCritical,
			Description: "Erro SC542 no painel. Não imprime.",
			OpenedAt:    "2024-05-12",
			PartsUsed:   []models.PartUsage{},
		},
		{
			ID:          "OS-2024-004",
			ClientID:    "1",
			PrinterID:   "3",
			Status:      "waiting_parts",
			Priority:    models.PriorityLow,
			Description: "Cabeça de impressão falhando cor magenta.",
			OpenedAt:    "2024-05-08",
			PartsUsed:   []models.PartUsage{},
		},
	}
}
