package models

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

type PartUsage struct {
	PartID   string `json:"partId"`
	Quantity int    `json:"quantity"`
}

// ServiceOrder é uma OS de manutenção de impressora. Diagnosis e Solution
// podem vir do cliente de IA e são armazenados como texto livre, nunca
// interpretados.
type ServiceOrder struct {
	ID           string `json:"id"`
	ClientID     string `json:"clientId"`
	PrinterID    string `json:"printerId"`
	TechnicianID string `json:"technicianId,omitempty"`

	Status   string   `json:"status"`
	Priority Priority `json:"priority"`

	Description string `json:"description"`
	Diagnosis   string `json:"diagnosis,omitempty"`
	Solution    string `json:"solution,omitempty"`

	OpenedAt string `json:"openedAt"`
	ClosedAt string `json:"closedAt,omitempty"`

	PartsUsed  []PartUsage `json:"partsUsed"`
	TotalValue float64     `json:"totalValue"`
}
