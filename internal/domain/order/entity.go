package order

import "github.com/printguard/printguard-api/internal/models"

// ===============================
// Domain Actions
// ===============================

// ApplyStatus aplica a mudança de status de uma OS:
//   - o texto de resolução, quando informado, sobrescreve a solução anterior;
//   - closedAt é carimbado somente quando o novo status é Completed;
//   - uma data de conclusão anterior nunca é apagada por atualização
//     não-concluinte.
func ApplyStatus(o *models.ServiceOrder, newStatus Status, resolution string, closeDate string) {
	o.Status = string(newStatus)

	if resolution != "" {
		o.Solution = resolution
	}

	if newStatus == StatusCompleted {
		o.ClosedAt = closeDate
	}
}
