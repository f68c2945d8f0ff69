package inventory

import "github.com/printguard/printguard-api/internal/models"

// ===============================
// Stock Level
// ===============================

type StockLevel string

const (
	LevelOutOfStock StockLevel = "out_of_stock"
	LevelLow        StockLevel = "low"
	LevelNormal     StockLevel = "normal"
)

// Classify deriva a situação do estoque na leitura; nada é armazenado.
func Classify(p models.Part) StockLevel {
	switch {
	case p.Quantity == 0:
		return LevelOutOfStock
	case p.Quantity <= p.MinQuantity:
		return LevelLow
	default:
		return LevelNormal
	}
}

// IsCritical indica item no limiar ou abaixo dele (inclui zerados)
func IsCritical(p models.Part) bool {
	return p.Quantity <= p.MinQuantity
}

func CountCritical(parts []models.Part) int {
	count := 0
	for _, p := range parts {
		if IsCritical(p) {
			count++
		}
	}
	return count
}

// StockCostValue soma custo x quantidade de todo o estoque
func StockCostValue(parts []models.Part) float64 {
	total := 0.0
	for _, p := range parts {
		total += p.Cost * float64(p.Quantity)
	}
	return total
}
