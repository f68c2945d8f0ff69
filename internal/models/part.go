package models

// Part é um item de estoque. MinQuantity é o limiar abaixo do qual o item
// conta como estoque crítico.
type Part struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	SKU         string  `json:"sku"`
	Quantity    int     `json:"quantity"`
	MinQuantity int     `json:"minQuantity"`
	Cost        float64 `json:"cost"`
	Price       float64 `json:"price"`
}
