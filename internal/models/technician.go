package models

// Técnicos são dados de referência fixos, sem operações de escrita
type Technician struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Active    bool   `json:"active"`
}
