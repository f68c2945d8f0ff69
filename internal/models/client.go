package models

// Cliente corporativo dono das impressoras atendidas
type Client struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Document string `json:"document"` // CNPJ/CPF
	Address  string `json:"address"`
	Contact  string `json:"contact"`
}
