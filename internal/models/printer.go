package models

type ContractType string

const (
	ContractSingle      ContractType = "single"
	ContractMonthly     ContractType = "monthly"
	ContractCostPerPage ContractType = "cost_per_page"
)

func (t ContractType) Valid() bool {
	switch t {
	case ContractSingle, ContractMonthly, ContractCostPerPage:
		return true
	}
	return false
}

type Printer struct {
	ID       string `json:"id"`
	ClientID string `json:"clientId"`

	Brand        string `json:"brand"`
	Model        string `json:"model"`
	SerialNumber string `json:"serialNumber"`

	PageCounter         int          `json:"pageCounter"`
	LastMaintenanceDate string       `json:"lastMaintenanceDate"`
	ContractType        ContractType `json:"contractType"`
}
