package domain

import "time"

// SaleFilter combina os filtros opcionais da listagem de vendas com AND.
// Campo ausente significa "sem filtro" naquela dimensão.
type SaleFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	StoreID   string
	Item      string
}

// ReportView define a estratégia de agregação da listagem
type ReportView string

const (
	ViewDetailed ReportView = "detailed"
	ViewMonthly  ReportView = "monthly"
	ViewItems    ReportView = "items"
)

// IsValid indica se a visão é suportada
func (v ReportView) IsValid() bool {
	switch v {
	case ViewDetailed, ViewMonthly, ViewItems:
		return true
	}
	return false
}

type PageRequest struct {
	Page     int
	PageSize int
}

type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// SalesPage é a resposta da visão detalhada
type SalesPage struct {
	Data       []SaleWithStore `json:"data"`
	Pagination Pagination      `json:"pagination"`
}
