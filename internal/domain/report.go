package domain

// MonthlyBucket agrega as vendas de um mês (chave YYYY-MM)
type MonthlyBucket struct {
	Month   string  `json:"month"`
	Count   int     `json:"count"`
	Items   int     `json:"items"`
	Revenue float64 `json:"revenue"`
}

// ProductSummary agrega as vendas de um item pelo nome exato
type ProductSummary struct {
	Item     string  `json:"item"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// StoreSummary é o desempenho de uma loja como exibido no dashboard
type StoreSummary struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Sales   int     `json:"sales"`
	Revenue float64 `json:"revenue"`
}

type Summary struct {
	TotalStores  int     `json:"totalStores"`
	TotalSales   int     `json:"totalSales"`
	TotalItems   int     `json:"totalItems"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// DashboardReport é a resposta do endpoint de relatório
type DashboardReport struct {
	Summary          Summary          `json:"summary"`
	Stores           []StoreListItem  `json:"stores"`
	TimeSeries       []MonthlyBucket  `json:"timeSeries"`
	Products         []ProductSummary `json:"products"`
	StorePerformance []StoreSummary   `json:"storePerformance"`
}

// StoreReport é o resumo exibido na página de detalhes da loja
type StoreReport struct {
	Store       *Store           `json:"store"`
	Summary     Summary          `json:"summary"`
	Months      []MonthlyBucket  `json:"months"` // Mais recentes primeiro
	TopProducts []ProductSummary `json:"top_products"`
}

// Linhas retornadas pelas funções de agregação do banco

type MonthlyStats struct {
	Month        string  `json:"month"`
	TotalSales   int     `json:"total_sales"`
	TotalRevenue float64 `json:"total_revenue"`
}

type ItemStats struct {
	ItemName      string  `json:"item_name"`
	TotalQuantity int     `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
}

type StorePerformance struct {
	StoreID       string  `json:"store_id"`
	StoreName     string  `json:"store_name"`
	TotalQuantity int     `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// SalesOverview alimenta a página de vendas: cartões mensais e tabela paginada
type SalesOverview struct {
	Months []MonthlyBucket `json:"months"` // Mais recentes primeiro
	Sales  SalesPage       `json:"sales"`
}
