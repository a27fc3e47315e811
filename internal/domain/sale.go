package domain

import "time"

type Sale struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"store_id"`
	ItemName  string    `json:"item_name"`
	Month     time.Time `json:"month"` // Sempre o primeiro dia do mês
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

// Total retorna quantidade × preço unitário
func (s Sale) Total() float64 {
	return float64(s.Quantity) * s.Price
}

// SaleWithStore é a venda acompanhada da loja dona
type SaleWithStore struct {
	Sale
	Store StoreRef `json:"stores"`
}

// SaleLineItem é uma linha do formulário de lançamento de vendas
type SaleLineItem struct {
	ItemName string  `json:"item_name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Total retorna o valor da linha
func (l SaleLineItem) Total() float64 {
	return float64(l.Quantity) * l.Price
}

// SaleBatchRequest é o lançamento de várias vendas de uma loja em um mês
type SaleBatchRequest struct {
	StoreID string         `json:"store_id"`
	Month   string         `json:"month"` // YYYY-MM
	Items   []SaleLineItem `json:"items"`
}

// Total retorna a soma das linhas do lote
func (b SaleBatchRequest) Total() float64 {
	total := 0.0
	for _, item := range b.Items {
		total += item.Total()
	}
	return total
}

// UpdateSaleRequest só altera os campos informados
type UpdateSaleRequest struct {
	ID       string   `json:"-"`
	StoreID  *string  `json:"store_id"`
	ItemName *string  `json:"item_name"`
	Month    *string  `json:"month"` // YYYY-MM ou YYYY-MM-DD
	Quantity *int     `json:"quantity"`
	Price    *float64 `json:"price"`
}
