package reporting

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-sales-api/internal/domain"
)

func TestNewSaleFilter(t *testing.T) {
	tests := []struct {
		name      string
		storeID   string
		item      string
		startDate string
		endDate   string
		wantErr   bool
		field     string
	}{
		{name: "Sem filtros"},
		{name: "Datas completas", startDate: "2024-01-01", endDate: "2024-03-31"},
		{name: "Datas por mês", startDate: "2024-01", endDate: "2024-03"},
		{name: "Data inicial inválida", startDate: "01/2024", wantErr: true, field: "startDate"},
		{name: "Data final inválida", endDate: "ontem", wantErr: true, field: "endDate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := NewSaleFilter(tt.storeID, tt.item, tt.startDate, tt.endDate)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidFilter)

				var reportErr *ReportError
				require.ErrorAs(t, err, &reportErr)
				assert.Equal(t, tt.field, reportErr.Field)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.startDate == "", filter.StartDate == nil)
			assert.Equal(t, tt.endDate == "", filter.EndDate == nil)
		})
	}
}

func TestFilterSales(t *testing.T) {
	sales := []*domain.SaleWithStore{
		newSale("s1", "Camisa Polo", date(2024, 1, 1), 1, 10),
		newSale("s2", "Calça", date(2024, 2, 1), 1, 10),
		newSale("s1", "camiseta", date(2024, 3, 1), 1, 10),
	}

	start := date(2024, 2, 1)
	end := date(2024, 2, 29)

	tests := []struct {
		name     string
		filter   domain.SaleFilter
		expected []string
	}{
		{name: "Sem filtros", filter: domain.SaleFilter{}, expected: []string{"Camisa Polo", "Calça", "camiseta"}},
		{name: "Por loja", filter: domain.SaleFilter{StoreID: "s1"}, expected: []string{"Camisa Polo", "camiseta"}},
		{name: "Item sem diferenciar maiúsculas", filter: domain.SaleFilter{Item: "CAMIS"}, expected: []string{"Camisa Polo", "camiseta"}},
		{name: "Intervalo inclusivo", filter: domain.SaleFilter{StartDate: &start, EndDate: &end}, expected: []string{"Calça"}},
		{name: "Combinação com AND", filter: domain.SaleFilter{StoreID: "s1", StartDate: &start}, expected: []string{"camiseta"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names := make([]string, 0)
			for _, sale := range FilterSales(sales, tt.filter) {
				names = append(names, sale.ItemName)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestFilterSales_PorLojaIdempotente(t *testing.T) {
	r := rand.New(rand.NewSource(5<<32 | 9))
	sales := randomSales(r, 100)
	filter := domain.SaleFilter{StoreID: "s2"}

	once := FilterSales(sales, filter)
	for _, sale := range once {
		assert.Equal(t, "s2", sale.StoreID)
	}

	assert.Equal(t, once, FilterSales(once, filter))
}
