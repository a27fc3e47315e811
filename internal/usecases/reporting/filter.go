package reporting

import (
	"strings"

	"github.com/vfg2006/retail-sales-api/internal/domain"
	"github.com/vfg2006/retail-sales-api/pkg/utils"
)

// NewSaleFilter monta o filtro a partir dos parâmetros da requisição.
// Datas aceitam YYYY-MM-DD ou YYYY-MM; valores vazios não filtram.
func NewSaleFilter(storeID, item, startDate, endDate string) (domain.SaleFilter, error) {
	filter := domain.SaleFilter{
		StoreID: strings.TrimSpace(storeID),
		Item:    strings.TrimSpace(item),
	}

	start, err := utils.ParseDate(startDate)
	if err != nil {
		return domain.SaleFilter{}, NewReportError(ErrInvalidFilter, "startDate", err.Error())
	}
	filter.StartDate = start

	end, err := utils.ParseDate(endDate)
	if err != nil {
		return domain.SaleFilter{}, NewReportError(ErrInvalidFilter, "endDate", err.Error())
	}
	filter.EndDate = end

	return filter, nil
}

// FilterSales aplica o filtro em memória, com as mesmas regras da consulta SQL
func FilterSales(sales []*domain.SaleWithStore, filter domain.SaleFilter) []*domain.SaleWithStore {
	item := strings.ToLower(filter.Item)

	filtered := make([]*domain.SaleWithStore, 0, len(sales))
	for _, sale := range sales {
		if filter.StartDate != nil && sale.Month.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && sale.Month.After(*filter.EndDate) {
			continue
		}
		if filter.StoreID != "" && sale.StoreID != filter.StoreID {
			continue
		}
		if item != "" && !strings.Contains(strings.ToLower(sale.ItemName), item) {
			continue
		}
		filtered = append(filtered, sale)
	}

	return filtered
}
