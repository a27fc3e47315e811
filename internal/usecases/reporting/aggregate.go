package reporting

import (
	"cmp"
	"slices"

	"github.com/vfg2006/retail-sales-api/internal/domain"
	"github.com/vfg2006/retail-sales-api/pkg/utils"
)

// MonthlySeries agrupa as vendas por mês (YYYY-MM), do mais antigo para o mais recente
func MonthlySeries(sales []*domain.SaleWithStore) []domain.MonthlyBucket {
	buckets := make(map[string]*domain.MonthlyBucket)
	for _, sale := range sales {
		key := utils.MonthKey(sale.Month.UTC())
		bucket, ok := buckets[key]
		if !ok {
			bucket = &domain.MonthlyBucket{Month: key}
			buckets[key] = bucket
		}
		bucket.Count++
		bucket.Items += sale.Quantity
		bucket.Revenue += sale.Total()
	}

	series := make([]domain.MonthlyBucket, 0, len(buckets))
	for _, bucket := range buckets {
		series = append(series, *bucket)
	}

	slices.SortFunc(series, func(a, b domain.MonthlyBucket) int {
		return cmp.Compare(a.Month, b.Month)
	})

	return series
}

// MonthlySeriesDesc devolve os mesmos grupos de MonthlySeries com o mês mais recente primeiro
func MonthlySeriesDesc(sales []*domain.SaleWithStore) []domain.MonthlyBucket {
	series := MonthlySeries(sales)
	slices.Reverse(series)
	return series
}

// ProductPerformance agrupa pelo nome exato do item e ordena pela receita.
// Empates mantêm a ordem da primeira aparição.
func ProductPerformance(sales []*domain.SaleWithStore) []domain.ProductSummary {
	index := make(map[string]int)
	products := make([]domain.ProductSummary, 0)

	for _, sale := range sales {
		i, ok := index[sale.ItemName]
		if !ok {
			i = len(products)
			index[sale.ItemName] = i
			products = append(products, domain.ProductSummary{Item: sale.ItemName})
		}
		products[i].Quantity += sale.Quantity
		products[i].Revenue += sale.Total()
	}

	slices.SortStableFunc(products, func(a, b domain.ProductSummary) int {
		return cmp.Compare(b.Revenue, a.Revenue)
	})

	return products
}

// TopProducts devolve os n primeiros itens de ProductPerformance
func TopProducts(sales []*domain.SaleWithStore, n int) []domain.ProductSummary {
	products := ProductPerformance(sales)
	if n >= 0 && len(products) > n {
		products = products[:n]
	}
	return products
}

// StorePerformance converte as linhas da função do banco para o formato do dashboard
func StorePerformance(rows []*domain.StorePerformance) []domain.StoreSummary {
	summaries := make([]domain.StoreSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, domain.StoreSummary{
			ID:      row.StoreID,
			Name:    row.StoreName,
			Sales:   row.TotalQuantity,
			Revenue: row.TotalRevenue,
		})
	}
	return summaries
}

func Summarize(sales []*domain.SaleWithStore, totalStores int) domain.Summary {
	summary := domain.Summary{
		TotalStores: totalStores,
		TotalSales:  len(sales),
	}
	for _, sale := range sales {
		summary.TotalItems += sale.Quantity
		summary.TotalRevenue += sale.Total()
	}
	return summary
}
