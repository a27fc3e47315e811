package repository

import (
	"context"
	"fmt"

	"github.com/vfg2006/retail-sales-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-sales-api/internal/domain"
)

// ReportRepository expõe as funções de agregação mantidas no banco
type ReportRepository interface {
	MonthlySales(ctx context.Context) ([]*domain.MonthlyStats, error)
	TopItems(ctx context.Context) ([]*domain.ItemStats, error)
	StorePerformance(ctx context.Context) ([]*domain.StorePerformance, error)
}

type reportRepository struct {
	conn postgres.Queryer
}

func NewReportRepository(conn postgres.Queryer) ReportRepository {
	return &reportRepository{
		conn: conn,
	}
}

func (r *reportRepository) MonthlySales(ctx context.Context) ([]*domain.MonthlyStats, error) {
	rows, err := r.conn.QueryContext(ctx, "SELECT month, total_sales, total_revenue FROM get_monthly_sales()")
	if err != nil {
		return nil, fmt.Errorf("erro ao executar get_monthly_sales: %w", err)
	}
	defer rows.Close()

	stats := make([]*domain.MonthlyStats, 0)
	for rows.Next() {
		var row domain.MonthlyStats
		if err := rows.Scan(&row.Month, &row.TotalSales, &row.TotalRevenue); err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas mensais: %w", err)
		}
		stats = append(stats, &row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return stats, nil
}

func (r *reportRepository) TopItems(ctx context.Context) ([]*domain.ItemStats, error) {
	rows, err := r.conn.QueryContext(ctx, "SELECT item_name, total_quantity, total_revenue FROM get_top_items()")
	if err != nil {
		return nil, fmt.Errorf("erro ao executar get_top_items: %w", err)
	}
	defer rows.Close()

	stats := make([]*domain.ItemStats, 0)
	for rows.Next() {
		var row domain.ItemStats
		if err := rows.Scan(&row.ItemName, &row.TotalQuantity, &row.TotalRevenue); err != nil {
			return nil, fmt.Errorf("erro ao escanear itens: %w", err)
		}
		stats = append(stats, &row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return stats, nil
}

func (r *reportRepository) StorePerformance(ctx context.Context) ([]*domain.StorePerformance, error) {
	rows, err := r.conn.QueryContext(ctx, "SELECT store_id, store_name, total_quantity, total_revenue FROM get_store_performance()")
	if err != nil {
		return nil, fmt.Errorf("erro ao executar get_store_performance: %w", err)
	}
	defer rows.Close()

	performance := make([]*domain.StorePerformance, 0)
	for rows.Next() {
		var row domain.StorePerformance
		if err := rows.Scan(&row.StoreID, &row.StoreName, &row.TotalQuantity, &row.TotalRevenue); err != nil {
			return nil, fmt.Errorf("erro ao escanear desempenho da loja: %w", err)
		}
		performance = append(performance, &row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return performance, nil
}
