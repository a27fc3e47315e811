package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-sales-api/internal/domain"
	"github.com/vfg2006/retail-sales-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func TestGetDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockReporter(ctrl)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	report := &domain.DashboardReport{
		Summary:    domain.Summary{TotalStores: 2, TotalSales: 3, TotalItems: 6, TotalRevenue: 45},
		Stores:     []domain.StoreListItem{{ID: "a", Name: "Loja A", Location: "Centro"}},
		TimeSeries: []domain.MonthlyBucket{{Month: "2024-01", Count: 2, Items: 3, Revenue: 30}},
	}

	service.EXPECT().
		Dashboard(gomock.Any(), domain.SaleFilter{StoreID: "a", StartDate: &start}).
		Return(report, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard?storeId=a&startDate=2024-01-01", nil)
	rec := serve(Reports(service), req, managerSession())

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "summary")
	assert.Contains(t, body, "timeSeries")
	assert.Contains(t, body, "storePerformance")
	assert.Equal(t, float64(45), body["summary"].(map[string]any)["totalRevenue"])
}

func TestGetDashboard_FalhaNoBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockReporter(ctrl)

	service.EXPECT().Dashboard(gomock.Any(), gomock.Any()).Return(nil, errors.New("conexão recusada"))

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	rec := serve(Reports(service), req, managerSession())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Falha ao buscar dados do dashboard"}`, rec.Body.String())
}

func TestGetDashboard_DataInvalida(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockReporter(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard?endDate=ontem", nil)
	rec := serve(Reports(service), req, managerSession())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Filtro inválido: endDate"}`, rec.Body.String())
}

func TestListSales_Visoes(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		setup      func(service *mocks.MockReporter)
		wantStatus int
		wantBody   string
	}{
		{
			name:  "Detalhada por padrão",
			query: "?page=2&pageSize=1&item=caneta",
			setup: func(service *mocks.MockReporter) {
				page := domain.PageRequest{Page: 2, PageSize: 1}
				service.EXPECT().PageRequest("2", "1").Return(page)
				service.EXPECT().
					ListSalesPage(gomock.Any(), domain.SaleFilter{Item: "caneta"}, page).
					Return(&domain.SalesPage{
						Data:       []domain.SaleWithStore{},
						Pagination: domain.Pagination{Page: 2, PageSize: 1, Total: 1, TotalPages: 1},
					}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"data":[],"pagination":{"page":2,"pageSize":1,"total":1,"totalPages":1}}`,
		},
		{
			name:  "Mensal",
			query: "?view=monthly",
			setup: func(service *mocks.MockReporter) {
				service.EXPECT().MonthlyBreakdown(gomock.Any(), domain.SaleFilter{}).Return([]domain.MonthlyBucket{
					{Month: "2024-01", Count: 2, Items: 3, Revenue: 30},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[{"month":"2024-01","count":2,"items":3,"revenue":30}]`,
		},
		{
			name:  "Por item",
			query: "?view=items&storeId=b",
			setup: func(service *mocks.MockReporter) {
				service.EXPECT().ItemBreakdown(gomock.Any(), domain.SaleFilter{StoreID: "b"}).Return([]domain.ProductSummary{
					{Item: "Caneta", Quantity: 3, Revenue: 15},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[{"item":"Caneta","quantity":3,"revenue":15}]`,
		},
		{
			name:       "Visão desconhecida",
			query:      "?view=weekly",
			setup:      func(service *mocks.MockReporter) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Visão inválida: weekly"}`,
		},
		{
			name:  "Falha do banco",
			query: "?view=items",
			setup: func(service *mocks.MockReporter) {
				service.EXPECT().ItemBreakdown(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Falha ao buscar vendas"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockReporter(ctrl)
			tt.setup(service)

			routes := Sales(nil, service)
			req := httptest.NewRequest(http.MethodGet, "/v1/sales"+tt.query, nil)
			rec := serve(routes, req, managerSession())

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestBackendAggregates(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockReporter(ctrl)

	service.EXPECT().MonthlySales(gomock.Any()).Return(nil, nil)
	service.EXPECT().TopItems(gomock.Any()).Return([]*domain.ItemStats{{ItemName: "Caneta", TotalQuantity: 3, TotalRevenue: 15}}, nil)
	service.EXPECT().StorePerformance(gomock.Any()).Return(nil, errors.New("função ausente"))

	rec := serve(Reports(service), httptest.NewRequest(http.MethodGet, "/v1/reports/monthly-sales", nil), managerSession())
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = serve(Reports(service), httptest.NewRequest(http.MethodGet, "/v1/reports/top-items", nil), managerSession())
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"item_name":"Caneta","total_quantity":3,"total_revenue":15}]`, rec.Body.String())

	rec = serve(Reports(service), httptest.NewRequest(http.MethodGet, "/v1/reports/store-performance", nil), managerSession())
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestReports_SemSessao(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockReporter(ctrl)

	rec := serve(Reports(service), httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil), nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
