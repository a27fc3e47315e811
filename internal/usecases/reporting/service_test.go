package reporting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-sales-api/infrastructure/repository/mocks"
	"github.com/vfg2006/retail-sales-api/internal/config"
	"github.com/vfg2006/retail-sales-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	stores  *mocks.MockStoreRepository
	sales   *mocks.MockSaleRepository
	reports *mocks.MockReportRepository
}

func setupService(t *testing.T) (Reporter, serviceMocks) {
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		stores:  mocks.NewMockStoreRepository(ctrl),
		sales:   mocks.NewMockSaleRepository(ctrl),
		reports: mocks.NewMockReportRepository(ctrl),
	}

	cfg := &config.Config{Pagination: config.Pagination{DefaultPageSize: 2, MaxPageSize: 10}}
	return NewService(m.stores, m.sales, m.reports, cfg), m
}

func TestService_Dashboard(t *testing.T) {
	service, m := setupService(t)
	filter := domain.SaleFilter{StoreID: "s1"}

	m.stores.EXPECT().List(gomock.Any()).Return([]*domain.Store{
		{ID: "s1", Name: "Centro", Location: "Rua A"},
		{ID: "s2", Name: "Shopping", Location: "Av. B"},
	}, nil)
	m.sales.EXPECT().List(gomock.Any(), filter).Return(scenarioSales(), nil)
	m.reports.EXPECT().StorePerformance(gomock.Any()).Return([]*domain.StorePerformance{
		{StoreID: "s1", StoreName: "Centro", TotalQuantity: 3, TotalRevenue: 30},
	}, nil)

	report, err := service.Dashboard(context.Background(), filter)
	require.NoError(t, err)

	assert.Equal(t, domain.Summary{TotalStores: 2, TotalSales: 3, TotalItems: 6, TotalRevenue: 45}, report.Summary)
	assert.Equal(t, []domain.StoreListItem{
		{ID: "s1", Name: "Centro", Location: "Rua A"},
		{ID: "s2", Name: "Shopping", Location: "Av. B"},
	}, report.Stores)
	assert.Len(t, report.TimeSeries, 2)
	assert.Equal(t, "A", report.Products[0].Item)
	assert.Equal(t, []domain.StoreSummary{{ID: "s1", Name: "Centro", Sales: 3, Revenue: 30}}, report.StorePerformance)
}

func TestService_Dashboard_FalhaEmUmaBusca(t *testing.T) {
	service, m := setupService(t)

	m.stores.EXPECT().List(gomock.Any()).Return(nil, errors.New("conexão recusada"))
	m.sales.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	m.reports.EXPECT().StorePerformance(gomock.Any()).Return(nil, nil).AnyTimes()

	report, err := service.Dashboard(context.Background(), domain.SaleFilter{})

	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrFetchingReport)
}

func TestService_ListSalesPage(t *testing.T) {
	service, m := setupService(t)
	filter := domain.SaleFilter{Item: "A"}
	page := domain.PageRequest{Page: 2, PageSize: 2}

	m.sales.EXPECT().Count(gomock.Any(), filter).Return(3, nil)
	m.sales.EXPECT().ListPage(gomock.Any(), filter, 2, 2).Return(scenarioSales()[2:], nil)

	result, err := service.ListSalesPage(context.Background(), filter, page)
	require.NoError(t, err)

	assert.Len(t, result.Data, 1)
	assert.Equal(t, domain.Pagination{Page: 2, PageSize: 2, Total: 3, TotalPages: 2}, result.Pagination)
}

func TestService_ListSalesPage_AlemDaUltimaPagina(t *testing.T) {
	service, m := setupService(t)

	m.sales.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)

	result, err := service.ListSalesPage(context.Background(), domain.SaleFilter{}, domain.PageRequest{Page: 9, PageSize: 2})
	require.NoError(t, err)

	assert.NotNil(t, result.Data)
	assert.Empty(t, result.Data)
	assert.Equal(t, 2, result.Pagination.TotalPages)
}

func TestService_ListSalesPage_PaginaEnormeNaoVoltaAoInicio(t *testing.T) {
	service, m := setupService(t)

	m.sales.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
	m.sales.EXPECT().ListPage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	result, err := service.ListSalesPage(context.Background(), domain.SaleFilter{}, domain.PageRequest{Page: 4611686018427387905, PageSize: 2})
	require.NoError(t, err)

	assert.Empty(t, result.Data)
	assert.Equal(t, 2, result.Pagination.TotalPages)
}

func TestService_Breakdowns(t *testing.T) {
	service, m := setupService(t)

	m.sales.EXPECT().List(gomock.Any(), gomock.Any()).Return(scenarioSales(), nil).Times(2)

	months, err := service.MonthlyBreakdown(context.Background(), domain.SaleFilter{})
	require.NoError(t, err)
	assert.Equal(t, "2024-01", months[0].Month)

	items, err := service.ItemBreakdown(context.Background(), domain.SaleFilter{})
	require.NoError(t, err)
	assert.Equal(t, []domain.ProductSummary{
		{Item: "A", Quantity: 3, Revenue: 30},
		{Item: "B", Quantity: 3, Revenue: 15},
	}, items)
}

func TestService_SalesOverview(t *testing.T) {
	t.Run("Sem filtro", func(t *testing.T) {
		service, m := setupService(t)

		m.sales.EXPECT().List(gomock.Any(), domain.SaleFilter{}).Return(scenarioSales(), nil)

		overview, err := service.SalesOverview(context.Background(), domain.SaleFilter{}, domain.PageRequest{Page: 1, PageSize: 2})
		require.NoError(t, err)

		assert.Equal(t, "2024-02", overview.Months[0].Month)
		assert.Len(t, overview.Sales.Data, 2)
		assert.Equal(t, 2, overview.Sales.Pagination.TotalPages)
	})

	t.Run("Filtro por item em memória", func(t *testing.T) {
		service, m := setupService(t)

		m.sales.EXPECT().List(gomock.Any(), domain.SaleFilter{}).Return(scenarioSales(), nil)

		overview, err := service.SalesOverview(context.Background(), domain.SaleFilter{Item: "b"}, domain.PageRequest{Page: 1, PageSize: 10})
		require.NoError(t, err)

		assert.Equal(t, []domain.MonthlyBucket{{Month: "2024-02", Count: 1, Items: 3, Revenue: 15}}, overview.Months)
		require.Len(t, overview.Sales.Data, 1)
		assert.Equal(t, "s2", overview.Sales.Data[0].StoreID)
		assert.Equal(t, 1, overview.Sales.Pagination.Total)
	})
}

func TestService_StoreReport(t *testing.T) {
	t.Run("Loja existente", func(t *testing.T) {
		service, m := setupService(t)
		store := &domain.Store{ID: "s1", Name: "Centro"}

		m.stores.EXPECT().GetByID(gomock.Any(), "s1").Return(store, nil)
		m.sales.EXPECT().List(gomock.Any(), domain.SaleFilter{StoreID: "s1"}).Return(scenarioSales()[:2], nil)

		report, err := service.StoreReport(context.Background(), "s1")
		require.NoError(t, err)

		assert.Same(t, store, report.Store)
		assert.Equal(t, 30.0, report.Summary.TotalRevenue)
		assert.Equal(t, []domain.MonthlyBucket{{Month: "2024-01", Count: 2, Items: 3, Revenue: 30}}, report.Months)
		assert.Len(t, report.TopProducts, 1)
	})

	t.Run("Loja inexistente", func(t *testing.T) {
		service, m := setupService(t)

		m.stores.EXPECT().GetByID(gomock.Any(), "nope").Return(nil, nil)

		report, err := service.StoreReport(context.Background(), "nope")

		assert.Nil(t, report)
		assert.ErrorIs(t, err, ErrStoreNotFound)
	})
}

func TestService_AgregacoesDoBanco(t *testing.T) {
	service, m := setupService(t)

	m.reports.EXPECT().MonthlySales(gomock.Any()).Return([]*domain.MonthlyStats{{Month: "2024-01", TotalSales: 2, TotalRevenue: 30}}, nil)
	m.reports.EXPECT().TopItems(gomock.Any()).Return(nil, errors.New("timeout"))

	monthly, err := service.MonthlySales(context.Background())
	require.NoError(t, err)
	assert.Len(t, monthly, 1)

	_, err = service.TopItems(context.Background())
	assert.ErrorIs(t, err, ErrFetchingReport)
}

func TestService_PageRequest(t *testing.T) {
	service, _ := setupService(t)

	assert.Equal(t, domain.PageRequest{Page: 1, PageSize: 2}, service.PageRequest("", ""))
	assert.Equal(t, domain.PageRequest{Page: 4, PageSize: 10}, service.PageRequest("4", "99"))
}
