// Package reporting agrega vendas para o dashboard, a listagem e os relatórios por loja
package reporting

import (
	"context"

	"github.com/vfg2006/retail-sales-api/infrastructure/repository"
	"github.com/vfg2006/retail-sales-api/internal/config"
	"github.com/vfg2006/retail-sales-api/internal/domain"
	"github.com/vfg2006/retail-sales-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

// TopProductsPerStore é o tamanho do ranking exibido nos detalhes da loja
const TopProductsPerStore = 5

type Reporter interface {
	Dashboard(ctx context.Context, filter domain.SaleFilter) (*domain.DashboardReport, error)
	ListSalesPage(ctx context.Context, filter domain.SaleFilter, page domain.PageRequest) (*domain.SalesPage, error)
	MonthlyBreakdown(ctx context.Context, filter domain.SaleFilter) ([]domain.MonthlyBucket, error)
	ItemBreakdown(ctx context.Context, filter domain.SaleFilter) ([]domain.ProductSummary, error)
	SalesOverview(ctx context.Context, filter domain.SaleFilter, page domain.PageRequest) (*domain.SalesOverview, error)
	StoreReport(ctx context.Context, storeID string) (*domain.StoreReport, error)
	MonthlySales(ctx context.Context) ([]*domain.MonthlyStats, error)
	TopItems(ctx context.Context) ([]*domain.ItemStats, error)
	StorePerformance(ctx context.Context) ([]*domain.StorePerformance, error)
	PageRequest(page, pageSize string) domain.PageRequest
}

type Service struct {
	storeRepo  repository.StoreRepository
	saleRepo   repository.SaleRepository
	reportRepo repository.ReportRepository
	pagination config.Pagination
}

func NewService(
	storeRepo repository.StoreRepository,
	saleRepo repository.SaleRepository,
	reportRepo repository.ReportRepository,
	cfg *config.Config,
) Reporter {
	return &Service{
		storeRepo:  storeRepo,
		saleRepo:   saleRepo,
		reportRepo: reportRepo,
		pagination: cfg.Pagination,
	}
}

// PageRequest aplica os limites de paginação configurados
func (s *Service) PageRequest(page, pageSize string) domain.PageRequest {
	return NewPageRequest(page, pageSize, s.pagination.DefaultPageSize, s.pagination.MaxPageSize)
}

// Dashboard busca lojas, vendas e desempenho por loja em paralelo; a primeira
// falha cancela as demais
func (s *Service) Dashboard(ctx context.Context, filter domain.SaleFilter) (*domain.DashboardReport, error) {
	var (
		stores      []*domain.Store
		sales       []*domain.SaleWithStore
		performance []*domain.StorePerformance
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		stores, err = s.storeRepo.List(gctx)
		return err
	})

	g.Go(func() error {
		var err error
		sales, err = s.saleRepo.List(gctx, filter)
		return err
	})

	g.Go(func() error {
		var err error
		performance, err = s.reportRepo.StorePerformance(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		log.ForContext(ctx).WithError(err).Error("reporting: falha ao montar o dashboard")
		return nil, NewReportError(ErrFetchingReport, "", err.Error())
	}

	storeItems := make([]domain.StoreListItem, 0, len(stores))
	for _, store := range stores {
		storeItems = append(storeItems, domain.StoreListItem{
			ID:       store.ID,
			Name:     store.Name,
			Location: store.Location,
		})
	}

	return &domain.DashboardReport{
		Summary:          Summarize(sales, len(stores)),
		Stores:           storeItems,
		TimeSeries:       MonthlySeries(sales),
		Products:         ProductPerformance(sales),
		StorePerformance: StorePerformance(performance),
	}, nil
}

// ListSalesPage pagina no banco: uma consulta com LIMIT/OFFSET e outra com COUNT
func (s *Service) ListSalesPage(ctx context.Context, filter domain.SaleFilter, page domain.PageRequest) (*domain.SalesPage, error) {
	total, err := s.saleRepo.Count(ctx, filter)
	if err != nil {
		return nil, NewReportError(ErrFetchingReport, "", err.Error())
	}

	pagination := NewPagination(page, total)
	data := make([]domain.SaleWithStore, 0)

	if offset := Offset(page); offset >= 0 && offset < total {
		sales, err := s.saleRepo.ListPage(ctx, filter, page.PageSize, offset)
		if err != nil {
			return nil, NewReportError(ErrFetchingReport, "", err.Error())
		}
		for _, sale := range sales {
			data = append(data, *sale)
		}
	}

	return &domain.SalesPage{
		Data:       data,
		Pagination: pagination,
	}, nil
}

func (s *Service) MonthlyBreakdown(ctx context.Context, filter domain.SaleFilter) ([]domain.MonthlyBucket, error) {
	sales, err := s.saleRepo.List(ctx, filter)
	if err != nil {
		return nil, NewReportError(ErrFetchingReport, "", err.Error())
	}
	return MonthlySeries(sales), nil
}

func (s *Service) ItemBreakdown(ctx context.Context, filter domain.SaleFilter) ([]domain.ProductSummary, error) {
	sales, err := s.saleRepo.List(ctx, filter)
	if err != nil {
		return nil, NewReportError(ErrFetchingReport, "", err.Error())
	}
	return ProductPerformance(sales), nil
}

// SalesOverview carrega todas as vendas uma vez, filtra e pagina a tabela em
// memória; os cartões mensais cobrem o conjunto filtrado inteiro
func (s *Service) SalesOverview(ctx context.Context, filter domain.SaleFilter, page domain.PageRequest) (*domain.SalesOverview, error) {
	all, err := s.saleRepo.List(ctx, domain.SaleFilter{})
	if err != nil {
		return nil, NewReportError(ErrFetchingReport, "", err.Error())
	}

	sales := FilterSales(all, filter)

	pageItems, pagination := Paginate(sales, page)
	data := make([]domain.SaleWithStore, 0, len(pageItems))
	for _, sale := range pageItems {
		data = append(data, *sale)
	}

	return &domain.SalesOverview{
		Months: MonthlySeriesDesc(sales),
		Sales: domain.SalesPage{
			Data:       data,
			Pagination: pagination,
		},
	}, nil
}

func (s *Service) StoreReport(ctx context.Context, storeID string) (*domain.StoreReport, error) {
	store, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, NewReportError(ErrFetchingReport, "", err.Error())
	}
	if store == nil {
		return nil, NewReportError(ErrStoreNotFound, "id", storeID)
	}

	sales, err := s.saleRepo.List(ctx, domain.SaleFilter{StoreID: storeID})
	if err != nil {
		return nil, NewReportError(ErrFetchingReport, "", err.Error())
	}

	return &domain.StoreReport{
		Store:       store,
		Summary:     Summarize(sales, 1),
		Months:      MonthlySeriesDesc(sales),
		TopProducts: TopProducts(sales, TopProductsPerStore),
	}, nil
}

func (s *Service) MonthlySales(ctx context.Context) ([]*domain.MonthlyStats, error) {
	stats, err := s.reportRepo.MonthlySales(ctx)
	if err != nil {
		return nil, NewReportError(ErrFetchingReport, "", err.Error())
	}
	return stats, nil
}

func (s *Service) TopItems(ctx context.Context) ([]*domain.ItemStats, error) {
	stats, err := s.reportRepo.TopItems(ctx)
	if err != nil {
		return nil, NewReportError(ErrFetchingReport, "", err.Error())
	}
	return stats, nil
}

func (s *Service) StorePerformance(ctx context.Context) ([]*domain.StorePerformance, error) {
	performance, err := s.reportRepo.StorePerformance(ctx)
	if err != nil {
		return nil, NewReportError(ErrFetchingReport, "", err.Error())
	}
	return performance, nil
}
