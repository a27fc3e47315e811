package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/retail-sales-api/internal/domain"
	"github.com/vfg2006/retail-sales-api/internal/usecases/reporting"
	"github.com/vfg2006/retail-sales-api/pkg/apiErrors"
	"github.com/vfg2006/retail-sales-api/pkg/log"
)

// GetDashboard responde com os dados do dashboard para os filtros informados
func GetDashboard(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		query := r.URL.Query()

		filter, err := reporting.NewSaleFilter(query.Get("storeId"), "", query.Get("startDate"), query.Get("endDate"))
		if err != nil {
			writeFilterError(w, err)
			return
		}

		report, err := service.Dashboard(r.Context(), filter)
		if err != nil {
			logger.WithError(err).Error("dashboard: erro ao montar relatório")
			apiErrors.WriteJSONError(w, http.StatusInternalServerError, "Falha ao buscar dados do dashboard")
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	}
}

// ListSales atende a listagem de vendas nas visões detailed, monthly e items
func ListSales(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		query := r.URL.Query()

		view := domain.ReportView(query.Get("view"))
		if view == "" {
			view = domain.ViewDetailed
		}
		if !view.IsValid() {
			apiErrors.WriteJSONError(w, http.StatusBadRequest, "Visão inválida: "+string(view))
			return
		}

		filter, err := reporting.NewSaleFilter(query.Get("storeId"), query.Get("item"), query.Get("startDate"), query.Get("endDate"))
		if err != nil {
			writeFilterError(w, err)
			return
		}

		logger = logger.WithField("view", string(view))

		var payload any
		switch view {
		case domain.ViewMonthly:
			payload, err = service.MonthlyBreakdown(r.Context(), filter)
		case domain.ViewItems:
			payload, err = service.ItemBreakdown(r.Context(), filter)
		default:
			payload, err = service.ListSalesPage(r.Context(), filter, service.PageRequest(query.Get("page"), query.Get("pageSize")))
		}
		if err != nil {
			logger.WithError(err).Error("sales: erro ao listar vendas")
			apiErrors.WriteJSONError(w, http.StatusInternalServerError, "Falha ao buscar vendas")
			return
		}

		writeJSON(w, r, http.StatusOK, payload)
	}
}

func GetMonthlySalesReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := service.MonthlySales(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("reports: erro em monthly-sales")
			apiErrors.WriteJSONError(w, http.StatusInternalServerError, "Falha ao buscar vendas mensais")
			return
		}
		if rows == nil {
			rows = []*domain.MonthlyStats{}
		}
		writeJSON(w, r, http.StatusOK, rows)
	}
}

func GetTopItemsReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := service.TopItems(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("reports: erro em top-items")
			apiErrors.WriteJSONError(w, http.StatusInternalServerError, "Falha ao buscar itens mais vendidos")
			return
		}
		if rows == nil {
			rows = []*domain.ItemStats{}
		}
		writeJSON(w, r, http.StatusOK, rows)
	}
}

func GetStorePerformanceReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := service.StorePerformance(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("reports: erro em store-performance")
			apiErrors.WriteJSONError(w, http.StatusInternalServerError, "Falha ao buscar desempenho das lojas")
			return
		}
		if rows == nil {
			rows = []*domain.StorePerformance{}
		}
		writeJSON(w, r, http.StatusOK, rows)
	}
}

// writeFilterError responde 400 para datas de filtro fora do formato
func writeFilterError(w http.ResponseWriter, err error) {
	var reportErr *reporting.ReportError
	if errors.As(err, &reportErr) && reportErr.Field != "" {
		apiErrors.WriteJSONError(w, http.StatusBadRequest, "Filtro inválido: "+reportErr.Field)
		return
	}
	apiErrors.WriteJSONError(w, http.StatusBadRequest, "Filtro inválido")
}
