package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/retail-sales-api/internal/domain"
	"github.com/vfg2006/retail-sales-api/internal/usecases/selling"
	"github.com/vfg2006/retail-sales-api/pkg/apiErrors"
	"github.com/vfg2006/retail-sales-api/pkg/log"
)

// CreateSaleBatch grava todas as linhas do lote e responde com as vendas criadas
func CreateSaleBatch(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SaleBatchRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		sales, err := service.CreateBatch(r.Context(), req)
		if err != nil {
			handleSaleError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"store_id": req.StoreID,
			"count":    len(sales),
		}).Info("Lote de vendas gravado")

		writeJSON(w, r, http.StatusCreated, sales)
	}
}

func GetSale(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sale, err := service.GetSale(r.Context(), pathParam(r, "id"))
		if err != nil {
			handleSaleError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, sale)
	}
}

func UpdateSale(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateSaleRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		req.ID = pathParam(r, "id")

		sale, err := service.UpdateSale(r.Context(), req)
		if err != nil {
			handleSaleError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, sale)
	}
}

func DeleteSale(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathParam(r, "id")

		if err := service.DeleteSale(r.Context(), id); err != nil {
			handleSaleError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithField("sale_id", id).Info("Venda removida")
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleSaleError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, validationErr.Message, validationErr)
		return
	}

	var batchErr *selling.BatchError
	if errors.As(err, &batchErr) {
		log.ForContext(r.Context()).WithError(err).Error("sales: lote interrompido")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar o lote de vendas", map[string]any{
			"created":      batchErr.Created,
			"failed_index": batchErr.FailedIndex,
		})
		return
	}

	var saleErr *selling.SaleError
	if errors.As(err, &saleErr) {
		if apiErrors.StatusFor(saleErr.Code) >= http.StatusInternalServerError {
			log.ForContext(r.Context()).WithError(err).Error("sales: erro ao acessar o banco")
			apiErrors.WriteError(w, saleErr.Code, "Erro ao processar a venda", nil)
			return
		}

		apiErrors.WriteError(w, saleErr.Code, saleErr.Error(), nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("sales: erro não mapeado")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
}
