package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/retail-sales-api/internal/domain"
	"github.com/vfg2006/retail-sales-api/internal/usecases/reporting"
	"github.com/vfg2006/retail-sales-api/internal/usecases/storing"
	"github.com/vfg2006/retail-sales-api/pkg/apiErrors"
	"github.com/vfg2006/retail-sales-api/pkg/log"
)

func ListStores(service storing.Storer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stores, err := service.ListStores(r.Context())
		if err != nil {
			handleStoreError(w, r, err)
			return
		}

		if stores == nil {
			stores = []*domain.Store{}
		}
		writeJSON(w, r, http.StatusOK, stores)
	}
}

func CreateStore(service storing.Storer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateStoreRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		store, err := service.CreateStore(r.Context(), req)
		if err != nil {
			handleStoreError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithField("store_id", store.ID).Info("Loja criada")
		writeJSON(w, r, http.StatusCreated, store)
	}
}

func GetStore(service storing.Storer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, err := service.GetStore(r.Context(), pathParam(r, "id"))
		if err != nil {
			handleStoreError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, store)
	}
}

func UpdateStore(service storing.Storer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateStoreRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		req.ID = pathParam(r, "id")

		store, err := service.UpdateStore(r.Context(), req)
		if err != nil {
			handleStoreError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, store)
	}
}

func DeleteStore(service storing.Storer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathParam(r, "id")

		if err := service.DeleteStore(r.Context(), id); err != nil {
			handleStoreError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithField("store_id", id).Info("Loja removida")
		w.WriteHeader(http.StatusNoContent)
	}
}

// GetStoreSummary retorna totais, meses e os produtos mais vendidos da loja
func GetStoreSummary(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := service.StoreReport(r.Context(), pathParam(r, "id"))
		if err != nil {
			if errors.Is(err, reporting.ErrStoreNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrStoreNotFound, "Loja não encontrada", nil)
				return
			}

			log.ForContext(r.Context()).WithError(err).Error("store-summary: erro ao montar resumo")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar resumo da loja", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	}
}

func handleStoreError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, validationErr.Message, validationErr)
		return
	}

	var storeErr *storing.StoreError
	if errors.As(err, &storeErr) {
		if apiErrors.StatusFor(storeErr.Code) >= http.StatusInternalServerError {
			log.ForContext(r.Context()).WithError(err).Error("stores: erro ao acessar o banco")
			apiErrors.WriteError(w, storeErr.Code, "Erro ao processar a loja", nil)
			return
		}

		apiErrors.WriteError(w, storeErr.Code, storeErr.Error(), nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("stores: erro não mapeado")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
}
