package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/retail-sales-api/pkg/apiErrors"
)

const apiPrefix = "/v1/"

// NotFound responde no envelope de erro da API sob /v1 e em texto nas páginas
func NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, apiPrefix) {
			apiErrors.WriteError(w, apiErrors.ErrRouteNotFound, "Rota não encontrada", r.URL.Path)
			return
		}
		http.Error(w, "Página não encontrada", http.StatusNotFound)
	})
}

// MethodNotAllowed mantém o cabeçalho Allow preenchido pelo roteador
func MethodNotAllowed() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, apiPrefix) {
			apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Método não suportado", r.Method)
			return
		}
		http.Error(w, "Método não suportado", http.StatusMethodNotAllowed)
	})
}
