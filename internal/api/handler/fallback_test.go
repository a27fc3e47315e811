package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/retail-sales-api/internal/api/handler/router"
	"github.com/vfg2006/retail-sales-api/pkg/apiErrors"
)

func TestFallback(t *testing.T) {
	rt := router.New(
		router.WithFallback(NotFound(), MethodNotAllowed()),
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(router.Route{Path: "/v1/stores", Method: http.MethodGet, Handler: HealthcheckHandler()}),
	)

	tests := []struct {
		name     string
		method   string
		path     string
		status   int
		wantCode string
	}{
		{name: "Rota da API inexistente", method: http.MethodGet, path: "/v1/nada", status: http.StatusNotFound, wantCode: apiErrors.ErrRouteNotFound},
		{name: "Método não suportado na API", method: http.MethodPatch, path: "/v1/stores", status: http.StatusMethodNotAllowed, wantCode: apiErrors.ErrMethodNotAllowed},
		{name: "Página inexistente", method: http.MethodGet, path: "/nada", status: http.StatusNotFound},
		{name: "Método não suportado na página", method: http.MethodDelete, path: "/healthcheck", status: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.status, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeAPIError(t, rec).Code)
			} else {
				assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
			}
		})
	}
}
