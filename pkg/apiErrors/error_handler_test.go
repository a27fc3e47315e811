package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrStoreNotFound, "Loja não encontrada", map[string]any{"store_id": "abc"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrStoreNotFound, body.Code)
	assert.Equal(t, "Loja não encontrada", body.Message)
}

func TestWriteError_CodigoDesconhecido(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, "XYZ_999", "desconhecido", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestWriteJSONError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteJSONError(rec, http.StatusInternalServerError, "Falha ao buscar dados do dashboard")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Falha ao buscar dados do dashboard"}`, rec.Body.String())
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusConflict, StatusFor(ErrConflict))
	assert.Equal(t, http.StatusBadRequest, StatusFor(ErrInvalidFormat))
	assert.Equal(t, http.StatusUnauthorized, StatusFor(ErrExpiredToken))
	assert.Equal(t, http.StatusMethodNotAllowed, StatusFor(ErrMethodNotAllowed))
	assert.Equal(t, http.StatusNotFound, StatusFor(ErrRouteNotFound))
}
