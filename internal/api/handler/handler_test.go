package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-sales-api/internal/api/handler/router"
	"github.com/vfg2006/retail-sales-api/internal/domain"
	"github.com/vfg2006/retail-sales-api/pkg/apiErrors"
	"github.com/vfg2006/retail-sales-api/pkg/log"
	"github.com/vfg2006/retail-sales-api/pkg/middleware"
)

func init() {
	log.SetupTestLogger()
}

func adminSession() *domain.Session {
	return &domain.Session{ID: "sess-admin", UserID: 1, User: &domain.User{ID: 1, Name: "Admin", RoleID: domain.RoleAdmin}}
}

func managerSession() *domain.Session {
	return &domain.Session{ID: "sess-manager", UserID: 2, User: &domain.User{ID: 2, Name: "Gerente", RoleID: domain.RoleManager}}
}

// serve executa a requisição pelo router, com a sessão já resolvida no contexto
func serve(routes []router.Route, req *http.Request, session *domain.Session) *httptest.ResponseRecorder {
	rt := router.New(router.WithRoutes(routes...))

	if session != nil {
		req = req.WithContext(middleware.WithSession(req.Context(), session))
	}

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var body apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// stubRenderer registra a última página renderizada em vez de executar templates
type stubRenderer struct {
	page string
	data Page
	err  error
}

func (s *stubRenderer) Render(w io.Writer, page string, data any) error {
	s.page = page
	s.data, _ = data.(Page)
	if s.err != nil {
		return s.err
	}
	_, err := io.WriteString(w, "<html>"+page+"</html>")
	return err
}
