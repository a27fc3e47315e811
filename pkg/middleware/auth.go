package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/retail-sales-api/internal/domain"
	"github.com/vfg2006/retail-sales-api/pkg/apiErrors"
	"github.com/vfg2006/retail-sales-api/pkg/log"
)

type contextKey string

const (
	ContextKeySession contextKey = "session"
)

// SessionCookieName é o cookie usado pelas páginas HTML para carregar o JWT
const SessionCookieName = "session_token"

// SessionProvider resolve o token de uma requisição para a sessão ativa.
// nil, nil significa "sem sessão".
type SessionProvider interface {
	GetSession(ctx context.Context, token string) (*domain.Session, error)
}

var publicAPIPaths = map[string]bool{
	"/v1/login": true,
}

// WithSession coloca a sessão no contexto da requisição
func WithSession(ctx context.Context, session *domain.Session) context.Context {
	return context.WithValue(ctx, ContextKeySession, session)
}

// SessionFromContext recupera a sessão colocada por AuthMiddleware ou AuthGate
func SessionFromContext(ctx context.Context) (*domain.Session, bool) {
	session, ok := ctx.Value(ContextKeySession).(*domain.Session)
	return session, ok && session != nil
}

// TokenFromRequest lê o bearer token e, na falta dele, o cookie de sessão
func TokenFromRequest(r *http.Request) string {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token != authHeader {
			return strings.TrimSpace(token)
		}
	}

	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		return cookie.Value
	}

	return ""
}

// AuthMiddleware protege as rotas /v1, exceto o login. As páginas HTML passam
// direto e ficam a cargo do AuthGate.
func AuthMiddleware(provider SessionProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(r.URL.Path, "/v1/") || publicAPIPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			token := TokenFromRequest(r)
			if token == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token de autenticação é obrigatório", nil)
				return
			}

			session, err := provider.GetSession(r.Context(), token)
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Error("auth: falha ao resolver sessão")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao validar sessão", nil)
				return
			}
			if session == nil {
				apiErrors.WriteError(w, apiErrors.ErrExpiredToken, "Sessão expirada ou encerrada", nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}
