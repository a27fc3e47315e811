package middleware

import (
	"net/http"
	"net/url"

	"github.com/vfg2006/retail-sales-api/internal/domain"
	"github.com/vfg2006/retail-sales-api/pkg/log"
)

// GateState é o estado do AuthGate para uma requisição
type GateState int

const (
	GateChecking GateState = iota
	GateResolved
	GateRedirected
)

func (s GateState) String() string {
	switch s {
	case GateChecking:
		return "checking"
	case GateResolved:
		return "resolved"
	case GateRedirected:
		return "redirected"
	}
	return "unknown"
}

// AuthGate protege as páginas HTML. A sessão é consultada uma única vez por
// requisição; sem sessão o cliente é redirecionado ao login antes de qualquer
// conteúdo ser escrito.
func AuthGate(provider SessionProvider, loginPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			state, session := checkSession(provider, r)

			if state == GateRedirected {
				http.Redirect(w, r, LoginRedirect(loginPath, r.URL.RequestURI()), http.StatusFound)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}

func checkSession(provider SessionProvider, r *http.Request) (GateState, *domain.Session) {
	state := GateChecking

	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return transition(r, state, GateRedirected), nil
	}

	session, err := provider.GetSession(r.Context(), cookie.Value)
	if err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("gate: falha ao consultar sessão")
		return transition(r, state, GateRedirected), nil
	}
	if session == nil {
		return transition(r, state, GateRedirected), nil
	}

	return transition(r, state, GateResolved), session
}

func transition(r *http.Request, from, to GateState) GateState {
	log.ForContext(r.Context()).WithFields(log.Fields{
		"path":         r.URL.Path,
		"session_gate": to.String(),
	}).Debugf("gate: %s → %s", from, to)
	return to
}

// LoginRedirect monta a URL de login preservando o destino original
func LoginRedirect(loginPath, next string) string {
	if next == "" || next == loginPath {
		return loginPath
	}
	return loginPath + "?next=" + url.QueryEscape(next)
}
