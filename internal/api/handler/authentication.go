package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/retail-sales-api/internal/domain"
	"github.com/vfg2006/retail-sales-api/internal/usecases/authenticating"
	"github.com/vfg2006/retail-sales-api/pkg/apiErrors"
	"github.com/vfg2006/retail-sales-api/pkg/log"
	"github.com/vfg2006/retail-sales-api/pkg/middleware"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// sseKeepAlive mantém a conexão aberta através de proxies
var sseKeepAlive = 25 * time.Second

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		session, token, err := service.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			handleAuthError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, LoginResponse{
			Token:     token,
			ExpiresAt: session.ExpiresAt,
		})
	}
}

func Logout(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.SignOut(r.Context(), middleware.TokenFromRequest(r)); err != nil {
			handleAuthError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// GetMe retorna as informações do usuário logado
func GetMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := middleware.SessionFromContext(r.Context())
		if !ok || session.User == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, session.User)
	}
}

func GetCurrentSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, session)
	}
}

// SessionEvents transmite via Server-Sent Events as mudanças da sessão do
// usuário logado. O stream termina quando a sessão é encerrada ou o servidor desliga.
func SessionEvents(service authenticating.Authenticator, shutdown <-chan struct{}) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		session, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Streaming não suportado", nil)
			return
		}

		events, unsubscribe := service.Subscribe()
		defer unsubscribe()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		flusher.Flush()

		ticker := time.NewTicker(sseKeepAlive)
		defer ticker.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case <-shutdown:
				return
			case <-ticker.C:
				fmt.Fprint(w, ": keep-alive\n\n")
				flusher.Flush()
			case event, open := <-events:
				if !open {
					return
				}
				if event.UserID != session.UserID {
					continue
				}

				payload, err := json.Marshal(event)
				if err != nil {
					logger.WithError(err).Error("session-events: erro ao codificar evento")
					continue
				}

				fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, payload)
				flusher.Flush()

				if event.Type == domain.SessionSignedOut && event.SessionID == session.ID {
					return
				}
			}
		}
	}
}

func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateUserRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		user, err := service.CreateUser(r.Context(), req)
		if err != nil {
			handleAuthError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, user)
	}
}

// handleAuthError trata erros de autenticação e retorna a resposta apropriada
func handleAuthError(w http.ResponseWriter, r *http.Request, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		if apiErrors.StatusFor(authErr.Code) >= http.StatusInternalServerError {
			log.ForContext(r.Context()).WithError(err).Error("auth: erro interno")
		}

		// Usuário inexistente e senha errada respondem igual
		apiErrors.WriteError(w, authErr.Code, authErr.Details, nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("auth: erro não mapeado")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno de autenticação", nil)
}
