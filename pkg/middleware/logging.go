package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/vfg2006/retail-sales-api/pkg/apiErrors"
	"github.com/vfg2006/retail-sales-api/pkg/log"
)

// RequestIDHeader carrega o ID de correlação entre cliente e servidor
const RequestIDHeader = "X-Request-ID"

const (
	slowRequestThreshold = 500 * time.Millisecond
	apiPrefix            = "/v1/"
)

// LoggingMiddleware registra início e fim de cada requisição, com o ID de
// correlação no contexto e no cabeçalho da resposta
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context(), r.Header.Get(RequestIDHeader))
			r = r.WithContext(ctx)
			w.Header().Set(RequestIDHeader, correlationID)

			rec := newStatusRecorder(w)
			start := time.Now()

			log.ForContext(ctx).WithFields(requestFields(r)).Info("→ " + requestLabel(r))

			next.ServeHTTP(rec, r)

			logCompletion(r, rec.status, time.Since(start))
		})
	}
}

func requestLabel(r *http.Request) string {
	if strings.HasPrefix(r.URL.Path, apiPrefix) {
		return "api"
	}
	return "página"
}

// requestFields traz os detalhes do cliente; em desenvolvimento o logger
// descarta o que não for método ou caminho
func requestFields(r *http.Request) log.Fields {
	return log.Fields{
		"method":         r.Method,
		"path":           r.URL.Path,
		"query":          r.URL.RawQuery,
		"remote_addr":    r.RemoteAddr,
		"user_agent":     r.UserAgent(),
		"referer":        r.Referer(),
		"content_length": r.ContentLength,
	}
}

func logCompletion(r *http.Request, status int, elapsed time.Duration) {
	logger := log.ForContext(r.Context()).WithFields(log.Fields{
		"method":      r.Method,
		"path":        r.URL.Path,
		"status_code": status,
		"duration_ms": elapsed.Milliseconds(),
	})

	symbol := "✓"
	if status >= http.StatusBadRequest {
		symbol = "✗"
	}
	msg := fmt.Sprintf("%s %d em %s", symbol, status, formatDuration(elapsed))

	switch {
	case status >= http.StatusInternalServerError:
		logger.Error(msg)
	case status >= http.StatusBadRequest:
		logger.Warn(msg)
	default:
		logger.Info(msg)
	}

	if elapsed > slowRequestThreshold {
		logger.Warnf("⚠ Requisição lenta: %s %s", r.Method, r.URL.Path)
	}
}

// formatDuration formata a duração de forma humana
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// statusRecorder guarda o status enviado e se a resposta já começou
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	if rec, ok := w.(*statusRecorder); ok {
		return rec
	}
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (rec *statusRecorder) WriteHeader(code int) {
	if rec.wroteHeader {
		return
	}
	rec.status = code
	rec.wroteHeader = true
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	rec.wroteHeader = true
	return rec.ResponseWriter.Write(b)
}

// Flush mantém o streaming de eventos (SSE) funcionando através do wrapper
func (rec *statusRecorder) Flush() {
	rec.wroteHeader = true
	if flusher, ok := rec.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

func (rec *statusRecorder) Unwrap() http.ResponseWriter {
	return rec.ResponseWriter
}

// LogPanicMiddleware recupera panics, registra a pilha e responde 500 quando
// a resposta ainda não começou: JSON na API, texto nas páginas
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := newStatusRecorder(w)

			defer func() {
				err := recover()
				if err == nil {
					return
				}
				if err == http.ErrAbortHandler {
					panic(err)
				}

				stack := make([]byte, 4096)
				stack = stack[:runtime.Stack(stack, false)]

				logger := log.ForContext(r.Context()).WithFields(log.Fields{
					"error":  err,
					"method": r.Method,
					"path":   r.URL.Path,
				})
				if log.IsDevelopment() {
					logger.Error("❌ PANIC na aplicação")
					fmt.Fprintf(os.Stderr, "\n\n=== STACK TRACE ===\n%s\n=================\n\n", stack)
				} else {
					logger.WithField("stack_trace", string(stack)).Error("Erro não tratado na aplicação")
				}

				if rec.wroteHeader {
					return
				}
				if strings.HasPrefix(r.URL.Path, apiPrefix) {
					apiErrors.WriteError(rec, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
					return
				}
				http.Error(rec, "Erro interno no servidor", http.StatusInternalServerError)
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
