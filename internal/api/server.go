package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-sales-api/internal/api/handler"
	"github.com/vfg2006/retail-sales-api/internal/api/handler/router"
	"github.com/vfg2006/retail-sales-api/internal/config"
	"github.com/vfg2006/retail-sales-api/internal/usecases/authenticating"
	"github.com/vfg2006/retail-sales-api/internal/usecases/reporting"
	"github.com/vfg2006/retail-sales-api/internal/usecases/selling"
	"github.com/vfg2006/retail-sales-api/internal/usecases/storing"
	"github.com/vfg2006/retail-sales-api/pkg/middleware"
	"github.com/vfg2006/retail-sales-api/web"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	authenticator authenticating.Authenticator,
	storeService storing.Storer,
	saleService selling.Seller,
	reportService reporting.Reporter,
) (*Server, error) {
	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, err
	}

	// Streams SSE não terminam sozinhos; são encerrados no início do desligamento
	streams, stopStreams := context.WithCancel(context.Background())

	rt := router.New(
		router.WithFallback(handler.NotFound(), handler.MethodNotAllowed()),
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator, streams.Done())...),
		router.WithRoutes(handler.Stores(storeService, reportService)...),
		router.WithRoutes(handler.Sales(saleService, reportService)...),
		router.WithRoutes(handler.Reports(reportService)...),
		router.WithRoutes(handler.Pages(handler.PageServices{
			Renderer:      renderer,
			Authenticator: authenticator,
			Stores:        storeService,
			Sales:         saleService,
			Reports:       reportService,
		})...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}
	srv.httpServer.RegisterOnShutdown(stopStreams)

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
