package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-sales-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-sales-api/infrastructure/repository"
	"github.com/vfg2006/retail-sales-api/internal/api"
	"github.com/vfg2006/retail-sales-api/internal/config"
	"github.com/vfg2006/retail-sales-api/internal/domain"
	"github.com/vfg2006/retail-sales-api/internal/usecases/authenticating"
	"github.com/vfg2006/retail-sales-api/internal/usecases/reporting"
	"github.com/vfg2006/retail-sales-api/internal/usecases/selling"
	"github.com/vfg2006/retail-sales-api/internal/usecases/storing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.MigrationsEnabled {
		if err := postgres.RunMigrations(pgConn); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	storeRepo := repository.NewStoreRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	reportRepo := repository.NewReportRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	sessionRepo := repository.NewSessionRepository(pgConn)

	notifier := authenticating.NewNotifier()
	authenticator := authenticating.NewService(userRepo, sessionRepo, notifier, cfg)

	go auditSessions(ctx, authenticator)

	storeService := storing.NewService(storeRepo)
	saleService := selling.NewService(saleRepo, storeRepo)
	reportService := reporting.NewService(storeRepo, saleRepo, reportRepo, cfg)

	server, err := api.New(
		cfg,
		authenticator,
		storeService,
		saleService,
		reportService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// auditSessions registra cada login e logout até o contexto ser cancelado
func auditSessions(ctx context.Context, authenticator authenticating.Authenticator) {
	events, unsubscribe := authenticator.Subscribe()
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}

			entry := logrus.WithFields(logrus.Fields{
				"session_id": event.SessionID,
				"user_id":    event.UserID,
			})
			switch event.Type {
			case domain.SessionSignedIn:
				entry.Info("audit: sessão iniciada")
			case domain.SessionSignedOut:
				entry.Info("audit: sessão encerrada")
			}
		}
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
