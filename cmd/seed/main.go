// Seed cria o usuário administrador e, opcionalmente, lojas e vendas de demonstração
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/retail-sales-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-sales-api/infrastructure/repository"
	"github.com/vfg2006/retail-sales-api/internal/config"
	"github.com/vfg2006/retail-sales-api/internal/domain"
	"github.com/vfg2006/retail-sales-api/internal/usecases/authenticating"
	"github.com/vfg2006/retail-sales-api/internal/usecases/storing"
	"github.com/vfg2006/retail-sales-api/pkg/utils"
)

type demoStore struct {
	name     string
	location string
	manager  string
	phone    string
	email    string
}

type demoSale struct {
	store    int
	month    string
	item     string
	quantity int
	price    float64
}

var demoStores = []demoStore{
	{name: "Loja Centro", location: "Rua XV de Novembro, 100", manager: "Ana Souza", phone: "(41) 3333-1000", email: "centro@lojas.com"},
	{name: "Loja Shopping", location: "Av. das Torres, 2500", manager: "Bruno Lima", email: "shopping@lojas.com"},
	{name: "Loja Bairro", location: "Rua das Flores, 42"},
}

var demoSales = []demoSale{
	{store: 0, month: "2024-01", item: "Caneta", quantity: 20, price: 2.5},
	{store: 0, month: "2024-01", item: "Caderno", quantity: 8, price: 18.9},
	{store: 0, month: "2024-02", item: "Caneta", quantity: 15, price: 2.5},
	{store: 0, month: "2024-03", item: "Mochila", quantity: 2, price: 149.9},
	{store: 1, month: "2024-01", item: "Mochila", quantity: 4, price: 159.9},
	{store: 1, month: "2024-02", item: "Caderno", quantity: 12, price: 19.9},
	{store: 1, month: "2024-03", item: "Lápis", quantity: 40, price: 1.2},
	{store: 2, month: "2024-02", item: "Lápis", quantity: 25, price: 1.1},
	{store: 2, month: "2024-03", item: "Borracha", quantity: 30, price: 0.9},
}

func setDefaults() {
	viper.SetDefault("SEED_ADMIN_NAME", "Administrador")
	viper.SetDefault("SEED_ADMIN_EMAIL", "admin@lojas.com")
	viper.SetDefault("SEED_ADMIN_PASSWORD", "admin12345")
	viper.SetDefault("SEED_DEMO_DATA", false)
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	setDefaults()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := postgres.RunMigrations(conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações")
	}

	if err := seedAdmin(ctx, conn, cfg); err != nil {
		logrus.WithError(err).Fatal("Erro ao criar administrador")
	}

	if !viper.GetBool("SEED_DEMO_DATA") {
		logrus.Info("Dados de demonstração desativados (SEED_DEMO_DATA=false)")
		return
	}

	if err := seedDemo(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao inserir dados de demonstração")
	}
}

func seedAdmin(ctx context.Context, conn *postgres.Connection, cfg *config.Config) error {
	authenticator := authenticating.NewService(
		repository.NewUserRepository(conn),
		repository.NewSessionRepository(conn),
		authenticating.NewNotifier(),
		cfg,
	)

	user, err := authenticator.CreateUser(ctx, domain.CreateUserRequest{
		Name:     viper.GetString("SEED_ADMIN_NAME"),
		Email:    viper.GetString("SEED_ADMIN_EMAIL"),
		Password: viper.GetString("SEED_ADMIN_PASSWORD"),
		RoleID:   domain.RoleAdmin,
	})
	if errors.Is(err, authenticating.ErrUserAlreadyExists) {
		logrus.WithField("email", viper.GetString("SEED_ADMIN_EMAIL")).Info("Administrador já existe")
		return nil
	}
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"email":   user.Email,
	}).Info("Administrador criado")
	return nil
}

// seedDemo grava lojas e vendas em uma única transação; não faz nada se já houver lojas
func seedDemo(ctx context.Context, conn *postgres.Connection) error {
	existing, err := repository.NewStoreRepository(conn).List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logrus.WithField("stores", len(existing)).Info("Banco já possui lojas, dados de demonstração ignorados")
		return nil
	}

	startTime := time.Now()

	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		storeRepo := repository.NewStoreRepository(tx)
		saleRepo := repository.NewSaleRepository(tx)

		storeIDs := make([]string, 0, len(demoStores))
		for _, s := range demoStores {
			store := storing.NewStoreBuilder(s.name, s.location).
				WithManager(s.manager).
				WithPhone(s.phone).
				WithEmail(s.email).
				Build()

			created, err := storeRepo.Create(ctx, store)
			if err != nil {
				return fmt.Errorf("loja %s: %w", s.name, err)
			}
			storeIDs = append(storeIDs, created.ID)
		}

		for i, s := range demoSales {
			month, err := utils.ParseMonth(s.month)
			if err != nil {
				return err
			}

			_, err = saleRepo.Create(ctx, &domain.Sale{
				StoreID:  storeIDs[s.store],
				ItemName: s.item,
				Month:    month,
				Quantity: s.quantity,
				Price:    s.price,
			})
			if err != nil {
				return fmt.Errorf("venda %d: %w", i+1, err)
			}
		}

		logrus.WithFields(logrus.Fields{
			"stores":  len(storeIDs),
			"sales":   len(demoSales),
			"elapsed": time.Since(startTime).String(),
		}).Info("Dados de demonstração inseridos")

		return nil
	})
}
