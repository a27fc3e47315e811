// Package selling contém o lançamento e a manutenção de vendas
package selling

import (
	"context"
	"errors"
	"strings"

	"github.com/vfg2006/retail-sales-api/infrastructure/repository"
	"github.com/vfg2006/retail-sales-api/internal/domain"
	"github.com/vfg2006/retail-sales-api/pkg/apiErrors"
	"github.com/vfg2006/retail-sales-api/pkg/log"
	"github.com/vfg2006/retail-sales-api/pkg/utils"
)

type Seller interface {
	CreateBatch(ctx context.Context, req domain.SaleBatchRequest) ([]*domain.Sale, error)
	GetSale(ctx context.Context, id string) (*domain.SaleWithStore, error)
	UpdateSale(ctx context.Context, req domain.UpdateSaleRequest) (*domain.Sale, error)
	DeleteSale(ctx context.Context, id string) error
	ListStoreSales(ctx context.Context, storeID string) ([]*domain.SaleWithStore, error)
}

type Service struct {
	saleRepo  repository.SaleRepository
	storeRepo repository.StoreRepository
}

func NewService(saleRepo repository.SaleRepository, storeRepo repository.StoreRepository) Seller {
	return &Service{
		saleRepo:  saleRepo,
		storeRepo: storeRepo,
	}
}

// CreateBatch grava uma venda por item, em sequência e sem transação. Uma falha
// no meio do lote devolve *BatchError com as vendas já gravadas.
func (s *Service) CreateBatch(ctx context.Context, req domain.SaleBatchRequest) ([]*domain.Sale, error) {
	if err := ValidateBatch(req); err != nil {
		return nil, err
	}

	if err := s.ensureStore(ctx, req.StoreID); err != nil {
		return nil, err
	}

	month, _ := utils.ParseMonth(req.Month)

	// As escritas seguem mesmo que o cliente desconecte
	writeCtx := context.WithoutCancel(ctx)
	logger := log.ForContext(ctx).WithField("store_id", req.StoreID)

	created := make([]*domain.Sale, 0, len(req.Items))
	for i, item := range req.Items {
		sale, err := s.saleRepo.Create(writeCtx, &domain.Sale{
			StoreID:  req.StoreID,
			ItemName: strings.TrimSpace(item.ItemName),
			Month:    month,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
		if err != nil {
			logger.WithError(err).Errorf("selling: lote interrompido no item %d de %d", i+1, len(req.Items))
			return created, &BatchError{
				Err:         databaseError(err, "Erro ao registrar venda"),
				Created:     created,
				FailedIndex: i,
			}
		}
		created = append(created, sale)
	}

	logger.Infof("Lote com %d vendas registrado", len(created))

	return created, nil
}

func (s *Service) GetSale(ctx context.Context, id string) (*domain.SaleWithStore, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, databaseError(err, "Erro ao buscar venda")
	}
	if sale == nil {
		return nil, NewSaleError(ErrSaleNotFound, apiErrors.ErrSaleNotFound, id)
	}
	return sale, nil
}

// UpdateSale aplica os campos informados sobre a venda atual e valida o resultado
func (s *Service) UpdateSale(ctx context.Context, req domain.UpdateSaleRequest) (*domain.Sale, error) {
	current, err := s.GetSale(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	sale := current.Sale

	if req.StoreID != nil && *req.StoreID != sale.StoreID {
		if err := s.ensureStore(ctx, *req.StoreID); err != nil {
			return nil, err
		}
		sale.StoreID = *req.StoreID
	}
	if req.ItemName != nil {
		sale.ItemName = strings.TrimSpace(*req.ItemName)
	}
	if req.Month != nil {
		month, err := utils.ParseDate(*req.Month)
		if err != nil || month == nil {
			return nil, domain.NewValidationError("month", msgInvalidSaleMonth)
		}
		sale.Month = utils.FirstDayOfMonth(*month)
	}
	if req.Quantity != nil {
		sale.Quantity = *req.Quantity
	}
	if req.Price != nil {
		sale.Price = *req.Price
	}

	if err := validateLineItem(-1, sale.ItemName, sale.Quantity, sale.Price); err != nil {
		return nil, err
	}

	updated, err := s.saleRepo.Update(ctx, &sale)
	if err != nil {
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return nil, NewSaleError(ErrStoreNotFound, apiErrors.ErrStoreNotFound, sale.StoreID)
		}
		return nil, databaseError(err, "Erro ao atualizar venda")
	}
	if updated == nil {
		return nil, NewSaleError(ErrSaleNotFound, apiErrors.ErrSaleNotFound, req.ID)
	}

	return updated, nil
}

func (s *Service) DeleteSale(ctx context.Context, id string) error {
	err := s.saleRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return NewSaleError(ErrSaleNotFound, apiErrors.ErrSaleNotFound, id)
	}
	if err != nil {
		return databaseError(err, "Erro ao excluir venda")
	}

	log.ForContext(ctx).WithField("sale_id", id).Info("Venda excluída")
	return nil
}

// ListStoreSales devolve as vendas da loja, do mês mais recente para o mais antigo
func (s *Service) ListStoreSales(ctx context.Context, storeID string) ([]*domain.SaleWithStore, error) {
	sales, err := s.saleRepo.List(ctx, domain.SaleFilter{StoreID: storeID})
	if err != nil {
		return nil, databaseError(err, "Erro ao listar vendas da loja")
	}
	return sales, nil
}

func (s *Service) ensureStore(ctx context.Context, storeID string) error {
	store, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return databaseError(err, "Erro ao buscar loja")
	}
	if store == nil {
		return NewSaleError(ErrStoreNotFound, apiErrors.ErrStoreNotFound, storeID)
	}
	return nil
}
