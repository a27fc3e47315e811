// Package storing contém o cadastro e a manutenção de lojas
package storing

import (
	"context"
	"errors"

	"github.com/vfg2006/retail-sales-api/infrastructure/repository"
	"github.com/vfg2006/retail-sales-api/internal/domain"
	"github.com/vfg2006/retail-sales-api/pkg/apiErrors"
	"github.com/vfg2006/retail-sales-api/pkg/log"
)

type Storer interface {
	ListStores(ctx context.Context) ([]*domain.Store, error)
	GetStore(ctx context.Context, id string) (*domain.Store, error)
	CreateStore(ctx context.Context, req domain.CreateStoreRequest) (*domain.Store, error)
	UpdateStore(ctx context.Context, req domain.UpdateStoreRequest) (*domain.Store, error)
	DeleteStore(ctx context.Context, id string) error
}

type Service struct {
	storeRepo repository.StoreRepository
}

func NewService(storeRepo repository.StoreRepository) Storer {
	return &Service{
		storeRepo: storeRepo,
	}
}

func (s *Service) ListStores(ctx context.Context) ([]*domain.Store, error) {
	stores, err := s.storeRepo.List(ctx)
	if err != nil {
		return nil, databaseError(err, "Erro ao listar lojas")
	}
	return stores, nil
}

func (s *Service) GetStore(ctx context.Context, id string) (*domain.Store, error) {
	store, err := s.storeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, databaseError(err, "Erro ao buscar loja")
	}
	if store == nil {
		return nil, NewStoreError(ErrStoreNotFound, apiErrors.ErrStoreNotFound, id)
	}
	return store, nil
}

// CreateStore valida antes de qualquer escrita; só os opcionais preenchidos são gravados
func (s *Service) CreateStore(ctx context.Context, req domain.CreateStoreRequest) (*domain.Store, error) {
	if err := ValidateStore(req); err != nil {
		return nil, err
	}

	store, err := s.storeRepo.Create(ctx, FromRequest(req).Build())
	if err != nil {
		return nil, databaseError(err, "Erro ao criar loja")
	}

	log.ForContext(ctx).WithField("store_id", store.ID).Info("Loja criada")

	return store, nil
}

func (s *Service) UpdateStore(ctx context.Context, req domain.UpdateStoreRequest) (*domain.Store, error) {
	if err := ValidateStoreUpdate(req); err != nil {
		return nil, err
	}

	store, err := s.storeRepo.Update(ctx, &req)
	if err != nil {
		return nil, databaseError(err, "Erro ao atualizar loja")
	}
	if store == nil {
		return nil, NewStoreError(ErrStoreNotFound, apiErrors.ErrStoreNotFound, req.ID)
	}

	return store, nil
}

// DeleteStore falha com conflito enquanto a loja tiver vendas
func (s *Service) DeleteStore(ctx context.Context, id string) error {
	err := s.storeRepo.Delete(ctx, id)
	switch {
	case err == nil:
		log.ForContext(ctx).WithField("store_id", id).Info("Loja excluída")
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return NewStoreError(ErrStoreNotFound, apiErrors.ErrStoreNotFound, id)
	case errors.Is(err, repository.ErrForeignKeyViolation):
		return NewStoreError(ErrStoreHasSales, apiErrors.ErrConflict, "Exclua as vendas da loja antes de removê-la")
	default:
		return databaseError(err, "Erro ao excluir loja")
	}
}
