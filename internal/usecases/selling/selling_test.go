package selling

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-sales-api/infrastructure/repository"
	"github.com/vfg2006/retail-sales-api/infrastructure/repository/mocks"
	"github.com/vfg2006/retail-sales-api/internal/domain"
	"github.com/vfg2006/retail-sales-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func setupService(t *testing.T) (Seller, *mocks.MockSaleRepository, *mocks.MockStoreRepository) {
	ctrl := gomock.NewController(t)
	saleRepo := mocks.NewMockSaleRepository(ctrl)
	storeRepo := mocks.NewMockStoreRepository(ctrl)
	return NewService(saleRepo, storeRepo), saleRepo, storeRepo
}

func validBatch() domain.SaleBatchRequest {
	return domain.SaleBatchRequest{
		StoreID: "s1",
		Month:   "2024-03",
		Items: []domain.SaleLineItem{
			{ItemName: "Camisa", Quantity: 2, Price: 59.9},
			{ItemName: "Boné", Quantity: 1, Price: 25},
		},
	}
}

func TestValidateBatch(t *testing.T) {
	tests := []struct {
		name   string
		modify func(req *domain.SaleBatchRequest)
		field  string
	}{
		{name: "Válido", modify: func(req *domain.SaleBatchRequest) {}},
		{name: "Sem loja", modify: func(req *domain.SaleBatchRequest) { req.StoreID = "" }, field: "store_id"},
		{name: "Mês inválido", modify: func(req *domain.SaleBatchRequest) { req.Month = "março" }, field: "month"},
		{name: "Sem itens", modify: func(req *domain.SaleBatchRequest) { req.Items = nil }, field: "items"},
		{name: "Item sem nome", modify: func(req *domain.SaleBatchRequest) { req.Items[0].ItemName = " " }, field: "items[0].item_name"},
		{name: "Quantidade zero", modify: func(req *domain.SaleBatchRequest) { req.Items[1].Quantity = 0 }, field: "items[1].quantity"},
		{name: "Preço zero", modify: func(req *domain.SaleBatchRequest) { req.Items[1].Price = 0 }, field: "items[1].price"},
		{name: "Preço negativo", modify: func(req *domain.SaleBatchRequest) { req.Items[0].Price = -1 }, field: "items[0].price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validBatch()
			tt.modify(&req)

			err := ValidateBatch(req)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}

			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestCreateBatch_Sucesso(t *testing.T) {
	service, saleRepo, storeRepo := setupService(t)

	storeRepo.EXPECT().GetByID(gomock.Any(), "s1").Return(&domain.Store{ID: "s1"}, nil)

	gomock.InOrder(
		saleRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, sale *domain.Sale) (*domain.Sale, error) {
			assert.Equal(t, "Camisa", sale.ItemName)
			assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), sale.Month)
			sale.ID = "v1"
			return sale, nil
		}),
		saleRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, sale *domain.Sale) (*domain.Sale, error) {
			assert.Equal(t, "Boné", sale.ItemName)
			sale.ID = "v2"
			return sale, nil
		}),
	)

	sales, err := service.CreateBatch(context.Background(), validBatch())
	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Equal(t, "v1", sales[0].ID)
	assert.Equal(t, "v2", sales[1].ID)
}

func TestCreateBatch_ItemInvalidoNaoGravaNada(t *testing.T) {
	service, _, _ := setupService(t)

	req := validBatch()
	req.Items[1].Price = 0

	sales, err := service.CreateBatch(context.Background(), req)

	assert.Nil(t, sales)
	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "items[1].price", validationErr.Field)
}

func TestCreateBatch_LojaInexistente(t *testing.T) {
	service, _, storeRepo := setupService(t)

	storeRepo.EXPECT().GetByID(gomock.Any(), "s1").Return(nil, nil)

	_, err := service.CreateBatch(context.Background(), validBatch())

	assert.ErrorIs(t, err, ErrStoreNotFound)
}

func TestCreateBatch_FalhaNoMeioMantemGravados(t *testing.T) {
	service, saleRepo, storeRepo := setupService(t)

	req := validBatch()
	req.Items = append(req.Items, domain.SaleLineItem{ItemName: "Meia", Quantity: 3, Price: 9.9})

	storeRepo.EXPECT().GetByID(gomock.Any(), "s1").Return(&domain.Store{ID: "s1"}, nil)
	gomock.InOrder(
		saleRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Sale{ID: "v1"}, nil),
		saleRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("conexão perdida")),
	)

	sales, err := service.CreateBatch(context.Background(), req)

	var batchErr *BatchError
	require.ErrorAs(t, err, &batchErr)
	assert.Equal(t, 1, batchErr.FailedIndex)
	assert.Len(t, batchErr.Created, 1)
	assert.Len(t, sales, 1)

	var saleErr *SaleError
	require.ErrorAs(t, err, &saleErr)
	assert.Equal(t, apiErrors.ErrDatabaseOperation, saleErr.Code)
	assert.ErrorIs(t, err, ErrDatabaseOperation)
	assert.ErrorContains(t, err, "conexão perdida")
}

func TestCreateBatch_ClienteDesconectadoNaoCancelaEscritas(t *testing.T) {
	service, saleRepo, storeRepo := setupService(t)

	ctx, cancel := context.WithCancel(context.Background())

	storeRepo.EXPECT().GetByID(gomock.Any(), "s1").DoAndReturn(func(context.Context, string) (*domain.Store, error) {
		cancel()
		return &domain.Store{ID: "s1"}, nil
	})
	saleRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(writeCtx context.Context, sale *domain.Sale) (*domain.Sale, error) {
		assert.NoError(t, writeCtx.Err())
		return sale, nil
	}).Times(2)

	sales, err := service.CreateBatch(ctx, validBatch())
	require.NoError(t, err)
	assert.Len(t, sales, 2)
}

func TestParseBatchForm(t *testing.T) {
	form := url.Values{
		"store_id":  {"s1"},
		"month":     {"2024-05"},
		"item_name": {"Camisa", "", "Boné"},
		"quantity":  {"2", "", "1"},
		"price":     {"59,90", "", "1.234,50"},
	}

	req := ParseBatchForm(form)

	assert.Equal(t, "s1", req.StoreID)
	assert.Equal(t, "2024-05", req.Month)
	assert.Equal(t, []domain.SaleLineItem{
		{ItemName: "Camisa", Quantity: 2, Price: 59.9},
		{ItemName: "Boné", Quantity: 1, Price: 1234.5},
	}, req.Items)
	assert.InDelta(t, 1354.3, req.Total(), 1e-9)
}

func TestParseBatchForm_PrimeiraRegraSegueOrdemDosCampos(t *testing.T) {
	tests := []struct {
		name  string
		form  url.Values
		field string
	}{
		{
			name:  "Loja ausente vem antes de quantidade ilegível",
			form:  url.Values{"month": {"2024-05"}, "item_name": {"Camisa"}, "quantity": {"dois"}, "price": {"10"}},
			field: "store_id",
		},
		{
			name:  "Mês ausente vem antes de preço ilegível",
			form:  url.Values{"store_id": {"s1"}, "item_name": {"Camisa"}, "quantity": {"2"}, "price": {"dez"}},
			field: "month",
		},
		{
			name:  "Nome vazio vem antes de quantidade ilegível",
			form:  url.Values{"store_id": {"s1"}, "month": {"2024-05"}, "item_name": {""}, "quantity": {"dois"}, "price": {"10"}},
			field: "items[0].item_name",
		},
		{
			name:  "Quantidade ilegível",
			form:  url.Values{"store_id": {"s1"}, "month": {"2024-05"}, "item_name": {"Camisa"}, "quantity": {"dois"}, "price": {"10"}},
			field: "items[0].quantity",
		},
		{
			name:  "Preço ilegível",
			form:  url.Values{"store_id": {"s1"}, "month": {"2024-05"}, "item_name": {"Camisa"}, "quantity": {"2"}, "price": {"dez"}},
			field: "items[0].price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBatch(ParseBatchForm(tt.form))

			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		raw      string
		expected float64
		wantErr  bool
	}{
		{raw: "10", expected: 10},
		{raw: "10.5", expected: 10.5},
		{raw: "10,5", expected: 10.5},
		{raw: "1.999,999", expected: 2000},
		{raw: "0.004", expected: 0},
		{raw: "", wantErr: true},
		{raw: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			price, err := ParsePrice(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, price)
		})
	}
}

func TestUpdateSale(t *testing.T) {
	current := &domain.SaleWithStore{
		Sale: domain.Sale{ID: "v1", StoreID: "s1", ItemName: "Camisa", Month: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Quantity: 1, Price: 10},
	}

	t.Run("Atualiza campos informados", func(t *testing.T) {
		service, saleRepo, _ := setupService(t)
		quantity := 5
		month := "2024-02-20"

		saleRepo.EXPECT().GetByID(gomock.Any(), "v1").Return(current, nil)
		saleRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, sale *domain.Sale) (*domain.Sale, error) {
			assert.Equal(t, 5, sale.Quantity)
			assert.Equal(t, 10.0, sale.Price)
			assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), sale.Month)
			return sale, nil
		})

		sale, err := service.UpdateSale(context.Background(), domain.UpdateSaleRequest{ID: "v1", Quantity: &quantity, Month: &month})
		require.NoError(t, err)
		assert.Equal(t, 5, sale.Quantity)
		assert.Equal(t, 1, current.Quantity)
	})

	t.Run("Preço inválido não grava", func(t *testing.T) {
		service, saleRepo, _ := setupService(t)
		price := 0.0

		saleRepo.EXPECT().GetByID(gomock.Any(), "v1").Return(current, nil)

		_, err := service.UpdateSale(context.Background(), domain.UpdateSaleRequest{ID: "v1", Price: &price})
		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "price", validationErr.Field)
	})

	t.Run("Venda inexistente", func(t *testing.T) {
		service, saleRepo, _ := setupService(t)

		saleRepo.EXPECT().GetByID(gomock.Any(), "v9").Return(nil, nil)

		_, err := service.UpdateSale(context.Background(), domain.UpdateSaleRequest{ID: "v9"})
		assert.ErrorIs(t, err, ErrSaleNotFound)
	})
}

func TestDeleteSale(t *testing.T) {
	service, saleRepo, _ := setupService(t)

	saleRepo.EXPECT().Delete(gomock.Any(), "v1").Return(nil)
	saleRepo.EXPECT().Delete(gomock.Any(), "v2").Return(repository.ErrNotFound)

	assert.NoError(t, service.DeleteSale(context.Background(), "v1"))
	assert.ErrorIs(t, service.DeleteSale(context.Background(), "v2"), ErrSaleNotFound)
}
