package selling

import (
	"errors"
	"fmt"

	"github.com/vfg2006/retail-sales-api/internal/domain"
	"github.com/vfg2006/retail-sales-api/pkg/apiErrors"
)

var (
	ErrSaleNotFound      = errors.New("venda não encontrada")
	ErrStoreNotFound     = errors.New("loja não encontrada")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// SaleError é um erro com contexto adicional para operações de venda
type SaleError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *SaleError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SaleError) Unwrap() error {
	return e.Err
}

func NewSaleError(baseErr error, code string, details string) *SaleError {
	return &SaleError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// BatchError informa o que já foi gravado quando um lote falha no meio.
// As vendas anteriores à falha permanecem no banco.
type BatchError struct {
	Err         error
	Created     []*domain.Sale
	FailedIndex int
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("falha ao gravar o item %d do lote (%d gravados): %s", e.FailedIndex+1, len(e.Created), e.Err.Error())
}

func (e *BatchError) Unwrap() error {
	return e.Err
}

// databaseError mantém ErrDatabaseOperation e a causa do driver na cadeia
func databaseError(cause error, details string) *SaleError {
	return NewSaleError(fmt.Errorf("%w: %w", ErrDatabaseOperation, cause), apiErrors.ErrDatabaseOperation, details)
}
