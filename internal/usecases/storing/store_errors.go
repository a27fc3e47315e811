package storing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/retail-sales-api/pkg/apiErrors"
)

var (
	ErrStoreNotFound     = errors.New("loja não encontrada")
	ErrStoreHasSales     = errors.New("loja possui vendas registradas")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// StoreError é um erro com contexto adicional para operações de loja
type StoreError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *StoreError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func NewStoreError(baseErr error, code string, details string) *StoreError {
	return &StoreError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// databaseError mantém ErrDatabaseOperation e a causa do driver na cadeia
func databaseError(cause error, details string) *StoreError {
	return NewStoreError(fmt.Errorf("%w: %w", ErrDatabaseOperation, cause), apiErrors.ErrDatabaseOperation, details)
}
