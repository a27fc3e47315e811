package reporting

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFilter  = errors.New("filtro inválido")
	ErrInvalidView    = errors.New("visão de relatório inválida")
	ErrStoreNotFound  = errors.New("loja não encontrada")
	ErrFetchingReport = errors.New("erro ao buscar dados do relatório")
)

// ReportError carrega o campo ou a etapa que falhou
type ReportError struct {
	Err     error
	Field   string
	Details string
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(baseErr error, field, details string) *ReportError {
	return &ReportError{
		Err:     baseErr,
		Field:   field,
		Details: details,
	}
}
