package repository

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrNotFound indica que nenhuma linha foi afetada pela operação
	ErrNotFound = errors.New("registro não encontrado")
	// ErrForeignKeyViolation indica que a operação quebraria uma referência entre tabelas
	ErrForeignKeyViolation = errors.New("violação de chave estrangeira")
	// ErrUniqueViolation indica registro duplicado
	ErrUniqueViolation = errors.New("registro duplicado")
)

const (
	pqForeignKeyViolation = "23503"
	pqUniqueViolation     = "23505"
)

// translatePQError converte códigos do PostgreSQL em erros do repositório,
// preservando o erro original na cadeia
func translatePQError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case pqForeignKeyViolation:
		return errors.Join(ErrForeignKeyViolation, err)
	case pqUniqueViolation:
		return errors.Join(ErrUniqueViolation, err)
	}

	return err
}
