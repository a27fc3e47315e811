// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/retail-sales-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-sales-api/internal/domain"
)

const (
	storesTable = "stores"
)

var storeColumns = []string{"id", "name", "location", "manager", "phone", "email", "created_at"}

type StoreRepository interface {
	List(ctx context.Context) ([]*domain.Store, error)
	GetByID(ctx context.Context, id string) (*domain.Store, error)
	Create(ctx context.Context, store *domain.Store) (*domain.Store, error)
	Update(ctx context.Context, request *domain.UpdateStoreRequest) (*domain.Store, error)
	Delete(ctx context.Context, id string) error
}

type storeRepository struct {
	conn postgres.Queryer
}

func NewStoreRepository(conn postgres.Queryer) StoreRepository {
	return &storeRepository{
		conn: conn,
	}
}

func (r *storeRepository) List(ctx context.Context) ([]*domain.Store, error) {
	query, args, err := squirrel.
		Select(storeColumns...).
		From(storesTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	stores := make([]*domain.Store, 0)
	for rows.Next() {
		store, err := scanStore(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear loja: %w", err)
		}
		stores = append(stores, store)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return stores, nil
}

func (r *storeRepository) GetByID(ctx context.Context, id string) (*domain.Store, error) {
	query, args, err := squirrel.
		Select(storeColumns...).
		From(storesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	store, err := scanStore(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear loja: %w", err)
	}

	return store, nil
}

// Create insere apenas as colunas preenchidas; opcionais nulos ficam de fora do INSERT
func (r *storeRepository) Create(ctx context.Context, store *domain.Store) (*domain.Store, error) {
	query, args, err := buildInsertStoreQuery(store)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	created, err := scanStore(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir loja: %w", translatePQError(err))
	}

	return created, nil
}

func buildInsertStoreQuery(store *domain.Store) (string, []interface{}, error) {
	values := map[string]interface{}{
		"name":     store.Name,
		"location": store.Location,
	}

	if store.Manager != nil {
		values["manager"] = *store.Manager
	}
	if store.Phone != nil {
		values["phone"] = *store.Phone
	}
	if store.Email != nil {
		values["email"] = *store.Email
	}

	return squirrel.
		Insert(storesTable).
		SetMap(values).
		Suffix("RETURNING id, name, location, manager, phone, email, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *storeRepository) Update(ctx context.Context, request *domain.UpdateStoreRequest) (*domain.Store, error) {
	query, args, err := buildUpdateStoreQuery(request)
	if errors.Is(err, errNoChanges) {
		return r.GetByID(ctx, request.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	store, err := scanStore(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao atualizar loja: %w", translatePQError(err))
	}

	return store, nil
}

var errNoChanges = errors.New("nenhum campo para atualizar")

// buildUpdateStoreQuery grava os textos aparados, como no cadastro; opcional
// vazio vira NULL
func buildUpdateStoreQuery(request *domain.UpdateStoreRequest) (string, []interface{}, error) {
	builder := squirrel.
		Update(storesTable).
		Where(squirrel.Eq{"id": request.ID}).
		Suffix("RETURNING id, name, location, manager, phone, email, created_at").
		PlaceholderFormat(squirrel.Dollar)

	changed := false
	if request.Name != nil {
		builder = builder.Set("name", strings.TrimSpace(*request.Name))
		changed = true
	}
	if request.Location != nil {
		builder = builder.Set("location", strings.TrimSpace(*request.Location))
		changed = true
	}
	if request.Manager != nil {
		builder = builder.Set("manager", nullIfEmpty(*request.Manager))
		changed = true
	}
	if request.Phone != nil {
		builder = builder.Set("phone", nullIfEmpty(*request.Phone))
		changed = true
	}
	if request.Email != nil {
		builder = builder.Set("email", nullIfEmpty(*request.Email))
		changed = true
	}

	if !changed {
		return "", nil, errNoChanges
	}
	return builder.ToSql()
}

func (r *storeRepository) Delete(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Delete(storesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao excluir loja: %w", translatePQError(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// rowScanner cobre *sql.Row e *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStore(row rowScanner) (*domain.Store, error) {
	store := &domain.Store{}
	var manager, phone, email sql.NullString

	err := row.Scan(
		&store.ID,
		&store.Name,
		&store.Location,
		&manager,
		&phone,
		&email,
		&store.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	store.Manager = stringPtrFromNull(manager)
	store.Phone = stringPtrFromNull(phone)
	store.Email = stringPtrFromNull(email)

	return store, nil
}

func stringPtrFromNull(value sql.NullString) *string {
	if !value.Valid || value.String == "" {
		return nil
	}
	s := value.String
	return &s
}

func nullIfEmpty(value string) interface{} {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return value
}
