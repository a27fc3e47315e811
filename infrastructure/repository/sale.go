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
	"github.com/vfg2006/retail-sales-api/pkg/utils"
)

const (
	salesTable = "sales"
)

var saleColumns = []string{"id", "store_id", "item_name", "month", "quantity", "price", "created_at"}

var saleWithStoreColumns = []string{
	"s.id", "s.store_id", "s.item_name", "s.month", "s.quantity", "s.price", "s.created_at",
	"st.id", "st.name",
}

type SaleRepository interface {
	List(ctx context.Context, filter domain.SaleFilter) ([]*domain.SaleWithStore, error)
	ListPage(ctx context.Context, filter domain.SaleFilter, limit, offset int) ([]*domain.SaleWithStore, error)
	Count(ctx context.Context, filter domain.SaleFilter) (int, error)
	GetByID(ctx context.Context, id string) (*domain.SaleWithStore, error)
	Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error)
	Update(ctx context.Context, sale *domain.Sale) (*domain.Sale, error)
	Delete(ctx context.Context, id string) error
}

type saleRepository struct {
	conn postgres.Queryer
}

func NewSaleRepository(conn postgres.Queryer) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

// buildSalesQuery monta a consulta de vendas com a loja dona, do mês mais
// recente para o mais antigo. limit <= 0 devolve todas as linhas.
func buildSalesQuery(filter domain.SaleFilter, limit, offset int) (string, []interface{}, error) {
	builder := squirrel.
		Select(saleWithStoreColumns...).
		From("sales s").
		Join("stores st ON st.id = s.store_id")

	builder = applySaleFilter(builder, filter).
		OrderBy("s.month DESC", "s.created_at DESC", "s.id ASC")

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
		if offset > 0 {
			builder = builder.Offset(uint64(offset))
		}
	}

	return builder.PlaceholderFormat(squirrel.Dollar).ToSql()
}

func buildCountSalesQuery(filter domain.SaleFilter) (string, []interface{}, error) {
	builder := squirrel.
		Select("COUNT(*)").
		From("sales s")

	return applySaleFilter(builder, filter).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// applySaleFilter combina os filtros informados com AND
func applySaleFilter(builder squirrel.SelectBuilder, filter domain.SaleFilter) squirrel.SelectBuilder {
	if filter.StoreID != "" {
		builder = builder.Where(squirrel.Eq{"s.store_id": filter.StoreID})
	}
	if filter.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"s.month": filter.StartDate.Format(utils.DateLayout)})
	}
	if filter.EndDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"s.month": filter.EndDate.Format(utils.DateLayout)})
	}
	if item := strings.TrimSpace(filter.Item); item != "" {
		builder = builder.Where(squirrel.ILike{"s.item_name": "%" + escapeLike(item) + "%"})
	}
	return builder
}

// escapeLike impede que % e _ digitados pelo usuário virem curingas
func escapeLike(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(value)
}

func (r *saleRepository) List(ctx context.Context, filter domain.SaleFilter) ([]*domain.SaleWithStore, error) {
	return r.ListPage(ctx, filter, 0, 0)
}

func (r *saleRepository) ListPage(ctx context.Context, filter domain.SaleFilter, limit, offset int) ([]*domain.SaleWithStore, error) {
	query, args, err := buildSalesQuery(filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.SaleWithStore, 0)
	for rows.Next() {
		sale, err := scanSaleWithStore(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}

func (r *saleRepository) Count(ctx context.Context, filter domain.SaleFilter) (int, error) {
	query, args, err := buildCountSalesQuery(filter)
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar vendas: %w", err)
	}

	return total, nil
}

func (r *saleRepository) GetByID(ctx context.Context, id string) (*domain.SaleWithStore, error) {
	query, args, err := squirrel.
		Select(saleWithStoreColumns...).
		From("sales s").
		Join("stores st ON st.id = s.store_id").
		Where(squirrel.Eq{"s.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	sale, err := scanSaleWithStore(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear venda: %w", err)
	}

	return sale, nil
}

func (r *saleRepository) Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	query, args, err := squirrel.
		Insert(salesTable).
		Columns("store_id", "item_name", "month", "quantity", "price").
		Values(sale.StoreID, sale.ItemName, sale.Month.Format(utils.DateLayout), sale.Quantity, sale.Price).
		Suffix("RETURNING " + strings.Join(saleColumns, ", ")).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	created, err := scanSale(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir venda: %w", translatePQError(err))
	}

	return created, nil
}

func (r *saleRepository) Update(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	query, args, err := squirrel.
		Update(salesTable).
		Set("store_id", sale.StoreID).
		Set("item_name", sale.ItemName).
		Set("month", sale.Month.Format(utils.DateLayout)).
		Set("quantity", sale.Quantity).
		Set("price", sale.Price).
		Where(squirrel.Eq{"id": sale.ID}).
		Suffix("RETURNING " + strings.Join(saleColumns, ", ")).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	updated, err := scanSale(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao atualizar venda: %w", translatePQError(err))
	}

	return updated, nil
}

func (r *saleRepository) Delete(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Delete(salesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao excluir venda: %w", err)
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

func scanSale(row rowScanner) (*domain.Sale, error) {
	sale := &domain.Sale{}
	err := row.Scan(
		&sale.ID,
		&sale.StoreID,
		&sale.ItemName,
		&sale.Month,
		&sale.Quantity,
		&sale.Price,
		&sale.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return sale, nil
}

func scanSaleWithStore(row rowScanner) (*domain.SaleWithStore, error) {
	sale := &domain.SaleWithStore{}
	err := row.Scan(
		&sale.ID,
		&sale.StoreID,
		&sale.ItemName,
		&sale.Month,
		&sale.Quantity,
		&sale.Price,
		&sale.CreatedAt,
		&sale.Store.ID,
		&sale.Store.Name,
	)
	if err != nil {
		return nil, err
	}
	return sale, nil
}
