package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/retail-sales-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-sales-api/internal/domain"
)

const (
	sessionsTable = "sessions"
)

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	Revoke(ctx context.Context, id string, at time.Time) error
}

type sessionRepository struct {
	conn postgres.Queryer
}

func NewSessionRepository(conn postgres.Queryer) SessionRepository {
	return &sessionRepository{
		conn: conn,
	}
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.Session) error {
	query, args, err := squirrel.
		Insert(sessionsTable).
		Columns("id", "user_id", "created_at", "expires_at").
		Values(session.ID, session.UserID, session.CreatedAt, session.ExpiresAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao criar sessão: %w", translatePQError(err))
	}

	return nil
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "created_at", "expires_at", "revoked_at").
		From(sessionsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var session domain.Session
	var revokedAt sql.NullTime
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&session.ID,
		&session.UserID,
		&session.CreatedAt,
		&session.ExpiresAt,
		&revokedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar sessão: %w", err)
	}

	if revokedAt.Valid {
		session.RevokedAt = &revokedAt.Time
	}

	return &session, nil
}

// Revoke é idempotente: uma sessão já revogada mantém o instante original
func (r *sessionRepository) Revoke(ctx context.Context, id string, at time.Time) error {
	query, args, err := squirrel.
		Update(sessionsTable).
		Set("revoked_at", at).
		Where(squirrel.Eq{"id": id, "revoked_at": nil}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao revogar sessão: %w", err)
	}

	return nil
}
