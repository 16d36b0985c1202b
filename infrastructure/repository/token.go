package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-insights-pipeline/infrastructure/database/postgres"
	"github.com/vfg2006/ads-insights-pipeline/internal/domain"
)

const tokensTable = "meta_tokens"

type TokenRepository interface {
	FetchToken(ctx context.Context, userID, appID string) (*domain.Token, error)
	SaveToken(ctx context.Context, token *domain.Token) error
	ListActive(ctx context.Context, appID string, now time.Time) ([]*domain.Token, error)
}

type tokenRepository struct {
	conn postgres.Queryer
}

func NewTokenRepository(conn postgres.Queryer) TokenRepository {
	return &tokenRepository{
		conn: conn,
	}
}

func (r *tokenRepository) FetchToken(ctx context.Context, userID, appID string) (*domain.Token, error) {
	query, args, err := squirrel.
		Select("user_id", "app_id", "access_token", "expires_at").
		From(tokensTable).
		Where(squirrel.Eq{"user_id": userID, "app_id": appID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	token, err := scanToken(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.TokenNotFoundError{UserID: userID, AppID: appID}
		}
		return nil, errors.Wrap(err, "erro ao buscar token")
	}

	return token, nil
}

func (r *tokenRepository) SaveToken(ctx context.Context, token *domain.Token) error {
	var expiresAt interface{}
	if !token.ExpiresAt.IsZero() {
		expiresAt = token.ExpiresAt
	}

	query, args, err := squirrel.
		Insert(tokensTable).
		Columns("user_id", "app_id", "access_token", "expires_at", "updated_at").
		Values(token.UserID, token.AppID, token.AccessToken, expiresAt, squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (user_id, app_id) DO UPDATE SET " +
			"access_token = EXCLUDED.access_token, " +
			"expires_at = EXCLUDED.expires_at, " +
			"updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "erro ao salvar token do usuário %s", token.UserID)
	}

	return nil
}

// ListActive lista os tokens do app que ainda estão dentro da janela de validade
func (r *tokenRepository) ListActive(ctx context.Context, appID string, now time.Time) ([]*domain.Token, error) {
	query, args, err := squirrel.
		Select("user_id", "app_id", "access_token", "expires_at").
		From(tokensTable).
		Where(squirrel.Eq{"app_id": appID}).
		Where(squirrel.Or{
			squirrel.Eq{"expires_at": nil},
			squirrel.Gt{"expires_at": now},
		}).
		OrderBy("user_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar tokens")
	}
	defer rows.Close()

	tokens := make([]*domain.Token, 0)
	for rows.Next() {
		token, err := scanToken(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao ler token")
		}
		tokens = append(tokens, token)
	}

	return tokens, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanToken(row scanner) (*domain.Token, error) {
	token := &domain.Token{}
	var expiresAt sql.NullTime

	if err := row.Scan(&token.UserID, &token.AppID, &token.AccessToken, &expiresAt); err != nil {
		return nil, err
	}

	if expiresAt.Valid {
		token.ExpiresAt = expiresAt.Time
	}

	return token, nil
}
