package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/pkondrashkov/accountd/internal/domain/errors"
	"github.com/pkondrashkov/accountd/internal/domain/model"
	"github.com/pkondrashkov/accountd/internal/domain/repository"
)

// Pool abstracts the pgx connection pool so tests can substitute a mock.
type Pool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   Pool
	logger *slog.Logger
}

var _ repository.Factory = (*Storage)(nil)

type userRepository struct {
	storage *Storage
}

type tokenRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Tokens() repository.TokenRepository {
	return &tokenRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            username TEXT UNIQUE NOT NULL,
            first_name TEXT NOT NULL DEFAULT '',
            last_name TEXT NOT NULL DEFAULT '',
            email TEXT NOT NULL DEFAULT '',
            password_hash TEXT NOT NULL,
            last_login TIMESTAMPTZ,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS auth_tokens (
            user_id BIGINT PRIMARY KEY REFERENCES users(id),
            key TEXT UNIQUE NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	s.logger.Info("database schema initialized", slog.Int("statements", len(statements)))
	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	const query = `INSERT INTO users (username, first_name, last_name, email, password_hash)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING id, created_at`
	created := *user
	err := r.storage.pool.QueryRow(ctx, query,
		user.Username, user.FirstName, user.LastName, user.Email, user.PasswordHash,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	created.LastLogin = nil
	return &created, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	const query = `SELECT id, username, first_name, last_name, email, password_hash, last_login, created_at
                   FROM users WHERE username=$1`
	return r.scanUser(r.storage.pool.QueryRow(ctx, query, username))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, username, first_name, last_name, email, password_hash, last_login, created_at
                   FROM users WHERE id=$1`
	return r.scanUser(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) TouchLastLogin(ctx context.Context, id int64) (time.Time, error) {
	const query = `UPDATE users SET last_login=NOW() WHERE id=$1 RETURNING last_login`
	var lastLogin time.Time
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&lastLogin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, domainErrors.ErrNotFound
		}
		return time.Time{}, err
	}
	return lastLogin, nil
}

func (r *userRepository) scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Username, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.LastLogin, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- TokenRepository implementation ---

// GetOrCreate inserts a token for the user or returns the existing one. The
// no-op DO UPDATE makes the winning row visible to concurrent losers, so two
// simultaneous first logins observe the same key.
func (r *tokenRepository) GetOrCreate(ctx context.Context, userID int64, key string) (*model.Token, bool, error) {
	const query = `INSERT INTO auth_tokens (user_id, key) VALUES ($1, $2)
                   ON CONFLICT (user_id) DO UPDATE SET key = auth_tokens.key
                   RETURNING key, created_at`
	token := model.Token{UserID: userID}
	err := r.storage.pool.QueryRow(ctx, query, userID, key).Scan(&token.Key, &token.CreatedAt)
	if err != nil {
		return nil, false, err
	}
	return &token, token.Key == key, nil
}

func (r *tokenRepository) GetByKey(ctx context.Context, key string) (*model.Token, error) {
	const query = `SELECT user_id, key, created_at FROM auth_tokens WHERE key=$1`
	var token model.Token
	err := r.storage.pool.QueryRow(ctx, query, key).Scan(&token.UserID, &token.Key, &token.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &token, nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
