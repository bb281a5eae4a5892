package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/and161185/dashboard/internal/errs"
	"github.com/and161185/dashboard/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStorage struct {
	db *pgxpool.Pool
}

func (store *PostgresStorage) initSchema(ctx context.Context) error {
	const initSchemaQuery = `
	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL DEFAULT '',
		email TEXT UNIQUE,
		password TEXT NOT NULL DEFAULT '',
		customer_id TEXT NOT NULL DEFAULT '',
		amount BIGINT NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'paid')),
		date DATE NOT NULL DEFAULT CURRENT_DATE
	);`

	_, err := store.db.Exec(ctx, initSchemaQuery)
	return err
}

func NewPostgreStorage(ctx context.Context, DatabaseURI string) (*PostgresStorage, error) {
	db, err := pgxpool.New(ctx, DatabaseURI)
	if err != nil {
		return nil, err
	}

	storage := &PostgresStorage{db: db}

	if err := storage.Ping(ctx); err != nil {
		db.Close()
		return nil, err
	}

	if err := storage.initSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return storage, nil
}

func (store *PostgresStorage) Ping(ctx context.Context) error {
	return store.db.Ping(ctx)
}

func (store *PostgresStorage) Close() {
	store.db.Close()
}

func (store *PostgresStorage) InsertUser(ctx context.Context, user model.User) error {
	const query = `
		INSERT INTO users (customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4)`

	_, err := store.db.Exec(ctx, query, user.CustomerID, user.Amount, string(user.Status), user.Date)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (store *PostgresStorage) UpdateUser(ctx context.Context, user model.User) error {
	const query = `
		UPDATE users
		SET customer_id = $1, amount = $2, status = $3
		WHERE id = $4`

	if !isUUID(user.ID) {
		return errs.ErrUserNotFound
	}

	// an id matching no row is not an error
	_, err := store.db.Exec(ctx, query, user.CustomerID, user.Amount, string(user.Status), user.ID)
	if err != nil {
		if isInvalidID(err) {
			return errs.ErrUserNotFound
		}
		return fmt.Errorf("update user: %w", err)
	}

	return nil
}

func (store *PostgresStorage) DeleteUser(ctx context.Context, id string) error {
	const query = `DELETE FROM users WHERE id = $1`

	if !isUUID(id) {
		return errs.ErrUserNotFound
	}

	_, err := store.db.Exec(ctx, query, id)
	if err != nil {
		if isInvalidID(err) {
			return errs.ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}

	return nil
}

func (store *PostgresStorage) FilterUsers(ctx context.Context, query string, limit, offset int) ([]model.UserRow, error) {
	const selectQuery = `
		SELECT users.id::text, users.name, users.email
		FROM users
		WHERE
			users.name::text ILIKE $1 OR
			users.email::text ILIKE $1
		ORDER BY users.name ASC
		LIMIT $2 OFFSET $3`

	rows, err := store.db.Query(ctx, selectQuery, likePattern(query), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("filter users: %w", err)
	}
	defer rows.Close()

	var users []model.UserRow
	for rows.Next() {
		var u model.UserRow
		var email *string
		if err := rows.Scan(&u.ID, &u.Name, &email); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		if email != nil {
			u.Email = *email
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration: %w", err)
	}

	return users, nil
}

func (store *PostgresStorage) CountUsers(ctx context.Context, query string) (int, error) {
	const countQuery = `
		SELECT COUNT(*)
		FROM users
		WHERE
			users.name::text ILIKE $1 OR
			users.email::text ILIKE $1`

	var count int
	if err := store.db.QueryRow(ctx, countQuery, likePattern(query)).Scan(&count); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}

	return count, nil
}

func (store *PostgresStorage) GetUserByEmail(ctx context.Context, email string) (model.Account, error) {
	const query = `SELECT id::text, name, email, password FROM users WHERE email = $1`

	var account model.Account

	err := store.db.QueryRow(ctx, query, email).Scan(&account.ID, &account.Name, &account.Email, &account.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Account{}, errs.ErrUserNotFound
		}
		return model.Account{}, fmt.Errorf("get user by email: %w", err)
	}

	return account, nil
}

// CreateAccount inserts a dashboard login and returns its id.
func (store *PostgresStorage) CreateAccount(ctx context.Context, name, email, passwordHash string) (string, error) {
	const query = `
		INSERT INTO users (name, email, password, date)
		VALUES ($1, $2, $3, CURRENT_DATE)
		RETURNING id::text`

	var id string
	err := store.db.QueryRow(ctx, query, name, email, passwordHash).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return "", errs.ErrEmailAlreadyExists
		}
		return "", fmt.Errorf("create account: %w", err)
	}

	return id, nil
}

func likePattern(query string) string {
	return "%" + query + "%"
}

func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// isInvalidID reports whether postgres rejected the id as a malformed uuid.
func isInvalidID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.InvalidTextRepresentation
}
