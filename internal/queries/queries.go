// Package queries holds the read side of the users dashboard. Results are never
// memoized so every call reflects the current table contents.
package queries

import (
	"context"
	"errors"

	"github.com/and161185/dashboard/internal/errs"
	"github.com/and161185/dashboard/internal/model"
	"go.uber.org/zap"
)

type Storage interface {
	FilterUsers(ctx context.Context, query string, limit, offset int) ([]model.UserRow, error)
	CountUsers(ctx context.Context, query string) (int, error)
	GetUserByEmail(ctx context.Context, email string) (model.Account, error)
}

type Queries struct {
	storage      Storage
	itemsPerPage int
	logger       *zap.SugaredLogger
}

func New(storage Storage, itemsPerPage int, logger *zap.SugaredLogger) *Queries {
	return &Queries{
		storage:      storage,
		itemsPerPage: itemsPerPage,
		logger:       logger,
	}
}

func (q *Queries) ItemsPerPage() int {
	return q.itemsPerPage
}

// FetchFilteredUsers returns one page of users whose name or email contains query,
// ordered by name. currentPage is 1-based.
func (q *Queries) FetchFilteredUsers(ctx context.Context, query string, currentPage int) ([]model.UserRow, error) {
	if currentPage < 1 {
		currentPage = 1
	}
	offset := (currentPage - 1) * q.itemsPerPage

	users, err := q.storage.FilterUsers(ctx, query, q.itemsPerPage, offset)
	if err != nil {
		q.logger.Errorf("Database Error: %v", err)
		return nil, errs.ErrFetchUsers
	}

	return users, nil
}

func (q *Queries) FetchUsersPages(ctx context.Context, query string) (int, error) {
	count, err := q.storage.CountUsers(ctx, query)
	if err != nil {
		q.logger.Errorf("Database Error: %v", err)
		return 0, errs.ErrFetchUsersPages
	}

	return TotalPages(count, q.itemsPerPage), nil
}

// GetUser returns nil when no user has the email.
func (q *Queries) GetUser(ctx context.Context, email string) (*model.Account, error) {
	account, err := q.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, nil
		}
		q.logger.Errorf("Failed to fetch user: %v", err)
		return nil, errs.ErrFetchUser
	}

	return &account, nil
}

func TotalPages(count, itemsPerPage int) int {
	return (count + itemsPerPage - 1) / itemsPerPage
}
