// Package actions implements the dashboard form submissions.
package actions

import (
	"context"
	"net/url"
	"time"

	"github.com/and161185/dashboard/internal/model"
	"github.com/and161185/dashboard/internal/validate"
	"go.uber.org/zap"
)

const UsersPath = "/dashboard/users"

const dateLayout = "2006-01-02"

type Storage interface {
	InsertUser(ctx context.Context, user model.User) error
	UpdateUser(ctx context.Context, user model.User) error
	DeleteUser(ctx context.Context, id string) error
}

//go:generate mockgen -destination=../mocks/mock_invalidator.go -package=mocks github.com/and161185/dashboard/internal/actions Invalidator

// Invalidator drops any cached rendering of a path.
type Invalidator interface {
	InvalidatePath(path string)
}

type Mutations struct {
	storage     Storage
	invalidator Invalidator
	logger      *zap.SugaredLogger
	now         func() time.Time
}

func NewMutations(storage Storage, invalidator Invalidator, logger *zap.SugaredLogger) *Mutations {
	return &Mutations{
		storage:     storage,
		invalidator: invalidator,
		logger:      logger,
		now:         time.Now,
	}
}

// CreateUser inserts a user dated today. prev is the state the form was rendered with.
func (m *Mutations) CreateUser(ctx context.Context, prev State, fields url.Values) Result {
	input, fieldErrs := validate.UserForm(fields)
	if fieldErrs != nil {
		return validationFailed(fieldErrs, "Missing Fields. Failed to Create User.")
	}

	user := model.User{
		CustomerID: input.CustomerID,
		Amount:     input.AmountInCents(),
		Status:     input.Status,
		Date:       m.now().UTC().Format(dateLayout),
	}

	if err := m.storage.InsertUser(ctx, user); err != nil {
		m.logger.Errorf("create user: %v", err)
		return storageFailed("Database Error: Failed to Create User.")
	}

	m.invalidator.InvalidatePath(UsersPath)
	return success(UsersPath)
}

// UpdateUser rewrites customer, amount and status of the user with id.
func (m *Mutations) UpdateUser(ctx context.Context, id string, prev State, fields url.Values) Result {
	input, fieldErrs := validate.UserForm(fields)
	if fieldErrs != nil {
		return validationFailed(fieldErrs, "Missing Fields. Failed to Update User.")
	}

	user := model.User{
		ID:         id,
		CustomerID: input.CustomerID,
		Amount:     input.AmountInCents(),
		Status:     input.Status,
	}

	if err := m.storage.UpdateUser(ctx, user); err != nil {
		m.logger.Errorf("update user %s: %v", id, err)
		return storageFailed("Database Error: Failed to Update User.")
	}

	m.invalidator.InvalidatePath(UsersPath)
	return success(UsersPath)
}

// DeleteUser removes the user with id. The caller stays on the current page.
func (m *Mutations) DeleteUser(ctx context.Context, id string) Result {
	if err := m.storage.DeleteUser(ctx, id); err != nil {
		m.logger.Errorf("delete user %s: %v", id, err)
		return storageFailed("Database Error: Failed to Delete User.")
	}

	m.invalidator.InvalidatePath(UsersPath)
	return success("")
}
