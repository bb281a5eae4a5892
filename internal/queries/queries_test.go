package queries

import (
	"context"
	"errors"
	"testing"

	"github.com/and161185/dashboard/internal/errs"
	"github.com/and161185/dashboard/internal/mocks"
	"github.com/and161185/dashboard/internal/model"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func setup(t *testing.T) (*Queries, *mocks.MockStorage) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockStorage := mocks.NewMockStorage(ctrl)

	return New(mockStorage, 6, zaptest.NewLogger(t).Sugar()), mockStorage
}

func TestFetchFilteredUsersFirstPage(t *testing.T) {
	q, mock := setup(t)

	rows := []model.UserRow{
		{ID: "1", Name: "Jane Doe", Email: "jane@example.com"},
		{ID: "2", Name: "John Doe", Email: "john@example.com"},
	}
	mock.EXPECT().
		FilterUsers(gomock.Any(), "doe", 6, 0).
		Return(rows, nil)

	users, err := q.FetchFilteredUsers(context.Background(), "doe", 1)
	require.NoError(t, err)
	require.Equal(t, rows, users)
}

func TestFetchFilteredUsersOffset(t *testing.T) {
	q, mock := setup(t)

	mock.EXPECT().FilterUsers(gomock.Any(), "doe", 6, 6).Return(nil, nil)
	mock.EXPECT().FilterUsers(gomock.Any(), "doe", 6, 0).Return(nil, nil)

	_, err := q.FetchFilteredUsers(context.Background(), "doe", 2)
	require.NoError(t, err)

	_, err = q.FetchFilteredUsers(context.Background(), "doe", 0)
	require.NoError(t, err)
}

func TestFetchFilteredUsersPageSizeFromConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mocks.NewMockStorage(ctrl)
	q := New(mock, 10, zaptest.NewLogger(t).Sugar())

	mock.EXPECT().FilterUsers(gomock.Any(), "", 10, 20).Return(nil, nil)

	_, err := q.FetchFilteredUsers(context.Background(), "", 3)
	require.NoError(t, err)
}

func TestFetchFilteredUsersFailure(t *testing.T) {
	q, mock := setup(t)

	mock.EXPECT().
		FilterUsers(gomock.Any(), "doe", 6, 0).
		Return([]model.UserRow{{ID: "1"}}, errors.New("conn reset"))

	users, err := q.FetchFilteredUsers(context.Background(), "doe", 1)
	require.ErrorIs(t, err, errs.ErrFetchUsers)
	require.EqualError(t, err, "Failed to fetch users.")
	require.Nil(t, users)
}

func TestFetchUsersPages(t *testing.T) {
	tests := []struct {
		count int
		pages int
	}{
		{0, 0},
		{1, 1},
		{6, 1},
		{7, 2},
		{12, 2},
		{13, 3},
	}

	for _, tt := range tests {
		q, mock := setup(t)
		mock.EXPECT().CountUsers(gomock.Any(), "doe").Return(tt.count, nil)

		pages, err := q.FetchUsersPages(context.Background(), "doe")
		require.NoError(t, err)
		require.Equal(t, tt.pages, pages, "count=%d", tt.count)
	}
}

func TestFetchUsersPagesFailure(t *testing.T) {
	q, mock := setup(t)

	mock.EXPECT().CountUsers(gomock.Any(), "doe").Return(0, errors.New("timeout"))

	_, err := q.FetchUsersPages(context.Background(), "doe")
	require.ErrorIs(t, err, errs.ErrFetchUsersPages)
}

func TestGetUser(t *testing.T) {
	q, mock := setup(t)

	mock.EXPECT().
		GetUserByEmail(gomock.Any(), "jane@example.com").
		Return(model.Account{ID: "1", Name: "Jane Doe", Email: "jane@example.com"}, nil)

	account, err := q.GetUser(context.Background(), "jane@example.com")
	require.NoError(t, err)
	require.Equal(t, "1", account.ID)
}

func TestGetUserNotFound(t *testing.T) {
	q, mock := setup(t)

	mock.EXPECT().
		GetUserByEmail(gomock.Any(), "ghost@example.com").
		Return(model.Account{}, errs.ErrUserNotFound)

	account, err := q.GetUser(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	require.Nil(t, account)
}

func TestGetUserFailure(t *testing.T) {
	q, mock := setup(t)

	mock.EXPECT().
		GetUserByEmail(gomock.Any(), "jane@example.com").
		Return(model.Account{}, errors.New("conn reset"))

	_, err := q.GetUser(context.Background(), "jane@example.com")
	require.EqualError(t, err, "Failed to fetch user.")
}
