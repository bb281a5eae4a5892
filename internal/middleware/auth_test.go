package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/and161185/dashboard/internal/auth"
	"github.com/and161185/dashboard/internal/model"
)

type mockAccounts struct {
	GetUserFunc func(ctx context.Context, email string) (*model.Account, error)
}

func (m *mockAccounts) GetUser(ctx context.Context, email string) (*model.Account, error) {
	return m.GetUserFunc(ctx, email)
}

func TestAuthMiddleware(t *testing.T) {
	tm := auth.NewTokenManager("test-secret")
	validToken, _, _ := tm.GenerateToken("1", "admin@example.com")

	found := &mockAccounts{
		GetUserFunc: func(ctx context.Context, email string) (*model.Account, error) {
			return &model.Account{ID: "1", Email: email}, nil
		},
	}

	tests := []struct {
		name           string
		authHeader     string
		cookie         string
		accounts       AccountFinder
		expectedStatus int
	}{
		{
			name:           "no header",
			accounts:       &mockAccounts{},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid token",
			authHeader:     "Bearer invalidtoken",
			accounts:       &mockAccounts{},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "account not found",
			authHeader: "Bearer " + validToken,
			accounts: &mockAccounts{
				GetUserFunc: func(ctx context.Context, email string) (*model.Account, error) {
					return nil, nil
				},
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "storage error",
			authHeader: "Bearer " + validToken,
			accounts: &mockAccounts{
				GetUserFunc: func(ctx context.Context, email string) (*model.Account, error) {
					return nil, errors.New("Failed to fetch user.")
				},
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "ok header",
			authHeader:     "Bearer " + validToken,
			accounts:       found,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "ok cookie",
			cookie:         validToken,
			accounts:       found,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tt.cookie})
			}

			rr := httptest.NewRecorder()
			mw := AuthMiddleware(tt.accounts, tm)
			handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				account, ok := r.Context().Value(AccountContextKey).(model.Account)
				if !ok || account.Email != "admin@example.com" {
					w.WriteHeader(http.StatusTeapot)
					return
				}
				w.WriteHeader(http.StatusOK)
			}))

			handler.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected %d, got %d", tt.expectedStatus, rr.Code)
			}
		})
	}
}
