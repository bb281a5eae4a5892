package actions

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/and161185/dashboard/internal/auth"
	"github.com/and161185/dashboard/internal/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

var loginForm = url.Values{
	"email":    {"admin@example.com"},
	"password": {"secret123"},
}

func TestAuthenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockProvider(ctrl)

	session := &auth.Session{AccountID: "a1", Email: "admin@example.com", Token: "t"}
	provider.EXPECT().
		SignIn(gomock.Any(), "credentials", map[string]string{"email": "admin@example.com", "password": "secret123"}).
		Return(session, nil)

	state, got, err := Authenticate(context.Background(), provider, loginForm)
	require.NoError(t, err)
	require.Empty(t, state)
	require.Equal(t, session, got)
}

func TestAuthenticateBadCredentials(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"typed kind", &auth.SignInError{Kind: auth.KindCredentialsSignin}},
		{"wrapped typed kind", errors.Join(errors.New("sign in"), &auth.SignInError{Kind: auth.KindCredentialsSignin})},
		{"message marker", errors.New("Read more at https://errors.authjs.dev#CredentialsSignin")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			provider := mocks.NewMockProvider(ctrl)
			provider.EXPECT().SignIn(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.err)

			state, session, err := Authenticate(context.Background(), provider, loginForm)
			require.NoError(t, err)
			require.Equal(t, "CredentialSignin", state)
			require.Nil(t, session)
		})
	}
}

func TestAuthenticatePropagatesOtherErrors(t *testing.T) {
	tests := []error{
		errors.New("Failed to fetch user."),
		&auth.SignInError{Kind: auth.KindUnsupportedStrategy},
	}

	for _, providerErr := range tests {
		ctrl := gomock.NewController(t)
		provider := mocks.NewMockProvider(ctrl)
		provider.EXPECT().SignIn(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, providerErr)

		state, _, err := Authenticate(context.Background(), provider, loginForm)
		require.Same(t, providerErr, err)
		require.Empty(t, state)
	}
}
