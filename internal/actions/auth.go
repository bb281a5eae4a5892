package actions

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/and161185/dashboard/internal/auth"
)

// CredentialSignin is the form state returned for rejected credentials.
const CredentialSignin = "CredentialSignin"

// Authenticate signs in with the submitted fields. Rejected credentials give the
// CredentialSignin state; any other failure is returned as is.
func Authenticate(ctx context.Context, provider auth.Provider, fields url.Values) (string, *auth.Session, error) {
	credentials := make(map[string]string, len(fields))
	for k := range fields {
		credentials[k] = fields.Get(k)
	}

	session, err := provider.SignIn(ctx, auth.StrategyCredentials, credentials)
	if err != nil {
		if isCredentialsSignin(err) {
			return CredentialSignin, nil, nil
		}
		return "", nil, err
	}

	return "", session, nil
}

func isCredentialsSignin(err error) bool {
	var signInErr *auth.SignInError
	if errors.As(err, &signInErr) {
		return signInErr.Kind == auth.KindCredentialsSignin
	}
	// providers outside this module only report the kind in the message
	return strings.Contains(err.Error(), string(auth.KindCredentialsSignin))
}
