package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/and161185/dashboard/internal/model"
	"golang.org/x/crypto/bcrypt"
)

const StrategyCredentials = "credentials"

type ErrorKind string

const (
	KindCredentialsSignin   ErrorKind = "CredentialsSignin"
	KindUnsupportedStrategy ErrorKind = "UnsupportedStrategy"
)

// SignInError is returned by a Provider when the exchange was refused.
type SignInError struct {
	Kind ErrorKind
	Err  error
}

func (e *SignInError) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *SignInError) Unwrap() error {
	return e.Err
}

type Session struct {
	AccountID string
	Email     string
	Token     string
	ExpiresAt time.Time
}

//go:generate mockgen -destination=../mocks/mock_auth.go -package=mocks github.com/and161185/dashboard/internal/auth Provider,AccountFinder

// Provider exchanges credentials for a session.
type Provider interface {
	SignIn(ctx context.Context, strategy string, credentials map[string]string) (*Session, error)
}

// AccountFinder returns nil without an error when no account has the email.
type AccountFinder interface {
	GetUser(ctx context.Context, email string) (*model.Account, error)
}

type CredentialsProvider struct {
	accounts AccountFinder
	tokens   *TokenManager
}

func NewCredentialsProvider(accounts AccountFinder, tokens *TokenManager) *CredentialsProvider {
	return &CredentialsProvider{accounts: accounts, tokens: tokens}
}

func (p *CredentialsProvider) SignIn(ctx context.Context, strategy string, credentials map[string]string) (*Session, error) {
	if strategy != StrategyCredentials {
		return nil, &SignInError{Kind: KindUnsupportedStrategy, Err: fmt.Errorf("strategy %q", strategy)}
	}

	creds := model.Credentials{Email: credentials["email"], Password: credentials["password"]}
	if creds.Email == "" || creds.Password == "" {
		return nil, &SignInError{Kind: KindCredentialsSignin}
	}

	account, err := p.accounts.GetUser(ctx, creds.Email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, &SignInError{Kind: KindCredentialsSignin}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(creds.Password)); err != nil {
		return nil, &SignInError{Kind: KindCredentialsSignin}
	}

	token, expiresAt, err := p.tokens.GenerateToken(account.ID, account.Email)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &Session{
		AccountID: account.ID,
		Email:     account.Email,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
