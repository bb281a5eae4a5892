// Command seed creates an account that can sign in to the dashboard.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"time"

	"github.com/and161185/dashboard/internal/errs"
	"github.com/and161185/dashboard/internal/storage"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	logger := zap.Must(zap.NewProduction()).Sugar()
	defer logger.Sync()

	databaseURI := flag.String("d", os.Getenv("DATABASE_URI"), "DB connection string")
	name := flag.String("name", "Admin", "account name")
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "account password")
	flag.Parse()

	if *email == "" || *password == "" {
		logger.Fatal("email and password required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := storage.NewPostgreStorage(ctx, *databaseURI)
	if err != nil {
		logger.Fatalf("connect: %v", err)
	}
	defer store.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		logger.Fatalf("hash password: %v", err)
	}

	id, err := store.CreateAccount(ctx, *name, *email, string(hash))
	if err != nil {
		if errors.Is(err, errs.ErrEmailAlreadyExists) {
			logger.Warnf("account %s already exists", *email)
			return
		}
		logger.Fatalf("create account: %v", err)
	}

	logger.Infow("account created", "id", id, "email", *email)
}
