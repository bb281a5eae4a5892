package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/and161185/dashboard/internal/config"
	"github.com/and161185/dashboard/internal/deps"
	"github.com/and161185/dashboard/internal/server"
	"github.com/and161185/dashboard/internal/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config, err := config.NewConfig()
	if err != nil {
		log.Fatal(err)
	}
	defer config.Logger.Sync()

	if config.SecretKey == "" {
		config.Logger.Fatal("session signing key is required (-k or SECRET_KEY)")
	}

	storage, err := storage.NewPostgreStorage(ctx, config.DatabaseURI)
	if err != nil {
		config.Logger.Fatal(err)
	}
	defer storage.Close()

	deps := deps.NewDependencies(config.Logger, config.SecretKey)

	srv := server.NewServer(storage, config, deps)
	if err := srv.Run(ctx); err != nil {
		config.Logger.Fatal(err)
	}
}
