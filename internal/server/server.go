package server

import (
	"context"
	"net/http"
	"time"

	"github.com/and161185/dashboard/internal/actions"
	"github.com/and161185/dashboard/internal/auth"
	"github.com/and161185/dashboard/internal/config"
	"github.com/and161185/dashboard/internal/deps"
	"github.com/and161185/dashboard/internal/middleware"
	"github.com/and161185/dashboard/internal/queries"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -destination=../mocks/mock_storage.go -package=mocks github.com/and161185/dashboard/internal/server Storage

type Storage interface {
	actions.Storage
	queries.Storage

	Ping(ctx context.Context) error
}

type Server struct {
	storage   Storage
	config    *config.Config
	deps      *deps.Deps
	mutations *actions.Mutations
	queries   *queries.Queries
	provider  auth.Provider
}

func NewServer(storage Storage, config *config.Config, deps *deps.Deps) *Server {
	q := queries.New(storage, config.ItemsPerPage, deps.Logger)

	return &Server{
		storage:   storage,
		config:    config,
		deps:      deps,
		mutations: actions.NewMutations(storage, deps.PageCache, deps.Logger),
		queries:   q,
		provider:  auth.NewCredentialsProvider(q, deps.TokenManager),
	}
}

func (srv *Server) buildRouter() http.Handler {
	router := chi.NewRouter()
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Recoverer)
	router.Use(chiMiddleware.StripSlashes)
	router.Use(middleware.LogMiddleware(srv.deps.Logger))
	router.Use(middleware.DecompressMiddleware)
	router.Use(middleware.CompressMiddleware(srv.deps.Logger))

	router.Get("/ping", srv.PingHandler)
	router.Post("/login", srv.LoginHandler)

	// dashboard requires a session
	router.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(srv.queries, srv.deps.TokenManager))

		r.With(middleware.NoStore, srv.deps.PageCache.Middleware(srv.listingKey)).Get(actions.UsersPath, srv.ListUsersHandler)
		r.With(middleware.NoStore).Get(actions.UsersPath+"/lookup", srv.LookupUserHandler)

		r.Post(actions.UsersPath, srv.CreateUserHandler)
		r.Post(actions.UsersPath+"/{id}", srv.UpdateUserHandler)
		r.Put(actions.UsersPath+"/{id}", srv.UpdateUserHandler)
		r.Post(actions.UsersPath+"/{id}/delete", srv.DeleteUserHandler)
		r.Delete(actions.UsersPath+"/{id}", srv.DeleteUserHandler)
	})

	return router
}

func (srv *Server) Run(ctx context.Context) error {
	router := srv.buildRouter()

	server := &http.Server{
		Addr:    srv.config.RunAddress,
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			srv.deps.Logger.Fatalf("server error: %v", err)
		}
	}()

	srv.deps.Logger.Infof("dashboard listening on %s", srv.config.RunAddress)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
