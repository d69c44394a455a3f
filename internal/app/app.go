// Package app wires configuration, storage, services, and transport into a
// running HTTP server.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	postgres "github.com/zututors/zututors-backend/internal/adapter/postgres"
	boardrepo "github.com/zututors/zututors-backend/internal/adapter/postgres/board"
	studentrepo "github.com/zututors/zututors-backend/internal/adapter/postgres/student"
	tutorrepo "github.com/zututors/zututors-backend/internal/adapter/postgres/tutor"
	"github.com/zututors/zututors-backend/internal/auth"
	"github.com/zututors/zututors-backend/internal/config"
	"github.com/zututors/zututors-backend/internal/service/identity"
	"github.com/zututors/zututors-backend/internal/service/lifecycle"
	"github.com/zututors/zututors-backend/internal/service/thread"
	"github.com/zututors/zututors-backend/internal/transport/middleware"
	"github.com/zututors/zututors-backend/internal/transport/rest"
	"github.com/zututors/zututors-backend/migrations"
)

// Run is the application entry point. It loads configuration, connects to
// the database, applies pending migrations, wires services and transport,
// and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	boards := boardrepo.New(pool)
	students := studentrepo.New(pool)
	tutors := tutorrepo.New(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	identities := identity.NewResolver(logger, students, tutors)
	lifecycleSvc := lifecycle.NewService(logger, boards)
	threadSvc := thread.NewService(logger, boards, identities)

	mux := rest.NewRouter(rest.Handlers{
		Requests:      rest.NewRequestHandler(lifecycleSvc, logger),
		Conversations: rest.NewConversationHandler(threadSvc, logger),
		Tutors:        rest.NewTutorHandler(identities, logger),
		Health:        rest.NewHealthHandler(pool, BuildVersion()),
	})

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.Server.RatePerMinute),
		middleware.Auth(jwtManager),
	)(mux)

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}

// migrate applies pending goose migrations. goose works over database/sql,
// so this uses a short-lived stdlib connection separate from the pgx pool.
func migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	for _, r := range results {
		slog.Info("applied migration", slog.String("source", r.Source.Path))
	}

	return nil
}
