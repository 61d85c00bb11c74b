package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/shoplist-backend/internal/adapter/postgres"
	collabrepo "github.com/heartmarshall/shoplist-backend/internal/adapter/postgres/collaboration"
	itemrepo "github.com/heartmarshall/shoplist-backend/internal/adapter/postgres/item"
	listrepo "github.com/heartmarshall/shoplist-backend/internal/adapter/postgres/list"
	notificationrepo "github.com/heartmarshall/shoplist-backend/internal/adapter/postgres/notification"
	tokenrepo "github.com/heartmarshall/shoplist-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/shoplist-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/shoplist-backend/internal/auth"
	"github.com/heartmarshall/shoplist-backend/internal/config"
	authsvc "github.com/heartmarshall/shoplist-backend/internal/service/auth"
	collabsvc "github.com/heartmarshall/shoplist-backend/internal/service/collaboration"
	itemsvc "github.com/heartmarshall/shoplist-backend/internal/service/item"
	listsvc "github.com/heartmarshall/shoplist-backend/internal/service/list"
	notificationsvc "github.com/heartmarshall/shoplist-backend/internal/service/notification"
	reportsvc "github.com/heartmarshall/shoplist-backend/internal/service/report"
	usersvc "github.com/heartmarshall/shoplist-backend/internal/service/user"
	"github.com/heartmarshall/shoplist-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, applies migrations, wires repositories and services into
// the HTTP router, and serves until ctx is cancelled.
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

	if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	lists := listrepo.New(pool)
	items := itemrepo.New(pool)
	collabs := collabrepo.New(pool)
	notifications := notificationrepo.New(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, tokens, jwtManager, cfg.Auth)
	userService := usersvc.NewService(logger, users, cfg.Auth)
	listService := listsvc.NewService(logger, lists, collabs, items, users, txManager)
	itemService := itemsvc.NewService(logger, items, lists, collabs)
	collabService := collabsvc.NewService(logger, collabs, lists, users, notifications)
	reportService := reportsvc.NewService(logger, items, lists, collabs)
	notificationService := notificationsvc.NewService(logger, notifications)

	router := rest.NewRouter(rest.RouterDeps{
		Auth:           authService,
		Users:          userService,
		Lists:          listService,
		Items:          itemService,
		Collaborations: collabService,
		Reports:        reportService,
		Notifications:  notificationService,
		TokenValidator: authService,
		DB:             pool,
		Version:        BuildVersion(),
		Logger:         logger,
		CORS:           cfg.CORS,
		RateLimit:      cfg.RateLimit,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go cleanupExpiredTokens(ctx, logger, authService)

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
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}

// tokenCleanupInterval is how often expired refresh tokens are purged.
const tokenCleanupInterval = 24 * time.Hour

func cleanupExpiredTokens(ctx context.Context, logger *slog.Logger, svc *authsvc.Service) {
	ticker := time.NewTicker(tokenCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := svc.CleanupExpiredTokens(ctx)
			if err != nil {
				logger.ErrorContext(ctx, "cleanup expired tokens", slog.String("error", err.Error()))
				continue
			}
			if n > 0 {
				logger.Info("cleaned up expired refresh tokens", slog.Int("count", n))
			}
		}
	}
}
