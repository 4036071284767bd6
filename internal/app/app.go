package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/budgetms/budgetvote/internal/adapter/postgres"
	"github.com/budgetms/budgetvote/internal/adapter/postgres/budgetitem"
	"github.com/budgetms/budgetvote/internal/adapter/postgres/vote"
	"github.com/budgetms/budgetvote/internal/adapter/postgres/votingsession"
	"github.com/budgetms/budgetvote/internal/config"
	"github.com/budgetms/budgetvote/internal/service/budget"
	"github.com/budgetms/budgetvote/internal/service/voting"
	"github.com/budgetms/budgetvote/internal/transport/middleware"
	"github.com/budgetms/budgetvote/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger and the database pool, wires repositories, services, and
// handlers, and serves HTTP until ctx is cancelled.
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

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	sessionRepo := votingsession.New(pool)
	voteRepo := vote.New(pool)
	itemRepo := budgetitem.New(pool)
	txManager := postgres.NewTxManager(pool)

	votingSvc := voting.NewService(logger, sessionRepo, voteRepo, itemRepo, txManager, cfg.Voting)
	budgetSvc := budget.NewService(logger, itemRepo)

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	router := rest.NewRouter(rest.RouterDeps{
		Voting: rest.NewVotingHandler(votingSvc, logger),
		Budget: rest.NewBudgetHandler(budgetSvc, logger),
		Health: rest.NewHealthHandler(pool, BuildVersion()),
		Base: middleware.Chain(
			middleware.RequestID,
			middleware.Recovery(logger),
			middleware.Logger(logger),
			middleware.CORS(cfg.CORS),
		),
		SubmitLimit: limiter.Limit(cfg.Voting.SubmitRatePerMinute),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}
