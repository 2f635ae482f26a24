package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"newsletter/internal/api"
	"newsletter/internal/api/handler/v1handler"
	"newsletter/internal/auth"
	"newsletter/internal/config"
	"newsletter/internal/newsletter"
	"newsletter/internal/subscription"
	"newsletter/internal/worker"
	"newsletter/pkg/email"
	"newsletter/pkg/email/postmark"
	"newsletter/pkg/logger"
	"newsletter/pkg/storage/postgres"
)

// mailClient builds the provider client with its per-send retry policy.
func mailClient(cfg *config.Config) email.Client {
	client := postmark.New(
		&http.Client{Timeout: cfg.Email.Timeout},
		cfg.Email.BaseURL,
		cfg.Email.ServerToken,
		cfg.Email.Sender,
	)

	return email.WithRetry(client, email.RetryOptions{
		MaxRetries:      cfg.Email.MaxRetries,
		InitialInterval: cfg.Email.RetryInitialInterval,
		MaxInterval:     cfg.Email.RetryMaxInterval,
	})
}

func setupServer(ctx context.Context, cfg *config.Config, pgsql *postgres.PgSQL, mail email.Client) func(ctx context.Context) { //nolint: lll
	server := api.NewServer(api.Deps{
		Deps: v1handler.Deps{
			Subscription: subscription.New(pgsql, subscription.NewOptions(cfg)),
			Newsletter:   newsletter.New(pgsql, mail),
			Auth:         auth.NewValidator(pgsql),
		},
	}, api.NewOptions(cfg))

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			pgsql, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			mail := mailClient(cfg)

			riverClient, err := worker.Start(ctx, pgsql.Pool, mail)
			if err != nil {
				logger.Fatal(ctx, "could not start background workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, pgsql, mail)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(ctx, "stopping background workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop background workers", zap.Error(err))
			}
		},
	}

	return cmd
}
