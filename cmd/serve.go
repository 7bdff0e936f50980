package main

import (
	"cla/internal/api"
	"cla/internal/cla"
	"cla/internal/config"
	"cla/internal/webhook"
	"cla/pkg/githubapi/githubrest"
	"cla/pkg/logger"
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server := api.NewServer(deps, api.NewOptions(cfg))

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
		Short: "Starts the webhook and CLA check API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			app, err := githubrest.NewApp(http.DefaultClient,
				cfg.GithubApp.BaseURL,
				cfg.GithubApp.ID,
				[]byte(cfg.GithubApp.PrivateKey))
			if err != nil {
				logger.Fatal(ctx, "could not create github app client", zap.Error(err))
			}

			claService := cla.New(strg)

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Webhook: webhook.New(claService, app),
				CLA:     claService,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
