package main

import (
	"context"
	"log/slog"
	"os"

	"car-rental-system/cmd/bootstrap"
	"car-rental-system/internal/handler/cli"

	"go.uber.org/fx"
)

func runMenu(lc fx.Lifecycle, shutdowner fx.Shutdowner, menu *cli.Menu, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("starting car rental system")
			go func() {
				if err := menu.Run(context.Background()); err != nil {
					logger.Error("menu loop failed", "error", err)
				}
				if err := shutdowner.Shutdown(); err != nil {
					logger.Error("shutdown failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("car rental system stopped")
			return nil
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.Module,
		// The DI event log would interleave with the interactive menu.
		fx.NopLogger,
		fx.Invoke(
			runMenu,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start application", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop application", "error", err)
	}
}
