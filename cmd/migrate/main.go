package main

import (
	"context"
	"log/slog"

	"pedido/config"
	logs "pedido/internal/infra/log"
	"pedido/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type migrateParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	DB     *gorm.DB
	Logger *slog.Logger
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		fx.Invoke(runMigrations),
		fx.NopLogger,
	).Run()
}

// runMigrations migrates once the database hook has pinged, then stops the app
func runMigrations(params migrateParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := postgres.Migrate(ctx, params.DB); err != nil {
				return err
			}
			params.Logger.InfoContext(ctx, "Migrations applied")

			return params.Shutdown()
		},
	})
}
