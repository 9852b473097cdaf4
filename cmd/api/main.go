package main

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/markethub/offers/internal/api"
	"github.com/markethub/offers/internal/api/middleware"
	v1 "github.com/markethub/offers/internal/api/v1"
	"github.com/markethub/offers/internal/config"
	"github.com/markethub/offers/internal/database"
	"github.com/markethub/offers/internal/repository"
	"github.com/markethub/offers/internal/service"
	"github.com/markethub/offers/pkg/storage"
	"github.com/markethub/offers/pkg/token"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			database.NewConnection,
			newFiberApp,
			newTokenMaker,
			newStorage,
			repository.NewTransactionManager,
			repository.NewAccountRepository,
			repository.NewCategoryRepository,
			repository.NewOfferRepository,
			repository.NewTransactionRepository,
			service.NewLedger,
			service.NewStockManager,
			service.NewPurchaseService,
			service.NewOfferService,
			service.NewAccountService,
			service.NewCategoryService,
			v1.NewHandler,
		),
		fx.Invoke(startServer),
	).Run()
}

func newFiberApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
}

func newTokenMaker(cfg *config.Config) *token.Maker {
	return token.NewMaker(cfg.Token.Secret, time.Duration(cfg.Token.TTLMinutes)*time.Minute)
}

func newStorage(cfg *config.Config) (*storage.Storage, error) {
	return storage.New(cfg.Storage.Dir, cfg.Storage.BaseURL)
}

func startServer(app *fiber.App, handler *v1.Handler, tokens *token.Maker,
	cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) {
	api.SetupRoutes(app, handler, tokens)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Starting API server", zap.String("port", cfg.API.Port))
			go func() {
				if err := app.Listen(cfg.API.Port); err != nil {
					logger.Error("Server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}
