package main

import (
	"context"

	"github.com/markethub/offers/internal/config"
	"github.com/markethub/offers/internal/database"
	"github.com/markethub/offers/internal/repository"
	"github.com/markethub/offers/internal/scheduler"
	"github.com/markethub/offers/internal/service"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			database.NewConnection,
			repository.NewTransactionManager,
			repository.NewAccountRepository,
			repository.NewCategoryRepository,
			repository.NewOfferRepository,
			repository.NewTransactionRepository,
			service.NewLedger,
			service.NewStockManager,
			service.NewPurchaseService,
			service.NewOfferService,
			scheduler.NewArchiver,
		),
		fx.Invoke(startArchiver),
	).Run()
}

func startArchiver(archiver *scheduler.Archiver, lc fx.Lifecycle) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return archiver.Start()
		},
		OnStop: func(ctx context.Context) error {
			archiver.Stop()
			return nil
		},
	})
}
