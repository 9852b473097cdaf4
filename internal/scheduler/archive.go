package scheduler

import (
	"context"

	"github.com/markethub/offers/internal/service"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// archiveSpec matches the fixed sweep interval of the offer archiver.
const archiveSpec = "@every 5m"

// Archiver periodically marks offers whose cutoff has passed. The sweep is
// idempotent, so an overlapping or repeated run is harmless.
type Archiver struct {
	cron   *cron.Cron
	offers service.OfferService
	logger *zap.Logger
}

func NewArchiver(offers service.OfferService, logger *zap.Logger) *Archiver {
	return &Archiver{cron: cron.New(), offers: offers, logger: logger}
}

func (a *Archiver) Start() error {
	_, err := a.cron.AddFunc(archiveSpec, func() {
		if err := a.offers.ArchiveOffers(context.Background()); err != nil {
			a.logger.Error("archive sweep failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	a.cron.Start()
	a.logger.Info("Offer archiver started", zap.String("spec", archiveSpec))

	return nil
}

func (a *Archiver) Stop() {
	ctx := a.cron.Stop()
	<-ctx.Done()
	a.logger.Info("Offer archiver stopped")
}
