package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/propaint/estimate-api/internal/domain"
)

// PriceSyncJobName is the name of the supplier price sync job.
const PriceSyncJobName = "price_sync"

// PriceSyncService defines the interface for syncing material prices from the
// supplier price feed. It lets the job call the service without importing the
// service package directly.
type PriceSyncService interface {
	// SyncSupplierPrices pulls the supplier price list and updates matching
	// material lines. Returns a summary of the sync run.
	SyncSupplierPrices(ctx context.Context) (*domain.PriceSyncResultDTO, error)
}

// PriceSyncJob refreshes the material catalog from the supplier price feed.
type PriceSyncJob struct {
	catalog PriceSyncService
	logger  *zap.Logger
	timeout time.Duration
}

// NewPriceSyncJob creates a new supplier price sync job.
// The timeout controls how long a sync run is allowed to take.
func NewPriceSyncJob(catalog PriceSyncService, logger *zap.Logger, timeout time.Duration) *PriceSyncJob {
	return &PriceSyncJob{
		catalog: catalog,
		logger:  logger,
		timeout: timeout,
	}
}

// Run executes the price sync job.
// This is called by the scheduler according to the cron expression.
func (j *PriceSyncJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()
	j.logger.Info("starting supplier price sync job")

	result, err := j.catalog.SyncSupplierPrices(ctx)
	if err != nil {
		j.logger.Error("supplier price sync failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return
	}

	j.logger.Info("supplier price sync job completed",
		zap.Int("rows_fetched", result.RowsFetched),
		zap.Int("materials_updated", result.MaterialsUpdated),
		zap.Duration("duration", time.Since(start)))
}

// RegisterPriceSyncJob registers the supplier price sync job with the scheduler.
// The cronExpr should be a valid cron expression (e.g., "0 6 * * *" for every
// day at 06:00). If runStartupSync is true, a sync also runs immediately in a
// background goroutine so it doesn't block API startup.
func RegisterPriceSyncJob(scheduler *Scheduler, catalog PriceSyncService, logger *zap.Logger, cronExpr string, timeout time.Duration, runStartupSync bool) error {
	job := NewPriceSyncJob(catalog, logger, timeout)

	if runStartupSync {
		go job.Run()
	}

	return scheduler.AddJob(PriceSyncJobName, cronExpr, job.Run)
}
