package jobs

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/application/services"

	"github.com/robfig/cron/v3"
)

// LicenseExpiryJob sweeps active drivers with expired licenses to off duty.
// Runs hourly; an expired license discovered mid-hour is caught on the next
// sweep.
type LicenseExpiryJob struct {
	drivers services.DriverService
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewLicenseExpiryJob creates the hourly license sweep job.
func NewLicenseExpiryJob(drivers services.DriverService, logger *slog.Logger) *LicenseExpiryJob {
	return &LicenseExpiryJob{
		drivers: drivers,
		cron:    cron.New(),
		logger:  logger.With("component", "license_expiry_job"),
	}
}

// Start schedules the sweep at the top of every hour and runs one sweep
// immediately so a restart does not leave expired licenses unprocessed.
func (j *LicenseExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", j.sweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "License expiry job started (running hourly)")
	go j.sweep()
	return nil
}

// Stop stops the license expiry job.
func (j *LicenseExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "License expiry job stopped")
}

func (j *LicenseExpiryJob) sweep() {
	ctx := context.Background()

	affected, err := j.drivers.SweepExpiredLicenses(ctx, time.Now().UTC())
	if err != nil {
		j.logger.ErrorContext(ctx, "License expiry sweep failed", "error", err)
		return
	}

	if affected > 0 {
		j.logger.InfoContext(ctx, "License expiry sweep moved drivers off duty", "count", affected)
	}
}
