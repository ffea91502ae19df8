package jobs

import (
	"fmt"
	"log/slog"

	"logistics/internal/core/application/services"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	licenseExpiryJob *LicenseExpiryJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(drivers services.DriverService, logger *slog.Logger) *JobManager {
	return &JobManager{
		licenseExpiryJob: NewLicenseExpiryJob(drivers, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.licenseExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start license expiry job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.licenseExpiryJob.Stop()
}
