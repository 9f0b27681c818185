package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/deniz/uniscope/internal/pkg/logger"
)

// refreshTimeout bounds a single scheduled import run.
const refreshTimeout = 10 * time.Minute

// Scheduler re-imports the dataset file on a cron schedule so deployments
// tracking a regularly refreshed export stay current without restarts.
type Scheduler struct {
	cron     *cron.Cron
	importer *Importer
	path     string
	schedule string
}

// NewScheduler creates a scheduler that imports path on the given standard
// 5-field cron expression.
func NewScheduler(importer *Importer, path, schedule string) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		importer: importer,
		path:     path,
		schedule: schedule,
	}
}

// Start registers the refresh job and starts the cron loop. The schedule is
// validated here, so a bad expression fails startup instead of silently
// never firing.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.runImport); err != nil {
		return fmt.Errorf("invalid dataset refresh schedule %q: %w", s.schedule, err)
	}

	s.cron.Start()
	logger.Info().Str("schedule", s.schedule).Str("path", s.path).Msg("Dataset refresh scheduled")
	return nil
}

// Stop halts the cron loop and waits for a running import to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info().Msg("Dataset refresh scheduler stopped")
}

func (s *Scheduler) runImport() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	logger.Info().Str("path", s.path).Msg("Scheduled dataset refresh starting")

	stats, err := s.importer.ImportFile(ctx, s.path)
	if err != nil {
		logger.Error().Err(err).Str("path", s.path).Msg("Scheduled dataset refresh failed")
		return
	}

	logger.Info().
		Int("created", stats.Created).
		Int("updated", stats.Updated).
		Int("skipped", stats.Skipped).
		Int("errors", stats.Errors).
		Msg("Scheduled dataset refresh finished")
}
