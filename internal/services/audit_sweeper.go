package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/healthcare24/backend/internal/infrastructure/audit"
)

// SweeperConfig controls audit journal retention.
type SweeperConfig struct {
	Interval  time.Duration
	Retention time.Duration
}

// AuditSweeper periodically trims aged records from the audit journal so the
// local BoltDB file stays bounded.
type AuditSweeper struct {
	journal *audit.Journal
	logger  *zap.Logger
	cron    *cron.Cron
	cfg     SweeperConfig
}

func NewAuditSweeper(journal *audit.Journal, logger *zap.Logger, cfg SweeperConfig) *AuditSweeper {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}
	if cfg.Retention <= 0 {
		cfg.Retention = 90 * 24 * time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	sweeper := &AuditSweeper{
		journal: journal,
		logger:  logger,
		cfg:     cfg,
		cron:    cron.New(cron.WithSeconds()),
	}

	schedule := fmt.Sprintf("@every %ds", int(cfg.Interval.Seconds()))
	if _, err := sweeper.cron.AddFunc(schedule, sweeper.sweep); err != nil {
		logger.Error("audit sweeper schedule rejected",
			zap.String("schedule", schedule),
			zap.Error(err))
	}

	return sweeper
}

// Start launches the cron scheduler.
func (s *AuditSweeper) Start() {
	if s == nil || s.cron == nil {
		return
	}
	s.cron.Start()
	s.logger.Info("audit sweeper started")
}

// Stop gracefully stops the scheduler.
func (s *AuditSweeper) Stop(ctx context.Context) {
	if s == nil || s.cron == nil {
		return
	}
	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	s.logger.Info("audit sweeper stopped")
}

func (s *AuditSweeper) sweep() {
	if s.journal == nil {
		return
	}
	cutoff := time.Now().Add(-s.cfg.Retention)
	removed, err := s.journal.Cleanup(cutoff)
	if err != nil {
		s.logger.Error("audit cleanup failed", zap.Error(err))
		return
	}
	if removed > 0 {
		s.logger.Info("audit records trimmed", zap.Int("removed", removed))
	}
}
