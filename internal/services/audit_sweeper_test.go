package services

import (
	"testing"
	"time"
)

func TestNewAuditSweeperDefaultsAndSchedule(t *testing.T) {
	s := NewAuditSweeper(nil, nil, SweeperConfig{})

	if s.cfg.Interval != time.Hour {
		t.Fatalf("interval = %v, want 1h default", s.cfg.Interval)
	}
	if s.cfg.Retention != 90*24*time.Hour {
		t.Fatalf("retention = %v, want 90d default", s.cfg.Retention)
	}
	if got := len(s.cron.Entries()); got != 1 {
		t.Fatalf("cron entries = %d, want exactly one sweep job", got)
	}
}

func TestNewAuditSweeperAcceptsShortInterval(t *testing.T) {
	s := NewAuditSweeper(nil, nil, SweeperConfig{Interval: 5 * time.Second})

	if got := len(s.cron.Entries()); got != 1 {
		t.Fatalf("cron entries = %d, want 1", got)
	}
}
