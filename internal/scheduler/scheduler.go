package scheduler

import (
	"context"
	"log/slog"
	"time"

	"mysched/internal/service"
)

// Scheduler periodically reloads the roster so the served snapshot tracks
// edits made to the source spreadsheet between manual refreshes.
type Scheduler struct {
	roster       *service.RosterService
	pollInterval time.Duration
	logger       *slog.Logger
}

func New(roster *service.RosterService, pollInterval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		roster:       roster,
		pollInterval: pollInterval,
		logger:       logger,
	}
}

func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	s.logger.Info("refresh scheduler started", slog.Duration("poll_interval", s.pollInterval))
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("refresh scheduler stopped")
			return
		case <-ticker.C:
			if err := s.roster.Refresh(ctx); err != nil {
				s.logger.Error("scheduled roster refresh failed", slog.String("error", err.Error()))
			}
		}
	}
}
