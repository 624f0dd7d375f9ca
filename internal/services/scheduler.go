package services

import (
	"time"

	"go.uber.org/zap"
)

// Scheduler triggers the nightly batch recalculation. It checks once a
// minute whether the configured UTC trigger time has arrived; the batch
// itself refuses overlapping runs.
type Scheduler struct {
	log        *zap.Logger
	batch      *BatchService
	recalcTime string // "HH:MM" UTC
}

func NewScheduler(log *zap.Logger, batch *BatchService, recalcTime string) *Scheduler {
	return &Scheduler{
		log:        log,
		batch:      batch,
		recalcTime: recalcTime,
	}
}

// Start runs the scheduler in a goroutine.
func (s *Scheduler) Start() {
	s.log.Info("Starting recalculation scheduler...", zap.String("recalc_time", s.recalcTime))
	go func() {
		// Ticker will fire on every minute.
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for {
			<-ticker.C
			s.runCheck()
		}
	}()
}

func (s *Scheduler) runCheck() {
	now := time.Now().UTC()
	currentTime := now.Format("15:04")
	s.log.Debug("Running scheduler check", zap.String("utc_time", currentTime))

	if currentTime != s.recalcTime {
		return
	}

	go func() {
		if err := s.batch.Run(now); err != nil {
			s.log.Error("Scheduled batch recalculation failed", zap.Error(err))
		}
	}()
}
