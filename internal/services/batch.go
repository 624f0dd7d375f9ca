package services

import (
	"fmt"
	"sync"
	"time"

	"carelog-go/internal/models"
	"carelog-go/internal/repository"
	"carelog-go/internal/scoring"

	"go.uber.org/zap"
)

// BatchService recalculates scores for every active resident across all
// domains and configured windows. Each (resident, domain, window) analysis is
// independent of every other, so the work fans out over a bounded worker
// pool with no coordination beyond the job channel.
type BatchService struct {
	log        *zap.Logger
	engine     *scoring.Engine
	windowDays []int
	workers    int

	mu      sync.Mutex
	running bool
}

func NewBatchService(log *zap.Logger, engine *scoring.Engine, windowDays []int, workers int) *BatchService {
	if workers < 1 {
		workers = 1
	}
	if len(windowDays) == 0 {
		windowDays = []int{7}
	}
	return &BatchService{
		log:        log,
		engine:     engine,
		windowDays: windowDays,
		workers:    workers,
	}
}

type batchJob struct {
	resident   models.Resident
	domain     models.CareDomain
	windowDays int
}

// Run recalculates and upserts every score with windows ending at now.
// Only one run executes at a time; overlapping triggers are rejected.
func (s *BatchService) Run(now time.Time) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return fmt.Errorf("batch recalculation already in progress")
	}
	s.running = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	started := time.Now()

	residents, err := repository.GetActiveResidents()
	if err != nil {
		return fmt.Errorf("failed to load residents: %w", err)
	}
	domains, err := repository.GetDomains()
	if err != nil {
		return fmt.Errorf("failed to load domains: %w", err)
	}

	jobs := make(chan batchJob)
	var wg sync.WaitGroup
	var failed sync.Map

	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				if err := s.scoreOne(job, now); err != nil {
					failed.Store(fmt.Sprintf("%d/%s/%dd", job.resident.ID, job.domain.Name, job.windowDays), err)
					s.log.Error("Failed to score resident domain",
						zap.Int("residentID", job.resident.ID),
						zap.String("domain", job.domain.Name),
						zap.Int("windowDays", job.windowDays),
						zap.Error(err))
				}
			}
		}()
	}

	total := 0
	for _, resident := range residents {
		for _, domain := range domains {
			for _, days := range s.windowDays {
				jobs <- batchJob{resident: resident, domain: domain, windowDays: days}
				total++
			}
		}
	}
	close(jobs)
	wg.Wait()

	failures := 0
	failed.Range(func(_, _ any) bool {
		failures++
		return true
	})

	s.log.Info("Batch recalculation finished",
		zap.Int("jobs", total),
		zap.Int("failures", failures),
		zap.Duration("elapsed", time.Since(started)))

	if failures > 0 {
		return fmt.Errorf("batch recalculation completed with %d failure(s)", failures)
	}
	return nil
}

func (s *BatchService) scoreOne(job batchJob, now time.Time) error {
	end := now
	start := end.AddDate(0, 0, -job.windowDays)

	events, err := repository.GetEventsForWindow(job.resident.ID, job.domain.ID, start, end)
	if err != nil {
		return fmt.Errorf("failed to fetch events: %w", err)
	}

	result, err := s.engine.Analyze(job.resident.ID, job.domain.Name, events, job.windowDays)
	if err != nil {
		return err
	}

	return repository.UpsertDomainScore(toDomainScore(result, job.domain.ID, start, end))
}

// toDomainScore flattens an analysis result into its persisted row.
func toDomainScore(r scoring.AnalysisResult, domainID int, start, end time.Time) models.DomainScore {
	score := models.DomainScore{
		ResidentID:  r.ResidentID,
		DomainID:    domainID,
		WindowStart: start,
		WindowEnd:   end,
		WindowDays:  r.WindowDays,

		CRSLevel:       r.CareRisk.RiskLevel,
		CRSTotal:       r.CareRisk.TotalPoints,
		CRSExplanation: r.CareRisk.Explanation,

		RefusalCount:    r.CareRisk.RefusalCount,
		MaxGapHours:     r.CareRisk.MaxGapHours,
		DependencyTrend: r.CareRisk.DependencyTrend,

		DCSLevel:             r.Documentation.RiskLevel,
		CompliancePercentage: r.Documentation.CompliancePercentage,
		ActualEntries:        r.Documentation.ActualEntries,
		ExpectedEntries:      r.Documentation.ExpectedEntries,
		DCSExplanation:       r.Documentation.Explanation,

		OverallRisk: r.OverallRisk,
	}

	for _, c := range r.CareRisk.Components {
		switch c.Component {
		case scoring.ComponentRefusal:
			score.RefusalPoints = c.Points
		case scoring.ComponentGap:
			score.GapPoints = c.Points
		case scoring.ComponentDependency:
			score.DependencyPoints = c.Points
		}
	}
	return score
}
