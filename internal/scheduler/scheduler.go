package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/teamtrack/attendance-bot/internal/config"
)

// ClosureEvaluator re-checks whether the current day should close.
type ClosureEvaluator interface {
	EvaluateClosure(ctx context.Context, now time.Time) error
}

// Synchronizer runs one spreadsheet sync cycle.
type Synchronizer interface {
	RunSync(ctx context.Context)
}

type Scheduler struct {
	cron    *cron.Cron
	closure ClosureEvaluator
	sync    Synchronizer
	cfg     *config.Config
}

func New(closure ClosureEvaluator, sync Synchronizer, cfg *config.Config) *Scheduler {
	return &Scheduler{
		cron: cron.New(
			cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
		),
		closure: closure,
		sync:    sync,
		cfg:     cfg,
	}
}

// Start registers the periodic jobs and launches the cron loop. Both jobs are
// idempotent re-evaluations of persisted state, so overlapping schedules or
// restarts never double work.
func (s *Scheduler) Start() error {
	closureSpec := fmt.Sprintf("@every %dm", s.cfg.ClosureIntervalMinutes)
	if _, err := s.cron.AddFunc(closureSpec, s.runClosure); err != nil {
		return fmt.Errorf("failed to schedule closure job: %w", err)
	}

	syncSpec := fmt.Sprintf("@every %dm", s.cfg.SyncIntervalMinutes)
	if _, err := s.cron.AddFunc(syncSpec, s.runSync); err != nil {
		return fmt.Errorf("failed to schedule sync job: %w", err)
	}

	s.cron.Start()
	log.Printf("Scheduler: closure every %dm, sync every %dm",
		s.cfg.ClosureIntervalMinutes, s.cfg.SyncIntervalMinutes)
	return nil
}

// Stop halts the cron loop and waits for in-flight jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	log.Println("Scheduler: stopped")
}

func (s *Scheduler) runClosure() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := s.closure.EvaluateClosure(ctx, time.Now()); err != nil {
		log.Printf("Scheduler: closure evaluation failed: %v", err)
	}
}

func (s *Scheduler) runSync() {
	ctx, cancel := context.WithTimeout(context.Background(), 4*time.Minute)
	defer cancel()

	s.sync.RunSync(ctx)
}
