// Package scheduler runs periodic maintenance jobs on a robfig/cron loop.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// JobExpirer closes postings whose expiry date has passed.
type JobExpirer interface {
	ExpireJobs(ctx context.Context) (int64, error)
}

type Scheduler struct {
	cron    *cron.Cron
	expirer JobExpirer
	spec    string
	logger  *zap.Logger
}

func New(expirer JobExpirer, spec string, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		expirer: expirer,
		spec:    spec,
		logger:  logger,
	}
}

// Start registers the expiry job and starts the loop. One sweep runs right
// away so stale postings close without waiting for the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.spec, func() { s.expireJobs(ctx) }); err != nil {
		return fmt.Errorf("schedule job expiry %q: %w", s.spec, err)
	}

	s.cron.Start()
	s.logger.Info("scheduler started", zap.String("job_expiry", s.spec))

	go s.expireJobs(ctx)
	return nil
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) expireJobs(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	n, err := s.expirer.ExpireJobs(ctx)
	if err != nil {
		s.logger.Error("job expiry sweep failed", zap.Error(err))
		return
	}
	s.logger.Debug("job expiry sweep done", zap.Int64("closed", n))
}
