// Package housekeeping runs periodic maintenance on a cron schedule. The
// only job today purges expired refresh tokens.
package housekeeping

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophforum/internal/logging"
	"github.com/dmitrijs2005/gophforum/internal/server/metrics"
	"github.com/robfig/cron/v3"
)

// Purger is implemented by services.UserService.
type Purger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

type Scheduler struct {
	cron    *cron.Cron
	purger  Purger
	metrics *metrics.Metrics
	logger  logging.Logger
}

// New validates spec and registers the purge job. Nothing runs until Run.
func New(spec string, p Purger, m *metrics.Metrics, l logging.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:    cron.New(),
		purger:  p,
		metrics: m,
		logger:  l.With("module", "housekeeping"),
	}
	if _, err := s.cron.AddFunc(spec, func() { s.PurgeOnce(context.Background()) }); err != nil {
		return nil, fmt.Errorf("housekeeping schedule %q: %w", spec, err)
	}
	return s, nil
}

// PurgeOnce runs the purge job synchronously.
func (s *Scheduler) PurgeOnce(ctx context.Context) {
	n, err := s.purger.PurgeExpired(ctx)
	if err != nil {
		s.logger.Error(ctx, "purging refresh tokens failed", "error", err)
		s.metrics.HousekeepingRuns.WithLabelValues("error").Inc()
		return
	}
	s.metrics.HousekeepingRuns.WithLabelValues("ok").Inc()
	s.metrics.PurgedTokens.Add(float64(n))
	if n > 0 {
		s.logger.Info(ctx, "purged expired refresh tokens", "count", n)
	}
}

// Run starts the scheduler and blocks until ctx is done. It waits for a
// running job to finish before returning.
func (s *Scheduler) Run(ctx context.Context) {
	s.cron.Start()
	<-ctx.Done()
	<-s.cron.Stop().Done()
}
