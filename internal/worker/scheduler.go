package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/nataliadudina/bike-rental/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// Job is one scheduled unit of background work.
type Job interface {
	RunOnce(ctx context.Context) (int, error)
}

type Scheduler struct {
	cron *cron.Cron
}

// NewScheduler registers job under spec. A run that is still going when the
// next tick fires makes that tick a no-op.
func NewScheduler(spec string, job Job, timeout time.Duration) (*Scheduler, error) {
	logger := cron.PrintfLogger(slog.NewLogLogger(slog.Default().Handler(), slog.LevelDebug))
	c := cron.New(cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)))

	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if _, err := job.RunOnce(ctx); err != nil {
			slog.Error("scheduled job failed", "error", err.Error())
		}
	})
	if err != nil {
		return nil, errs.Wrapf(err, "invalid schedule %q", spec)
	}
	return &Scheduler{cron: c}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for a running job until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
