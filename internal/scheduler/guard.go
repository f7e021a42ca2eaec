package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/budget-guard-api/internal/config"
	"github.com/vfg2006/budget-guard-api/internal/domain"
	"github.com/vfg2006/budget-guard-api/pkg/log"
)

// runGuard keeps a job from overlapping with itself and remembers its last outcome.
type runGuard struct {
	job                string
	clock              func() time.Time
	mutex              sync.Mutex
	running            bool
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastError          string
}

func newRunGuard(job string, clock func() time.Time) *runGuard {
	return &runGuard{
		job:   job,
		clock: clock,
	}
}

// run executes fn under a fresh correlation id, or returns a busy error if a run is in flight.
// A panicking fn still releases the guard before the panic propagates.
func (g *runGuard) run(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	g.mutex.Lock()
	if g.running {
		g.mutex.Unlock()
		return domain.NewBusyError(g.job)
	}
	g.running = true
	g.lastRunStartedAt = g.clock()
	g.mutex.Unlock()

	ctx, _ = log.WithCorrelationID(ctx)
	started := time.Now()

	defer func() {
		recovered := recover()
		if recovered != nil {
			err = fmt.Errorf("%s panicked: %v", g.job, recovered)
		}

		g.mutex.Lock()
		g.running = false
		g.lastRunCompletedAt = g.clock()
		g.lastError = ""
		if err != nil {
			g.lastError = err.Error()
		}
		g.mutex.Unlock()

		logger := log.ForContext(ctx).WithFields(log.Fields{
			"job":      g.job,
			"duration": time.Since(started).String(),
		})
		if err != nil {
			logger.WithError(err).Error("Job failed")
		} else {
			logger.Debug("Job finished")
		}

		if recovered != nil {
			panic(recovered)
		}
	}()

	return fn(ctx)
}

func (g *runGuard) isRunning() bool {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	return g.running
}

func (g *runGuard) status() map[string]any {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	return map[string]any{
		"running":               g.running,
		"last_run_started_at":   g.lastRunStartedAt,
		"last_run_completed_at": g.lastRunCompletedAt,
		"last_error":            g.lastError,
	}
}

// startScheduler runs the scheduler until ctx is cancelled.
func startScheduler(ctx context.Context, name string, s interface {
	StartAsync()
	Stop()
}) {
	s.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.WithField("job", name).Info("Stopping scheduler")
		s.Stop()
	}()
}

func isBusy(err error) bool {
	return errors.Is(err, domain.ErrBusy)
}

// newScheduler builds a gocron scheduler evaluating cron expressions in the operating timezone.
func newScheduler(appConfig *config.Config) *gocron.Scheduler {
	location := appConfig.App.Location
	if location == nil {
		location = time.UTC
	}
	return gocron.NewScheduler(location)
}
