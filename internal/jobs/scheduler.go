// Package jobs runs the periodic maintenance tasks of the API.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/sit-project/sit-api/internal/config"
	"github.com/sit-project/sit-api/internal/pkg/metrics"
)

const jobTimeout = 5 * time.Minute

type Cleaner interface {
	Run(ctx context.Context) error
}

type WeatherSyncer interface {
	Sync(ctx context.Context) (int64, error)
}

type Scheduler struct {
	cron   *cron.Cron
	ctx    context.Context
	cancel context.CancelFunc
}

// NewScheduler registers the cleanup job and, when weather is not nil, the
// forecast refresh.
func NewScheduler(conf *config.AppConfig, cleaner Cleaner, weather WeatherSyncer) (*Scheduler, error) {
	log := cronLogger{zap.S().Named("cron")}
	c := cron.New(
		cron.WithLogger(log),
		cron.WithChain(cron.Recover(log), cron.SkipIfStillRunning(log)),
	)

	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{cron: c, ctx: ctx, cancel: cancel}

	_, err := c.AddFunc(conf.Jobs.CleanupSchedule, s.wrap("cleanup", cleaner.Run))
	if err != nil {
		cancel()
		return nil, fmt.Errorf("c.AddFunc(cleanup) -> %w", err)
	}

	if weather != nil {
		_, err = c.AddFunc(conf.Weather.Schedule, s.wrap("weather", func(ctx context.Context) error {
			n, err := weather.Sync(ctx)
			if err != nil {
				return err
			}
			zap.L().Info("weather forecast refreshed", zap.Int64("rows", n))
			return nil
		}))
		if err != nil {
			cancel()
			return nil, fmt.Errorf("c.AddFunc(weather) -> %w", err)
		}
	}

	return s, nil
}

func (s *Scheduler) wrap(name string, run func(ctx context.Context) error) func() {
	return func() {
		ctx, cancel := context.WithTimeout(s.ctx, jobTimeout)
		defer cancel()

		if err := run(ctx); err != nil {
			metrics.JobRuns.WithLabelValues(name, "error").Inc()
			zap.L().Error("job failed", zap.String("job", name), zap.Error(err))
			return
		}
		metrics.JobRuns.WithLabelValues(name, "ok").Inc()
	}
}

func (s *Scheduler) Start() {
	zap.L().Info("starting job scheduler", zap.Int("jobs", len(s.cron.Entries())))
	s.cron.Start()
}

// Stop cancels running jobs and waits for them until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	s.cancel()
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		zap.L().Warn("job scheduler did not stop in time")
	}
}

// cronLogger sends cron's own logs to zap.
type cronLogger struct {
	log *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}
