package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sit-project/sit-api/internal/config"
)

type countingCleaner struct {
	runs atomic.Int32
	err  error
}

func (c *countingCleaner) Run(context.Context) error {
	c.runs.Add(1)
	return c.err
}

type countingSyncer struct {
	runs atomic.Int32
}

func (s *countingSyncer) Sync(context.Context) (int64, error) {
	s.runs.Add(1)
	return 8, nil
}

func testConfig(cleanup, weather string) *config.AppConfig {
	return &config.AppConfig{
		Jobs:    &config.JobsConfig{CleanupSchedule: cleanup},
		Weather: &config.WeatherConfig{Schedule: weather},
	}
}

func TestScheduler_RunsRegisteredJobs(t *testing.T) {
	cleaner := &countingCleaner{}
	syncer := &countingSyncer{}

	s, err := NewScheduler(testConfig("@every 1s", "@every 1s"), cleaner, syncer)
	require.NoError(t, err)
	require.Len(t, s.cron.Entries(), 2)

	s.Start()
	defer s.Stop(context.Background())

	assert.Eventually(t, func() bool {
		return cleaner.runs.Load() > 0 && syncer.runs.Load() > 0
	}, 3*time.Second, 50*time.Millisecond)
}

func TestScheduler_WeatherIsOptional(t *testing.T) {
	s, err := NewScheduler(testConfig("@every 24h", "0 */3 * * *"), &countingCleaner{}, nil)
	require.NoError(t, err)

	assert.Len(t, s.cron.Entries(), 1)
}

func TestScheduler_InvalidSchedule(t *testing.T) {
	_, err := NewScheduler(testConfig("every day", ""), &countingCleaner{}, nil)
	assert.Error(t, err)
}

func TestScheduler_FailingJobKeepsRunning(t *testing.T) {
	cleaner := &countingCleaner{err: errors.New("database unavailable")}

	s, err := NewScheduler(testConfig("@every 1s", ""), cleaner, nil)
	require.NoError(t, err)

	s.Start()
	defer s.Stop(context.Background())

	assert.Eventually(t, func() bool { return cleaner.runs.Load() >= 2 }, 4*time.Second, 50*time.Millisecond)
}
