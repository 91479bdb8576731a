package monitor_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sergioaguilargranados-ai/operadora-dev-sub006/internal/monitor"
	"github.com/sergioaguilargranados-ai/operadora-dev-sub006/internal/monitor/mocks"
	"github.com/sergioaguilargranados-ai/operadora-dev-sub006/internal/platform/models"
)

type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	sleeps []time.Duration
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Sleep(_ context.Context, d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sleeps = append(c.sleeps, d)
}

func (c *fakeClock) sleepCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sleeps)
}

func newTestMonitor(stats monitor.Stats, clock monitor.Clock) *monitor.Monitor {
	logger := zerolog.Nop()
	return monitor.NewMonitor(
		stats,
		&logger,
		monitor.WithPollInterval(time.Second),
		monitor.WithStallThreshold(3),
		monitor.WithClock(clock),
	)
}

func TestUnitWaitStall(t *testing.T) {
	readings := []int64{10, 15, 15, 15, 15, 15}
	polls := 0

	stats := mocks.NewStats(t)
	stats.On("Coverage", mock.Anything).Return(func(context.Context) models.Coverage {
		reading := readings[polls]
		polls++
		return models.Coverage{Total: 100, WithPrice: reading}
	}, nil)

	clock := &fakeClock{}
	mntr := newTestMonitor(stats, clock)

	coverage, err := mntr.Wait(context.TODO())

	require.ErrorIs(t, err, monitor.ErrStalled, "should report a stall")
	assert.Equal(t, 5, polls, "should detect the plateau on the fifth poll")
	assert.Equal(t, 4, clock.sleepCount(), "should not sleep after the stalling poll")
	assert.Equal(t, int64(15), coverage.Progress(), "should return the last observed coverage")
}

func TestUnitWaitComplete(t *testing.T) {
	readings := []models.Coverage{
		{Total: 10, WithPrice: 4, WithIncludes: 3},
		{Total: 10, WithPrice: 8, WithIncludes: 7},
		{Total: 10, WithPrice: 10, WithIncludes: 10},
	}
	polls := 0

	stats := mocks.NewStats(t)
	stats.On("Coverage", mock.Anything).Return(func(context.Context) models.Coverage {
		reading := readings[polls]
		polls++
		return reading
	}, nil)

	clock := &fakeClock{}
	mntr := newTestMonitor(stats, clock)

	coverage, err := mntr.Wait(context.TODO())

	require.NoError(t, err, "should finish without errors")
	assert.Equal(t, 3, polls, "should return on the completing poll")
	assert.True(t, coverage.Complete(), "returned coverage should be complete")
}

func TestUnitWaitStatsErrors(t *testing.T) {
	stats := mocks.NewStats(t)
	stats.On("Coverage", mock.Anything).Return(models.Coverage{}, assert.AnError)

	clock := &fakeClock{}
	mntr := newTestMonitor(stats, clock)

	_, err := mntr.Wait(context.TODO())

	require.ErrorIs(t, err, monitor.ErrStalled, "persistent fetch errors should surface as a stall")
	assert.Equal(t, 2, clock.sleepCount(), "should stop polling at the threshold")
}

func TestUnitWaitContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	stats := mocks.NewStats(t)
	stats.On("Coverage", mock.Anything).Return(func(context.Context) models.Coverage {
		cancel()
		return models.Coverage{Total: 100, WithPrice: 10}
	}, nil)

	mntr := newTestMonitor(stats, &fakeClock{})

	_, err := mntr.Wait(ctx)

	require.ErrorIs(t, err, context.Canceled, "should return context error")
}

func TestUnitRecoveryRun(t *testing.T) {
	client := mocks.NewBatchClient(t)
	client.On("RunBatch", mock.Anything, int64(100), int64(0)).
		Return(&models.BatchReport{Processed: 100, Succeeded: 100}, nil).Once()
	client.On("RunBatch", mock.Anything, int64(100), int64(100)).
		Return(nil, assert.AnError).Once()
	client.On("RunBatch", mock.Anything, int64(100), int64(200)).
		Return(&models.BatchReport{Processed: 40, Succeeded: 38, Failed: 2}, nil).Once()
	client.On("RunBatch", mock.Anything, int64(100), int64(300)).
		Return(&models.BatchReport{}, nil).Once()
	client.On("Coverage", mock.Anything).
		Return(models.Coverage{Total: 240, WithPrice: 238, WithIncludes: 235}, nil).Once()

	clock := &fakeClock{}
	logger := zerolog.Nop()
	recovery := monitor.NewRecovery(
		client,
		&logger,
		monitor.WithSettleDelay(10*time.Second),
		monitor.WithBatchSize(100),
		monitor.WithSweepPause(time.Second),
		monitor.WithRecoveryClock(clock),
	)

	err := recovery.Run(context.TODO())

	require.NoError(t, err, "failed windows should not abort the sweep")
	require.Equal(t, 4, clock.sleepCount(), "should settle once and pause between batch calls")
	assert.Equal(t, 10*time.Second, clock.sleeps[0], "should sleep the settle delay first")
	for _, pause := range clock.sleeps[1:] {
		assert.Equal(t, time.Second, pause, "every pause between windows should be the sweep pause")
	}
}

func TestUnitRecoveryAbortsAfterConsecutiveFailures(t *testing.T) {
	client := mocks.NewBatchClient(t)
	client.On("RunBatch", mock.Anything, int64(100), mock.Anything).
		Return(nil, assert.AnError)

	logger := zerolog.Nop()
	recovery := monitor.NewRecovery(
		client,
		&logger,
		monitor.WithBatchSize(100),
		monitor.WithRecoveryClock(&fakeClock{}),
	)

	err := recovery.Run(context.TODO())

	require.ErrorIs(t, err, assert.AnError, "should surface the last batch error")
	client.AssertNumberOfCalls(t, "RunBatch", 5)
}
