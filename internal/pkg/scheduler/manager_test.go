package scheduler

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSweeper struct {
	mu    sync.Mutex
	runs  int
	err   error
	count int
}

func (s *countingSweeper) CheckExpired(now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs++
	return s.count, s.err
}

func (s *countingSweeper) Runs() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runs
}

func TestManagerRunsSweepOnStartup(t *testing.T) {
	sweeper := &countingSweeper{}
	manager := NewManager(sweeper, Config{Interval: time.Hour, RunOnStartup: true})

	manager.Start()
	defer manager.Stop()

	require.Eventually(t, func() bool {
		return sweeper.Runs() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestManagerSkipsStartupSweepWhenDisabled(t *testing.T) {
	sweeper := &countingSweeper{}
	manager := NewManager(sweeper, Config{Interval: time.Hour, RunOnStartup: false})

	manager.Start()
	time.Sleep(50 * time.Millisecond)
	manager.Stop()

	assert.Equal(t, 0, sweeper.Runs())
}

func TestManagerSweepsOnInterval(t *testing.T) {
	sweeper := &countingSweeper{}
	manager := NewManager(sweeper, Config{Interval: 20 * time.Millisecond})

	manager.Start()
	defer manager.Stop()

	require.Eventually(t, func() bool {
		return sweeper.Runs() >= 2
	}, time.Second, 5*time.Millisecond)
}

func TestManagerStopHaltsSweeping(t *testing.T) {
	sweeper := &countingSweeper{}
	manager := NewManager(sweeper, Config{Interval: 10 * time.Millisecond})

	manager.Start()
	require.Eventually(t, func() bool {
		return sweeper.Runs() >= 1
	}, time.Second, 5*time.Millisecond)

	manager.Stop()
	assert.False(t, manager.IsRunning())

	runs := sweeper.Runs()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, runs, sweeper.Runs())
}

func TestManagerStartIsIdempotent(t *testing.T) {
	sweeper := &countingSweeper{}
	manager := NewManager(sweeper, Config{Interval: time.Hour})

	manager.Start()
	manager.Start()
	assert.True(t, manager.IsRunning())

	manager.Stop()
	manager.Stop()
	assert.False(t, manager.IsRunning())
}

func TestManagerCanRestart(t *testing.T) {
	sweeper := &countingSweeper{}
	manager := NewManager(sweeper, Config{Interval: time.Hour, RunOnStartup: true})

	manager.Start()
	require.Eventually(t, func() bool {
		return sweeper.Runs() == 1
	}, time.Second, 10*time.Millisecond)
	manager.Stop()

	manager.Start()
	require.Eventually(t, func() bool {
		return sweeper.Runs() == 2
	}, time.Second, 10*time.Millisecond)
	manager.Stop()
}

func TestManagerDefaultsInterval(t *testing.T) {
	manager := NewManager(&countingSweeper{}, Config{})
	assert.Equal(t, time.Hour, manager.config.Interval)
}

func TestManagerSweepErrorDoesNotStopWorker(t *testing.T) {
	sweeper := &countingSweeper{err: assert.AnError}
	manager := NewManager(sweeper, Config{Interval: 10 * time.Millisecond, RunOnStartup: true})

	manager.Start()
	defer manager.Stop()

	require.Eventually(t, func() bool {
		return sweeper.Runs() >= 3
	}, time.Second, 5*time.Millisecond)
	assert.True(t, manager.IsRunning())
}
