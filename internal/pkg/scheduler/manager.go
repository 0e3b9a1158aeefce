package scheduler

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

// Sweeper runs one expiry pass and returns how many promotions were
// fully processed. Implemented by the promotion service.
type Sweeper interface {
	CheckExpired(now time.Time) (int, error)
}

// Config controls the sweep trigger policy.
type Config struct {
	Interval     time.Duration
	RunOnStartup bool
}

// Manager owns the promotion expiry sweep as an explicit long-lived
// background task with a start/stop lifecycle. One sweep runs at a time;
// a failed sweep is logged and retried on the next tick.
type Manager struct {
	sweeper Sweeper
	config  Config

	ticker  *time.Ticker
	stopCh  chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	running bool
}

// NewManager creates a sweep manager. An interval of zero or less falls
// back to hourly sweeps.
func NewManager(sweeper Sweeper, config Config) *Manager {
	if config.Interval <= 0 {
		config.Interval = time.Hour
	}
	return &Manager{
		sweeper: sweeper,
		config:  config,
	}
}

// Start launches the periodic sweep worker.
func (m *Manager) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return
	}

	// Recreate stop channel for each start cycle so the manager can be
	// restarted safely.
	m.stopCh = make(chan struct{})
	m.running = true

	m.ticker = time.NewTicker(m.config.Interval)
	m.wg.Add(1)
	go m.sweepWorker()

	log.Infof("[Scheduler] Promotion expiry sweeper started (interval %s)", m.config.Interval)
}

// Stop halts the periodic trigger and waits for an in-flight sweep to
// finish. The sweep's own transactions guarantee nothing is left
// half-committed.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return
	}

	m.ticker.Stop()
	close(m.stopCh)
	m.running = false

	m.wg.Wait()

	log.Info("[Scheduler] Promotion expiry sweeper stopped")
}

// IsRunning reports whether the sweep worker is active.
func (m *Manager) IsRunning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

func (m *Manager) sweepWorker() {
	defer m.wg.Done()

	if m.config.RunOnStartup {
		m.runSweep()
	}

	for {
		select {
		case <-m.stopCh:
			return
		case <-m.ticker.C:
			m.runSweep()
		}
	}
}

func (m *Manager) runSweep() {
	processed, err := m.sweeper.CheckExpired(time.Now())
	if err != nil {
		log.Errorf("[Scheduler] Promotion expiry sweep failed: %v", err)
		return
	}
	if processed > 0 {
		log.Infof("[Scheduler] Expired %d promotion(s) in this sweep", processed)
	}
}
