package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/maksimkurb/internet-reloader/src/internal/log"
	"github.com/maksimkurb/internet-reloader/src/internal/status"
)

// HookRunner is notified about transitions and reconnect attempts.
type HookRunner interface {
	StatusChanged(previous, current fmt.Stringer)
	ReconnectAttempted(success bool, current fmt.Stringer)
}

type noHooks struct{}

func (noHooks) StatusChanged(fmt.Stringer, fmt.Stringer) {}
func (noHooks) ReconnectAttempted(bool, fmt.Stringer)    {}

// ReconnectResult describes one reconnect attempt.
type ReconnectResult struct {
	At      time.Time `json:"at"`
	Success bool      `json:"success"`
	Forced  bool      `json:"forced"`
}

// Snapshot is the monitor state at one point in time.
type Snapshot struct {
	// Status is the outcome of the latest poll. Meaningless while Polls is 0.
	Status status.Status `json:"status"`
	// Previous is the status before the latest transition.
	Previous *status.Status `json:"previous,omitempty"`

	Polls      int        `json:"polls"`
	LastPoll   *time.Time `json:"last_poll,omitempty"`
	LastChange *time.Time `json:"last_change,omitempty"`

	ReconnectAttempts  int              `json:"reconnect_attempts"`
	ReconnectSuccesses int              `json:"reconnect_successes"`
	LastReconnect      *ReconnectResult `json:"last_reconnect,omitempty"`

	Running         bool   `json:"running"`
	IntervalSeconds int    `json:"interval_seconds"`
	ProbeTarget     string `json:"probe_target,omitempty"`
}

// Monitor drives the status evaluator on a ticker.
type Monitor struct {
	// pollMu serialises polls, forced reconnects and reloads.
	pollMu      sync.Mutex
	probe       status.Probe
	reconnector status.Reconnector
	hooks       HookRunner

	stateMu  sync.RWMutex
	snapshot Snapshot

	interval time.Duration
	resetCh  chan time.Duration
	now      func() time.Time
}

// NewMonitor creates a monitor. hooks may be nil.
func NewMonitor(probe status.Probe, reconnector status.Reconnector, hooks HookRunner, interval time.Duration) *Monitor {
	if hooks == nil {
		hooks = noHooks{}
	}
	m := &Monitor{
		probe:       probe,
		reconnector: reconnector,
		hooks:       hooks,
		interval:    interval,
		resetCh:     make(chan time.Duration, 1),
		now:         time.Now,
	}
	m.snapshot.IntervalSeconds = int(interval / time.Second)
	m.snapshot.ProbeTarget = describeProbe(probe)
	return m
}

// Snapshot returns a copy of the current state.
func (m *Monitor) Snapshot() Snapshot {
	m.stateMu.RLock()
	defer m.stateMu.RUnlock()

	snap := m.snapshot
	if snap.LastReconnect != nil {
		r := *snap.LastReconnect
		snap.LastReconnect = &r
	}
	return snap
}

// Poll runs one evaluator poll, records it, and fires hooks.
func (m *Monitor) Poll() status.Status {
	m.pollMu.Lock()
	defer m.pollMu.Unlock()

	var attempted, success bool
	reconnect := status.ReconnectorFunc(func() bool {
		attempted = true
		success = m.reconnector.Reconnect()
		m.recordReconnect(success, false)
		return success
	})

	current := status.NewEvaluator(m.probe, reconnect).Poll()
	previous, changed := m.recordPoll(current)

	if changed {
		log.Infof("Status changed: %s -> %s", previous, current)
		m.hooks.StatusChanged(previous, current)
	} else {
		log.Debugf("Status: %s", current)
	}
	if attempted {
		m.hooks.ReconnectAttempted(success, current)
	}

	return current
}

// ForceReconnect makes one reconnect attempt regardless of the probe.
func (m *Monitor) ForceReconnect() bool {
	m.pollMu.Lock()
	defer m.pollMu.Unlock()

	log.Infof("Forced reconnect requested")
	success := m.reconnector.Reconnect()
	m.recordReconnect(success, true)

	m.hooks.ReconnectAttempted(success, m.Snapshot().Status)
	return success
}

// Reload swaps the probe, the reconnector and the poll interval. A running
// loop picks up the new interval without waiting for the current tick.
func (m *Monitor) Reload(probe status.Probe, reconnector status.Reconnector, interval time.Duration) {
	m.pollMu.Lock()
	m.probe = probe
	m.reconnector = reconnector
	m.pollMu.Unlock()

	m.stateMu.Lock()
	m.interval = interval
	m.snapshot.IntervalSeconds = int(interval / time.Second)
	m.snapshot.ProbeTarget = describeProbe(probe)
	m.stateMu.Unlock()

	select {
	case <-m.resetCh:
	default:
	}
	m.resetCh <- interval

	log.Infof("Monitor reloaded, polling every %v", interval)
}

// Run polls immediately and then on every tick until ctx is cancelled.
func (m *Monitor) Run(ctx context.Context) error {
	m.stateMu.Lock()
	interval := m.interval
	m.snapshot.Running = true
	m.stateMu.Unlock()

	defer func() {
		m.stateMu.Lock()
		m.snapshot.Running = false
		m.stateMu.Unlock()
	}()

	log.Infof("Monitoring connectivity every %v", interval)
	m.Poll()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Infof("Monitor stopped")
			return nil

		case interval = <-m.resetCh:
			ticker.Reset(interval)

		case <-ticker.C:
			m.Poll()
		}
	}
}

func (m *Monitor) recordPoll(current status.Status) (previous status.Status, changed bool) {
	m.stateMu.Lock()
	defer m.stateMu.Unlock()

	now := m.now()
	first := m.snapshot.Polls == 0
	previous = m.snapshot.Status

	m.snapshot.Polls++
	m.snapshot.LastPoll = &now
	if first {
		m.snapshot.Status = current
		m.snapshot.LastChange = &now
		log.Infof("Initial status: %s", current)
		return previous, false
	}

	if previous == current {
		return previous, false
	}

	prev := previous
	m.snapshot.Previous = &prev
	m.snapshot.Status = current
	m.snapshot.LastChange = &now
	return previous, true
}

func (m *Monitor) recordReconnect(success, forced bool) {
	m.stateMu.Lock()
	defer m.stateMu.Unlock()

	m.snapshot.ReconnectAttempts++
	if success {
		m.snapshot.ReconnectSuccesses++
	}
	m.snapshot.LastReconnect = &ReconnectResult{
		At:      m.now(),
		Success: success,
		Forced:  forced,
	}
}

func describeProbe(probe status.Probe) string {
	if t, ok := probe.(interface{ Target() string }); ok {
		return t.Target()
	}
	return ""
}
