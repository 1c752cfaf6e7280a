package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/maksimkurb/internet-reloader/src/internal/log"
	"github.com/maksimkurb/internet-reloader/src/internal/mocks"
	"github.com/maksimkurb/internet-reloader/src/internal/status"
)

func init() {
	log.DisableLogs()
}

type recordingHooks struct {
	mu          sync.Mutex
	transitions []string
	reconnects  []string
}

func (h *recordingHooks) StatusChanged(previous, current fmt.Stringer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.transitions = append(h.transitions, previous.String()+"->"+current.String())
}

func (h *recordingHooks) ReconnectAttempted(success bool, current fmt.Stringer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.reconnects = append(h.reconnects, fmt.Sprintf("%t/%s", success, current))
}

func TestMonitor_FirstPollDoesNotFireTransition(t *testing.T) {
	hooks := &recordingHooks{}
	m := NewMonitor(mocks.NewMockProbe(true, true), &mocks.MockReconnector{}, hooks, time.Second)

	if got := m.Poll(); got != status.Connected {
		t.Errorf("Poll() = %v, want %v", got, status.Connected)
	}

	snap := m.Snapshot()
	if snap.Polls != 1 || snap.Status != status.Connected || snap.Previous != nil {
		t.Errorf("Unexpected snapshot: %+v", snap)
	}
	if snap.LastPoll == nil || snap.LastChange == nil {
		t.Error("Expected poll and change times to be recorded")
	}
	if len(hooks.transitions) != 0 {
		t.Errorf("Expected no transition hook, got %v", hooks.transitions)
	}
}

func TestMonitor_Transitions(t *testing.T) {
	hooks := &recordingHooks{}
	probe := mocks.NewMockProbe(true, true)
	m := NewMonitor(probe, &mocks.MockReconnector{}, hooks, time.Second)

	m.Poll()
	m.Poll()
	probe.Set(false, false)
	m.Poll()
	probe.Set(true, true)
	m.Poll()

	want := []string{"Connected->Disconnected", "Disconnected->Connected"}
	if fmt.Sprint(hooks.transitions) != fmt.Sprint(want) {
		t.Errorf("Transitions = %v, want %v", hooks.transitions, want)
	}

	snap := m.Snapshot()
	if snap.Polls != 4 || snap.Previous == nil || *snap.Previous != status.Disconnected {
		t.Errorf("Unexpected snapshot: %+v", snap)
	}
}

func TestMonitor_ReconnectDuringPoll(t *testing.T) {
	hooks := &recordingHooks{}
	reconnector := &mocks.MockReconnector{Result: false}
	m := NewMonitor(mocks.NewMockProbe(true, false), reconnector, hooks, time.Second)

	if got := m.Poll(); got != status.NetworkOnly {
		t.Errorf("Poll() = %v, want %v", got, status.NetworkOnly)
	}
	reconnector.Result = true
	if got := m.Poll(); got != status.Connected {
		t.Errorf("Poll() = %v, want %v", got, status.Connected)
	}

	snap := m.Snapshot()
	if snap.ReconnectAttempts != 2 || snap.ReconnectSuccesses != 1 {
		t.Errorf("Expected 2 attempts and 1 success, got %d/%d", snap.ReconnectAttempts, snap.ReconnectSuccesses)
	}
	if snap.LastReconnect == nil || !snap.LastReconnect.Success || snap.LastReconnect.Forced {
		t.Errorf("Unexpected last reconnect: %+v", snap.LastReconnect)
	}

	want := []string{"false/NetworkOnly", "true/Connected"}
	if fmt.Sprint(hooks.reconnects) != fmt.Sprint(want) {
		t.Errorf("Reconnect hooks = %v, want %v", hooks.reconnects, want)
	}
	if fmt.Sprint(hooks.transitions) != fmt.Sprint([]string{"NetworkOnly->Connected"}) {
		t.Errorf("Unexpected transitions: %v", hooks.transitions)
	}
}

func TestMonitor_ForceReconnect(t *testing.T) {
	hooks := &recordingHooks{}
	probe := mocks.NewMockProbe(true, true)
	reconnector := &mocks.MockReconnector{Result: true}
	m := NewMonitor(probe, reconnector, hooks, time.Second)

	if !m.ForceReconnect() {
		t.Error("Expected forced reconnect to succeed")
	}
	if reconnector.Calls != 1 {
		t.Errorf("Expected 1 reconnect, got %d", reconnector.Calls)
	}
	if probe.NetworkCalls != 0 {
		t.Errorf("Expected forced reconnect to skip the probe, got %d calls", probe.NetworkCalls)
	}

	snap := m.Snapshot()
	if snap.LastReconnect == nil || !snap.LastReconnect.Forced {
		t.Errorf("Expected a forced reconnect record, got %+v", snap.LastReconnect)
	}
	if len(hooks.reconnects) != 1 {
		t.Errorf("Expected reconnect hook to fire once, got %v", hooks.reconnects)
	}
}

// overlapDetector fails the test if two reconnects run at the same time.
type overlapDetector struct {
	t        *testing.T
	inFlight atomic.Int32
	calls    atomic.Int32
}

func (o *overlapDetector) Reconnect() bool {
	if o.inFlight.Add(1) != 1 {
		o.t.Error("Reconnect ran concurrently")
	}
	time.Sleep(time.Millisecond)
	o.inFlight.Add(-1)
	o.calls.Add(1)
	return false
}

func TestMonitor_SerialisesReconnects(t *testing.T) {
	detector := &overlapDetector{t: t}
	m := NewMonitor(mocks.NewMockProbe(true, false), detector, nil, time.Second)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() { defer wg.Done(); m.Poll() }()
		go func() { defer wg.Done(); m.ForceReconnect() }()
	}
	wg.Wait()

	if detector.calls.Load() != 16 {
		t.Errorf("Expected 16 reconnects, got %d", detector.calls.Load())
	}
	if snap := m.Snapshot(); snap.ReconnectAttempts != 16 {
		t.Errorf("Expected 16 recorded attempts, got %d", snap.ReconnectAttempts)
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("Condition not met in time")
}

func TestMonitor_Run(t *testing.T) {
	m := NewMonitor(mocks.NewMockProbe(true, true), &mocks.MockReconnector{}, nil, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()

	waitFor(t, func() bool { return m.Snapshot().Polls >= 3 })
	if !m.Snapshot().Running {
		t.Error("Expected monitor to report running")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
	if m.Snapshot().Running {
		t.Error("Expected monitor to report stopped")
	}
}

func TestMonitor_Reload(t *testing.T) {
	m := NewMonitor(mocks.NewMockProbe(false, false), &mocks.MockReconnector{}, nil, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go m.Run(ctx)

	waitFor(t, func() bool { return m.Snapshot().Polls == 1 })
	if m.Snapshot().Status != status.Disconnected {
		t.Fatalf("Expected first poll to see Disconnected")
	}

	m.Reload(mocks.NewMockProbe(true, true), &mocks.MockReconnector{}, 10*time.Millisecond)

	waitFor(t, func() bool { return m.Snapshot().Status == status.Connected })
	if got := m.Snapshot().IntervalSeconds; got != 0 {
		t.Errorf("Expected interval to be reported in whole seconds, got %d", got)
	}
}

func TestSnapshot_JSON(t *testing.T) {
	m := NewMonitor(mocks.NewMockProbe(true, true), &mocks.MockReconnector{}, nil, 10*time.Second)
	m.Poll()

	data, err := json.Marshal(m.Snapshot())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if decoded["status"] != "Connected" || decoded["interval_seconds"] != float64(10) {
		t.Errorf("Unexpected JSON: %s", data)
	}
	if _, ok := decoded["last_reconnect"]; ok {
		t.Errorf("Expected last_reconnect to be omitted before any attempt: %s", data)
	}
}
