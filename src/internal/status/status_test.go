package status_test

import (
	"encoding/json"
	"testing"

	"github.com/maksimkurb/internet-reloader/src/internal/log"
	"github.com/maksimkurb/internet-reloader/src/internal/mocks"
	"github.com/maksimkurb/internet-reloader/src/internal/status"
	"github.com/maksimkurb/internet-reloader/src/internal/wlan"
)

func init() {
	log.DisableLogs()
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name          string
		linkUp        bool
		internet      bool
		reconnectOK   bool
		wantStatus    status.Status
		wantReconnect int
	}{
		{name: "link down", linkUp: false, internet: false, wantStatus: status.Disconnected},
		{name: "link down, internet reported up", linkUp: false, internet: true, wantStatus: status.Disconnected},
		{name: "online", linkUp: true, internet: true, wantStatus: status.Connected},
		{name: "reconnect accepted", linkUp: true, internet: false, reconnectOK: true, wantStatus: status.Connected, wantReconnect: 1},
		{name: "reconnect failed", linkUp: true, internet: false, reconnectOK: false, wantStatus: status.NetworkOnly, wantReconnect: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			got := status.Evaluate(tt.linkUp, tt.internet, func() bool {
				calls++
				return tt.reconnectOK
			})

			if got != tt.wantStatus {
				t.Errorf("Evaluate() = %v, want %v", got, tt.wantStatus)
			}
			if calls != tt.wantReconnect {
				t.Errorf("Expected %d reconnect calls, got %d", tt.wantReconnect, calls)
			}
		})
	}
}

func TestStatus_String(t *testing.T) {
	tests := map[status.Status]string{
		status.Connected:    "Connected",
		status.NetworkOnly:  "NetworkOnly",
		status.Disconnected: "Disconnected",
	}
	for s, want := range tests {
		if s.String() != want {
			t.Errorf("String() = %q, want %q", s.String(), want)
		}
	}

	data, err := json.Marshal(map[string]status.Status{"status": status.NetworkOnly})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(data) != `{"status":"NetworkOnly"}` {
		t.Errorf("Unexpected JSON %s", data)
	}
}

func TestEvaluator_SkipsInternetProbeWhenLinkDown(t *testing.T) {
	probe := mocks.NewMockProbe(false, true)
	reconnector := &mocks.MockReconnector{}

	if got := status.NewEvaluator(probe, reconnector).Poll(); got != status.Disconnected {
		t.Errorf("Poll() = %v, want %v", got, status.Disconnected)
	}
	if probe.InternetCalls != 0 {
		t.Errorf("Expected no internet probe, got %d", probe.InternetCalls)
	}
	if reconnector.Calls != 0 {
		t.Errorf("Expected no reconnect, got %d", reconnector.Calls)
	}
}

func TestEvaluator_OneAttemptPerPoll(t *testing.T) {
	probe := mocks.NewMockProbe(true, false)
	reconnector := &mocks.MockReconnector{Result: false}
	evaluator := status.NewEvaluator(probe, reconnector)

	for i := 1; i <= 3; i++ {
		if got := evaluator.Poll(); got != status.NetworkOnly {
			t.Errorf("Poll %d = %v, want %v", i, got, status.NetworkOnly)
		}
		if reconnector.Calls != i {
			t.Errorf("Expected %d reconnect attempts after poll %d, got %d", i, i, reconnector.Calls)
		}
	}
}

func TestReconnectorFunc(t *testing.T) {
	called := false
	var r status.Reconnector = status.ReconnectorFunc(func() bool {
		called = true
		return true
	})
	if !r.Reconnect() || !called {
		t.Error("Expected ReconnectorFunc to call through")
	}
}

// End-to-end scenarios with a real reconnector over the scripted WLAN API.
func TestScenarios(t *testing.T) {
	tests := []struct {
		name        string
		linkUp      bool
		internet    bool
		setup       func(m *mocks.MockWLANAPI)
		want        status.Status
		wantOpened  int
		wantConnect int
	}{
		{name: "A: link down", linkUp: false, want: status.Disconnected},
		{name: "B: online", linkUp: true, internet: true, want: status.Connected},
		{name: "C: reconnect succeeds", linkUp: true, internet: false, want: status.Connected, wantOpened: 1, wantConnect: 1},
		{
			name:     "D: connect fails",
			linkUp:   true,
			internet: false,
			setup: func(m *mocks.MockWLANAPI) {
				m.ConnectStatus = wlan.StatusInvalidParameter
			},
			want:        status.NetworkOnly,
			wantOpened:  1,
			wantConnect: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := mocks.NewMockWLANAPI()
			if tt.setup != nil {
				tt.setup(api)
			}
			evaluator := status.NewEvaluator(
				mocks.NewMockProbe(tt.linkUp, tt.internet),
				wlan.NewReconnector(api, wlan.TolerateDisconnectFailure),
			)

			if got := evaluator.Poll(); got != tt.want {
				t.Errorf("Poll() = %v, want %v", got, tt.want)
			}

			if api.OpenHandleCalls != tt.wantOpened {
				t.Errorf("Expected %d sessions opened, got %d", tt.wantOpened, api.OpenHandleCalls)
			}
			if api.CloseHandleCalls != tt.wantOpened {
				t.Errorf("Expected %d sessions closed, got %d", tt.wantOpened, api.CloseHandleCalls)
			}
			if api.ConnectCalls != tt.wantConnect {
				t.Errorf("Expected %d connect calls, got %d", tt.wantConnect, api.ConnectCalls)
			}
			if tt.wantConnect > 0 && api.ConnectedProfile != "HomeWifi" {
				t.Errorf("Expected connect on %q, got %q", "HomeWifi", api.ConnectedProfile)
			}
			if api.LiveAllocations() != 0 || api.OpenSessions() != 0 || api.BadFrees != 0 {
				t.Errorf("Expected every resource released once: live=%d open=%d badFrees=%d",
					api.LiveAllocations(), api.OpenSessions(), api.BadFrees)
			}
			if a, f := api.Allocated(mocks.AllocList), api.Freed(mocks.AllocList); a != f {
				t.Errorf("Lists allocated %d, freed %d", a, f)
			}
			if a, f := api.Allocated(mocks.AllocBuffer), api.Freed(mocks.AllocBuffer); a != f {
				t.Errorf("Buffers allocated %d, freed %d", a, f)
			}
		})
	}
}
