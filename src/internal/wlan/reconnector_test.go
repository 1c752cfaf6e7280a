package wlan_test

import (
	"slices"
	"testing"

	"github.com/maksimkurb/internet-reloader/src/internal/log"
	"github.com/maksimkurb/internet-reloader/src/internal/mocks"
	"github.com/maksimkurb/internet-reloader/src/internal/wlan"
)

func init() {
	log.DisableLogs()
}

func assertNoLeaks(t *testing.T, mock *mocks.MockWLANAPI) {
	t.Helper()

	if n := mock.OpenSessions(); n != 0 {
		t.Errorf("Expected all sessions closed, %d still open", n)
	}
	if n := mock.LiveAllocations(); n != 0 {
		t.Errorf("Expected all allocations freed, %d still live", n)
	}
	if mock.BadFrees != 0 {
		t.Errorf("Expected no double or unknown frees, got %d", mock.BadFrees)
	}
	if mock.BadCloses != 0 {
		t.Errorf("Expected no double or unknown closes, got %d", mock.BadCloses)
	}
	for _, kind := range []string{mocks.AllocList, mocks.AllocBuffer} {
		if a, f := mock.Allocated(kind), mock.Freed(kind); a != f {
			t.Errorf("Expected every %s freed once: allocated %d, freed %d", kind, a, f)
		}
	}
}

func TestReconnect_Success(t *testing.T) {
	mock := mocks.NewMockWLANAPI()

	if !wlan.NewReconnector(mock, wlan.TolerateDisconnectFailure).Reconnect() {
		t.Fatal("Expected reconnect to succeed")
	}

	want := []string{
		"OpenHandle",
		"EnumInterfaces", "FreeMemory",
		"QueryCurrentConnection", "FreeMemory",
		"Disconnect",
		"Connect",
		"CloseHandle",
	}
	if !slices.Equal(mock.Calls, want) {
		t.Errorf("Unexpected call sequence:\n got  %v\n want %v", mock.Calls, want)
	}
	if mock.ConnectedProfile != "HomeWifi" {
		t.Errorf("Expected connect on %q, got %q", "HomeWifi", mock.ConnectedProfile)
	}
	if mock.ConnectedInterface != mocks.DefaultInterfaceID {
		t.Errorf("Expected connect on %s, got %s", mocks.DefaultInterfaceID, mock.ConnectedInterface)
	}
	assertNoLeaks(t, mock)
}

func TestReconnect_OpenFailure(t *testing.T) {
	mock := mocks.NewMockWLANAPI()
	mock.OpenHandleStatus = wlan.StatusServiceNotActive

	if wlan.NewReconnector(mock, wlan.TolerateDisconnectFailure).Reconnect() {
		t.Fatal("Expected reconnect to fail")
	}

	if !slices.Equal(mock.Calls, []string{"OpenHandle"}) {
		t.Errorf("Expected no calls after a failed open, got %v", mock.Calls)
	}
	if mock.CloseHandleCalls != 0 {
		t.Errorf("Expected no close, got %d", mock.CloseHandleCalls)
	}
	assertNoLeaks(t, mock)
}

func TestReconnect_EmptyInterfaceList(t *testing.T) {
	mock := mocks.NewMockWLANAPI()
	mock.Interfaces = nil

	if wlan.NewReconnector(mock, wlan.TolerateDisconnectFailure).Reconnect() {
		t.Fatal("Expected reconnect to fail")
	}

	if mock.CloseHandleCalls != 1 {
		t.Errorf("Expected session closed once, got %d", mock.CloseHandleCalls)
	}
	if mock.ConnectCalls != 0 || mock.DisconnectCalls != 0 {
		t.Errorf("Expected no connect or disconnect, got %d/%d", mock.ConnectCalls, mock.DisconnectCalls)
	}
	if mock.QueryCalls != 0 {
		t.Errorf("Expected no profile query, got %d", mock.QueryCalls)
	}
	assertNoLeaks(t, mock)
}

func TestReconnect_FirstInterfaceIsUsed(t *testing.T) {
	second, _ := wlan.ParseInterfaceID("{00000000-0000-0000-0000-000000000002}")
	mock := mocks.NewMockWLANAPI()
	mock.Interfaces = append(mock.Interfaces, wlan.InterfaceInfo{ID: second, Description: "USB adapter"})

	if !wlan.NewReconnector(mock, wlan.TolerateDisconnectFailure).Reconnect() {
		t.Fatal("Expected reconnect to succeed")
	}
	if mock.ConnectedInterface != mocks.DefaultInterfaceID {
		t.Errorf("Expected the first interface, got %s", mock.ConnectedInterface)
	}
}

func TestReconnect_ProfileFailures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(m *mocks.MockWLANAPI)
	}{
		{
			name:  "query fails",
			setup: func(m *mocks.MockWLANAPI) { m.QueryStatus = wlan.StatusInvalidState },
		},
		{
			name: "query fails with a buffer",
			setup: func(m *mocks.MockWLANAPI) {
				m.QueryStatus = wlan.StatusInvalidState
				m.AllocateOnFailure = true
			},
		},
		{
			name:  "no attributes",
			setup: func(m *mocks.MockWLANAPI) { m.NilAttributes = true },
		},
		{
			name:  "empty profile name",
			setup: func(m *mocks.MockWLANAPI) { m.ProfileName = "" },
		},
		{
			name:  "padding only",
			setup: func(m *mocks.MockWLANAPI) { m.ProfileName = "\x00\x00\x00" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := mocks.NewMockWLANAPI()
			tt.setup(mock)

			if wlan.NewReconnector(mock, wlan.TolerateDisconnectFailure).Reconnect() {
				t.Fatal("Expected reconnect to fail")
			}

			if mock.ConnectCalls != 0 || mock.DisconnectCalls != 0 {
				t.Errorf("Expected no connect or disconnect, got %d/%d", mock.ConnectCalls, mock.DisconnectCalls)
			}
			if a, f := mock.Allocated(mocks.AllocBuffer), mock.Freed(mocks.AllocBuffer); a != f || f > 1 {
				t.Errorf("Expected any query buffer freed exactly once: allocated %d, freed %d", a, f)
			}
			if mock.CloseHandleCalls != 1 {
				t.Errorf("Expected session closed once, got %d", mock.CloseHandleCalls)
			}
			assertNoLeaks(t, mock)
		})
	}
}

func TestReconnect_DisconnectFailure(t *testing.T) {
	tests := []struct {
		name        string
		policy      wlan.DisconnectPolicy
		wantResult  bool
		wantConnect int
	}{
		{name: "tolerated", policy: wlan.TolerateDisconnectFailure, wantResult: true, wantConnect: 1},
		{name: "aborts", policy: wlan.AbortOnDisconnectFailure, wantResult: false, wantConnect: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := mocks.NewMockWLANAPI()
			mock.DisconnectStatus = wlan.StatusInvalidState

			if got := wlan.NewReconnector(mock, tt.policy).Reconnect(); got != tt.wantResult {
				t.Errorf("Reconnect() = %t, want %t", got, tt.wantResult)
			}
			if mock.ConnectCalls != tt.wantConnect {
				t.Errorf("Expected %d connect calls, got %d", tt.wantConnect, mock.ConnectCalls)
			}
			if mock.CloseHandleCalls != 1 {
				t.Errorf("Expected session closed once, got %d", mock.CloseHandleCalls)
			}
			assertNoLeaks(t, mock)
		})
	}
}

func TestReconnect_ConnectFailure(t *testing.T) {
	mock := mocks.NewMockWLANAPI()
	mock.ConnectStatus = wlan.StatusInvalidParameter

	if wlan.NewReconnector(mock, wlan.TolerateDisconnectFailure).Reconnect() {
		t.Fatal("Expected reconnect to fail")
	}
	if mock.CloseHandleCalls != 1 {
		t.Errorf("Expected session closed once, got %d", mock.CloseHandleCalls)
	}
	if last := mock.Calls[len(mock.Calls)-1]; last != "CloseHandle" {
		t.Errorf("Expected close right after connect, last call was %s", last)
	}
	assertNoLeaks(t, mock)
}

func TestReconnect_CloseFailureKeepsOutcome(t *testing.T) {
	mock := mocks.NewMockWLANAPI()
	mock.CloseHandleStatus = wlan.StatusInvalidHandle

	if !wlan.NewReconnector(mock, wlan.TolerateDisconnectFailure).Reconnect() {
		t.Fatal("Expected the connect result to be the outcome")
	}
}

func TestReconnect_NoLeaksAtAnyFailurePoint(t *testing.T) {
	failures := map[string]func(m *mocks.MockWLANAPI){
		"none":                func(m *mocks.MockWLANAPI) {},
		"open":                func(m *mocks.MockWLANAPI) { m.OpenHandleStatus = wlan.StatusServiceNotActive },
		"enum":                func(m *mocks.MockWLANAPI) { m.EnumStatus = wlan.StatusInvalidHandle },
		"enum with a list":    func(m *mocks.MockWLANAPI) { m.EnumStatus = wlan.StatusInvalidHandle; m.AllocateOnFailure = true },
		"empty list":          func(m *mocks.MockWLANAPI) { m.Interfaces = nil },
		"query":               func(m *mocks.MockWLANAPI) { m.QueryStatus = wlan.StatusNotFound },
		"query with a buffer": func(m *mocks.MockWLANAPI) { m.QueryStatus = wlan.StatusNotFound; m.AllocateOnFailure = true },
		"no attributes":       func(m *mocks.MockWLANAPI) { m.NilAttributes = true },
		"empty profile":       func(m *mocks.MockWLANAPI) { m.ProfileName = "\x00" },
		"disconnect":          func(m *mocks.MockWLANAPI) { m.DisconnectStatus = wlan.StatusInvalidState },
		"connect":             func(m *mocks.MockWLANAPI) { m.ConnectStatus = wlan.StatusInvalidParameter },
		"close":               func(m *mocks.MockWLANAPI) { m.CloseHandleStatus = wlan.StatusInvalidHandle },
		"disconnect and connect": func(m *mocks.MockWLANAPI) {
			m.DisconnectStatus = wlan.StatusInvalidState
			m.ConnectStatus = wlan.StatusInvalidParameter
		},
	}

	for _, policy := range []wlan.DisconnectPolicy{wlan.TolerateDisconnectFailure, wlan.AbortOnDisconnectFailure} {
		for name, setup := range failures {
			t.Run(policy.String()+"/"+name, func(t *testing.T) {
				mock := mocks.NewMockWLANAPI()
				setup(mock)

				wlan.NewReconnector(mock, policy).Reconnect()

				assertNoLeaks(t, mock)
				if mock.OpenHandleCalls == 1 && mock.OpenHandleStatus.OK() && mock.CloseHandleCalls != 1 {
					t.Errorf("Expected the opened session closed once, got %d", mock.CloseHandleCalls)
				}
			})
		}
	}
}

func TestListInterfaces(t *testing.T) {
	mock := mocks.NewMockWLANAPI()

	interfaces, err := wlan.ListInterfaces(mock)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(interfaces) != 1 || interfaces[0].ID != mocks.DefaultInterfaceID {
		t.Errorf("Unexpected interfaces: %+v", interfaces)
	}
	assertNoLeaks(t, mock)

	failing := mocks.NewMockWLANAPI()
	failing.EnumStatus = wlan.StatusInvalidHandle
	failing.AllocateOnFailure = true
	if _, err := wlan.ListInterfaces(failing); err == nil {
		t.Error("Expected enumeration failure to be reported")
	}
	assertNoLeaks(t, failing)
}
