package mocks

import (
	"sync"

	"github.com/maksimkurb/internet-reloader/src/internal/wlan"
)

// DefaultInterfaceID is the GUID of the single adapter NewMockWLANAPI reports.
var DefaultInterfaceID = wlan.InterfaceID{
	Data1: 0x6B29FC40,
	Data2: 0xCA47,
	Data3: 0x1067,
	Data4: [8]byte{0xB3, 0x1D, 0x00, 0xDD, 0x01, 0x06, 0x62, 0xDA},
}

// Allocation kinds tracked by MockWLANAPI.
const (
	AllocList   = "list"
	AllocBuffer = "buffer"
)

// MockWLANAPI is a scripted implementation of wlan.API.
//
// Every status field defaults to success. Lists and buffers are handed out as
// tracked allocations so tests can check that each one is freed exactly once,
// and sessions are tracked so tests can check each one is closed exactly once.
type MockWLANAPI struct {
	mu sync.Mutex

	// Scripted statuses, zero means success.
	OpenHandleStatus  wlan.Status
	CloseHandleStatus wlan.Status
	EnumStatus        wlan.Status
	QueryStatus       wlan.Status
	DisconnectStatus  wlan.Status
	ConnectStatus     wlan.Status

	// Interfaces is what EnumInterfaces reports.
	Interfaces []wlan.InterfaceInfo

	// ProfileName is the raw profile field QueryCurrentConnection reports.
	ProfileName string

	// NilAttributes makes a successful QueryCurrentConnection return no result.
	NilAttributes bool

	// AllocateOnFailure makes EnumInterfaces and QueryCurrentConnection hand
	// out a buffer even when their scripted status is a failure.
	AllocateOnFailure bool

	// ConnectFunc is called by Connect if not nil, after bookkeeping.
	ConnectFunc func(id wlan.InterfaceID, profile string) wlan.Status

	// Call counters
	OpenHandleCalls  int
	CloseHandleCalls int
	EnumCalls        int
	QueryCalls       int
	DisconnectCalls  int
	ConnectCalls     int
	FreeMemoryCalls  int

	// Calls records primitive names in call order.
	Calls []string

	// ConnectedProfile is the profile passed to the last Connect.
	ConnectedProfile string

	// ConnectedInterface is the interface passed to the last Connect.
	ConnectedInterface wlan.InterfaceID

	// BadFrees counts frees of unknown or already freed memory.
	BadFrees int

	// BadCloses counts closes of unknown or already closed sessions.
	BadCloses int

	nextHandle  uintptr
	sessions    map[wlan.Session]bool
	allocations map[wlan.Memory]string
	allocated   map[string]int
	freed       map[string]int
}

// NewMockWLANAPI creates a mock with one connected adapter whose active
// profile is "HomeWifi", padded with NULs like the native fixed-size field.
func NewMockWLANAPI() *MockWLANAPI {
	return &MockWLANAPI{
		Interfaces: []wlan.InterfaceInfo{
			{ID: DefaultInterfaceID, Description: "Mock Wireless Adapter", State: wlan.StateConnected},
		},
		ProfileName: "HomeWifi\x00\x00\x00\x00",
	}
}

func (m *MockWLANAPI) init() {
	if m.sessions == nil {
		m.sessions = make(map[wlan.Session]bool)
		m.allocations = make(map[wlan.Memory]string)
		m.allocated = make(map[string]int)
		m.freed = make(map[string]int)
	}
}

func (m *MockWLANAPI) handle() uintptr {
	m.nextHandle++
	return 0x1000 + m.nextHandle
}

func (m *MockWLANAPI) allocate(kind string) wlan.Memory {
	mem := wlan.Memory(m.handle())
	m.allocations[mem] = kind
	m.allocated[kind]++
	return mem
}

// OpenHandle opens a tracked session.
func (m *MockWLANAPI) OpenHandle() (wlan.Session, wlan.Status) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.init()

	m.OpenHandleCalls++
	m.Calls = append(m.Calls, "OpenHandle")
	if !m.OpenHandleStatus.OK() {
		return 0, m.OpenHandleStatus
	}

	session := wlan.Session(m.handle())
	m.sessions[session] = true
	return session, wlan.StatusSuccess
}

// CloseHandle closes a tracked session.
func (m *MockWLANAPI) CloseHandle(session wlan.Session) wlan.Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.init()

	m.CloseHandleCalls++
	m.Calls = append(m.Calls, "CloseHandle")
	if !m.sessions[session] {
		m.BadCloses++
		return wlan.StatusInvalidHandle
	}
	delete(m.sessions, session)
	return m.CloseHandleStatus
}

// EnumInterfaces returns a copy of Interfaces in a tracked list allocation.
func (m *MockWLANAPI) EnumInterfaces(session wlan.Session) (*wlan.InterfaceList, wlan.Status) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.init()

	m.EnumCalls++
	m.Calls = append(m.Calls, "EnumInterfaces")
	if !m.EnumStatus.OK() {
		if m.AllocateOnFailure {
			return &wlan.InterfaceList{Memory: m.allocate(AllocList)}, m.EnumStatus
		}
		return nil, m.EnumStatus
	}

	list := &wlan.InterfaceList{Memory: m.allocate(AllocList)}
	list.Interfaces = append(list.Interfaces, m.Interfaces...)
	return list, wlan.StatusSuccess
}

// QueryCurrentConnection returns ProfileName in a tracked buffer allocation.
func (m *MockWLANAPI) QueryCurrentConnection(session wlan.Session, id wlan.InterfaceID) (*wlan.ConnectionAttributes, wlan.Status) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.init()

	m.QueryCalls++
	m.Calls = append(m.Calls, "QueryCurrentConnection")
	if !m.QueryStatus.OK() {
		if m.AllocateOnFailure {
			return &wlan.ConnectionAttributes{Memory: m.allocate(AllocBuffer)}, m.QueryStatus
		}
		return nil, m.QueryStatus
	}
	if m.NilAttributes {
		return nil, wlan.StatusSuccess
	}

	return &wlan.ConnectionAttributes{
		Memory:      m.allocate(AllocBuffer),
		State:       wlan.StateConnected,
		ProfileName: m.ProfileName,
	}, wlan.StatusSuccess
}

// Disconnect returns DisconnectStatus.
func (m *MockWLANAPI) Disconnect(session wlan.Session, id wlan.InterfaceID) wlan.Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.DisconnectCalls++
	m.Calls = append(m.Calls, "Disconnect")
	return m.DisconnectStatus
}

// Connect records the profile and returns ConnectStatus.
func (m *MockWLANAPI) Connect(session wlan.Session, id wlan.InterfaceID, profile string) wlan.Status {
	m.mu.Lock()
	m.ConnectCalls++
	m.Calls = append(m.Calls, "Connect")
	m.ConnectedProfile = profile
	m.ConnectedInterface = id
	fn := m.ConnectFunc
	status := m.ConnectStatus
	m.mu.Unlock()

	if fn != nil {
		return fn(id, profile)
	}
	return status
}

// FreeMemory releases a tracked allocation.
func (m *MockWLANAPI) FreeMemory(memory wlan.Memory) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.init()

	m.FreeMemoryCalls++
	m.Calls = append(m.Calls, "FreeMemory")
	kind, ok := m.allocations[memory]
	if !ok {
		m.BadFrees++
		return
	}
	delete(m.allocations, memory)
	m.freed[kind]++
}

// OpenSessions returns the number of sessions opened and not yet closed.
func (m *MockWLANAPI) OpenSessions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// LiveAllocations returns the number of allocations not yet freed.
func (m *MockWLANAPI) LiveAllocations() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.allocations)
}

// Allocated returns how many allocations of the kind were handed out.
func (m *MockWLANAPI) Allocated(kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.allocated[kind]
}

// Freed returns how many allocations of the kind were freed.
func (m *MockWLANAPI) Freed(kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.freed[kind]
}
