package mocks

import "sync"

// MockProbe is a scripted connectivity probe.
type MockProbe struct {
	mu sync.Mutex

	// Network and Internet are returned unless the matching Func is set.
	Network  bool
	Internet bool

	// NetworkFunc is called by IsConnectedToNetwork if not nil
	NetworkFunc func() bool

	// InternetFunc is called by IsConnectedToInternet if not nil
	InternetFunc func() bool

	NetworkCalls  int
	InternetCalls int
}

// NewMockProbe creates a probe with fixed answers.
func NewMockProbe(network, internet bool) *MockProbe {
	return &MockProbe{Network: network, Internet: internet}
}

// Set changes both answers.
func (m *MockProbe) Set(network, internet bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Network = network
	m.Internet = internet
}

// IsConnectedToNetwork returns Network.
func (m *MockProbe) IsConnectedToNetwork() bool {
	m.mu.Lock()
	m.NetworkCalls++
	fn, v := m.NetworkFunc, m.Network
	m.mu.Unlock()
	if fn != nil {
		return fn()
	}
	return v
}

// IsConnectedToInternet returns Internet.
func (m *MockProbe) IsConnectedToInternet() bool {
	m.mu.Lock()
	m.InternetCalls++
	fn, v := m.InternetFunc, m.Internet
	m.mu.Unlock()
	if fn != nil {
		return fn()
	}
	return v
}

// MockReconnector counts attempts and returns Result.
type MockReconnector struct {
	mu     sync.Mutex
	Result bool
	Calls  int
}

// Reconnect returns Result.
func (m *MockReconnector) Reconnect() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	return m.Result
}

// CallCount returns the number of attempts so far.
func (m *MockReconnector) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls
}
