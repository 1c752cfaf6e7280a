package wlan

import (
	"fmt"
	"strconv"
	"strings"
)

// Status is a native status code returned by the WLAN subsystem.
// Zero means success; every other value is passed through unchanged.
type Status uint32

const (
	StatusSuccess          Status = 0    // ERROR_SUCCESS
	StatusInvalidHandle    Status = 6    // ERROR_INVALID_HANDLE
	StatusNotSupported     Status = 50   // ERROR_NOT_SUPPORTED
	StatusInvalidParameter Status = 87   // ERROR_INVALID_PARAMETER
	StatusInvalidState     Status = 5023 // ERROR_INVALID_STATE
	StatusServiceNotActive Status = 1062 // ERROR_SERVICE_NOT_ACTIVE
	StatusNotFound         Status = 1168 // ERROR_NOT_FOUND
)

// OK reports whether the call succeeded.
func (s Status) OK() bool {
	return s == StatusSuccess
}

// Session is an opaque handle to an open WLAN client session.
type Session uintptr

// Memory identifies a block allocated by the subsystem on behalf of the caller.
// Every non-zero Memory handed out must be passed to API.FreeMemory exactly once.
type Memory uintptr

// InterfaceID is the GUID naming one wireless adapter.
// Its layout matches the Windows GUID structure.
type InterfaceID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// String returns the canonical registry form, e.g. {6B29FC40-CA47-1067-B31D-00DD010662DA}.
func (id InterfaceID) String() string {
	return fmt.Sprintf("{%08X-%04X-%04X-%02X%02X-%02X%02X%02X%02X%02X%02X}",
		id.Data1, id.Data2, id.Data3,
		id.Data4[0], id.Data4[1],
		id.Data4[2], id.Data4[3], id.Data4[4], id.Data4[5], id.Data4[6], id.Data4[7])
}

// ParseInterfaceID parses a GUID with or without surrounding braces.
func ParseInterfaceID(s string) (InterfaceID, error) {
	var id InterfaceID

	raw := strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(s), "{"), "}")
	parts := strings.Split(raw, "-")
	if len(parts) != 5 || len(parts[0]) != 8 || len(parts[1]) != 4 || len(parts[2]) != 4 ||
		len(parts[3]) != 4 || len(parts[4]) != 12 {
		return id, fmt.Errorf("invalid interface GUID %q", s)
	}

	d1, err := strconv.ParseUint(parts[0], 16, 32)
	if err != nil {
		return id, fmt.Errorf("invalid interface GUID %q: %w", s, err)
	}
	d2, err := strconv.ParseUint(parts[1], 16, 16)
	if err != nil {
		return id, fmt.Errorf("invalid interface GUID %q: %w", s, err)
	}
	d3, err := strconv.ParseUint(parts[2], 16, 16)
	if err != nil {
		return id, fmt.Errorf("invalid interface GUID %q: %w", s, err)
	}

	tail := parts[3] + parts[4]
	for i := 0; i < 8; i++ {
		b, err := strconv.ParseUint(tail[i*2:i*2+2], 16, 8)
		if err != nil {
			return id, fmt.Errorf("invalid interface GUID %q: %w", s, err)
		}
		id.Data4[i] = byte(b)
	}

	id.Data1 = uint32(d1)
	id.Data2 = uint16(d2)
	id.Data3 = uint16(d3)
	return id, nil
}

// InterfaceState mirrors WLAN_INTERFACE_STATE.
type InterfaceState uint32

const (
	StateNotReady InterfaceState = iota
	StateConnected
	StateAdHocNetworkFormed
	StateDisconnecting
	StateDisconnected
	StateAssociating
	StateDiscovering
	StateAuthenticating
)

func (s InterfaceState) String() string {
	switch s {
	case StateNotReady:
		return "not ready"
	case StateConnected:
		return "connected"
	case StateAdHocNetworkFormed:
		return "ad hoc network formed"
	case StateDisconnecting:
		return "disconnecting"
	case StateDisconnected:
		return "disconnected"
	case StateAssociating:
		return "associating"
	case StateDiscovering:
		return "discovering"
	case StateAuthenticating:
		return "authenticating"
	default:
		return fmt.Sprintf("state(%d)", uint32(s))
	}
}

// InterfaceInfo is one adapter record from an enumeration.
type InterfaceInfo struct {
	ID          InterfaceID
	Description string
	State       InterfaceState
}

// InterfaceList is the decoded result of EnumInterfaces.
// Memory backs the list and must be released with FreeMemory.
type InterfaceList struct {
	Memory     Memory
	Interfaces []InterfaceInfo
}

// ConnectionAttributes is the decoded result of QueryCurrentConnection.
// ProfileName is the raw fixed-size field and may carry trailing NUL padding.
type ConnectionAttributes struct {
	Memory      Memory
	State       InterfaceState
	ProfileName string
}

// API is the set of primitive WLAN subsystem calls the reconnector is built on.
//
// Each method maps to exactly one subsystem call and returns its status code
// unchanged. Implementations do not retry or cache.
type API interface {
	// OpenHandle opens a client session.
	OpenHandle() (Session, Status)

	// CloseHandle closes a session. Call it exactly once per opened session.
	CloseHandle(session Session) Status

	// EnumInterfaces lists the wireless adapters known to the subsystem.
	EnumInterfaces(session Session) (*InterfaceList, Status)

	// QueryCurrentConnection returns the attributes of the interface's active connection.
	QueryCurrentConnection(session Session, id InterfaceID) (*ConnectionAttributes, Status)

	// Disconnect drops the interface's current connection.
	Disconnect(session Session, id InterfaceID) Status

	// Connect connects the interface using a saved profile.
	Connect(session Session, id InterfaceID, profile string) Status

	// FreeMemory releases a list or buffer returned by the subsystem.
	FreeMemory(memory Memory)
}
