//go:build windows

package wlan

import (
	"runtime"
	"unsafe"

	"github.com/maksimkurb/internet-reloader/src/internal/errors"
	"golang.org/x/sys/windows"
)

var (
	modwlanapi = windows.NewLazySystemDLL("wlanapi.dll")

	procWlanOpenHandle     = modwlanapi.NewProc("WlanOpenHandle")
	procWlanCloseHandle    = modwlanapi.NewProc("WlanCloseHandle")
	procWlanEnumInterfaces = modwlanapi.NewProc("WlanEnumInterfaces")
	procWlanQueryInterface = modwlanapi.NewProc("WlanQueryInterface")
	procWlanDisconnect     = modwlanapi.NewProc("WlanDisconnect")
	procWlanConnect        = modwlanapi.NewProc("WlanConnect")
	procWlanFreeMemory     = modwlanapi.NewProc("WlanFreeMemory")
)

const (
	// Client version 2 is Windows Vista and later.
	clientVersion = 2

	// WLAN_MAX_NAME_LENGTH
	maxNameLength = 256

	// wlan_intf_opcode_current_connection
	opcodeCurrentConnection = 7

	// wlan_connection_mode_profile
	connectionModeProfile = 0

	// dot11_BSS_type_infrastructure
	bssTypeInfrastructure = 1
)

// interfaceInfo is WLAN_INTERFACE_INFO.
type interfaceInfo struct {
	InterfaceGUID windows.GUID
	Description   [maxNameLength]uint16
	State         uint32
}

// interfaceInfoList is WLAN_INTERFACE_INFO_LIST. InterfaceInfo is a
// variable-length array of NumberOfItems entries.
type interfaceInfoList struct {
	NumberOfItems uint32
	Index         uint32
	InterfaceInfo [1]interfaceInfo
}

// connectionAttributes is the leading part of WLAN_CONNECTION_ATTRIBUTES.
// The association and security attributes that follow are not read.
type connectionAttributes struct {
	State          uint32
	ConnectionMode uint32
	ProfileName    [maxNameLength]uint16
}

// connectionParameters is WLAN_CONNECTION_PARAMETERS.
type connectionParameters struct {
	ConnectionMode   uint32
	Profile          *uint16
	Dot11SSID        uintptr
	DesiredBSSIDList uintptr
	Dot11BSSType     uint32
	Flags            uint32
}

// systemAPI calls wlanapi.dll directly. Status codes are returned as-is.
type systemAPI struct{}

// NewSystemAPI returns the wlanapi.dll binding. When the library cannot be
// loaded (Server editions without the WLAN service feature), the returned API
// fails every call with StatusNotSupported and the error says why.
func NewSystemAPI() (API, error) {
	if err := modwlanapi.Load(); err != nil {
		return unsupportedAPI{}, errors.Wrap(errors.ErrCodeWLAN, "wlanapi.dll is not available", err)
	}
	return systemAPI{}, nil
}

func (systemAPI) OpenHandle() (Session, Status) {
	var negotiated uint32
	var handle windows.Handle
	r, _, _ := procWlanOpenHandle.Call(
		uintptr(clientVersion),
		0,
		uintptr(unsafe.Pointer(&negotiated)),
		uintptr(unsafe.Pointer(&handle)),
	)
	return Session(handle), Status(r)
}

func (systemAPI) CloseHandle(session Session) Status {
	r, _, _ := procWlanCloseHandle.Call(uintptr(session), 0)
	return Status(r)
}

func (systemAPI) EnumInterfaces(session Session) (*InterfaceList, Status) {
	var raw *interfaceInfoList
	r, _, _ := procWlanEnumInterfaces.Call(
		uintptr(session),
		0,
		uintptr(unsafe.Pointer(&raw)),
	)
	if raw == nil {
		return nil, Status(r)
	}

	list := &InterfaceList{Memory: Memory(unsafe.Pointer(raw))}
	if Status(r).OK() && raw.NumberOfItems > 0 {
		items := unsafe.Slice(&raw.InterfaceInfo[0], raw.NumberOfItems)
		list.Interfaces = make([]InterfaceInfo, 0, len(items))
		for i := range items {
			list.Interfaces = append(list.Interfaces, InterfaceInfo{
				ID:          InterfaceID(items[i].InterfaceGUID),
				Description: windows.UTF16ToString(items[i].Description[:]),
				State:       InterfaceState(items[i].State),
			})
		}
	}
	return list, Status(r)
}

func (systemAPI) QueryCurrentConnection(session Session, id InterfaceID) (*ConnectionAttributes, Status) {
	guid := windows.GUID(id)
	var size uint32
	var raw *connectionAttributes
	var valueType uint32
	r, _, _ := procWlanQueryInterface.Call(
		uintptr(session),
		uintptr(unsafe.Pointer(&guid)),
		uintptr(opcodeCurrentConnection),
		0,
		uintptr(unsafe.Pointer(&size)),
		uintptr(unsafe.Pointer(&raw)),
		uintptr(unsafe.Pointer(&valueType)),
	)
	if raw == nil {
		return nil, Status(r)
	}

	attrs := &ConnectionAttributes{Memory: Memory(unsafe.Pointer(raw))}
	if Status(r).OK() && uintptr(size) >= unsafe.Sizeof(connectionAttributes{}) {
		attrs.State = InterfaceState(raw.State)
		attrs.ProfileName = windows.UTF16ToString(raw.ProfileName[:])
	}
	return attrs, Status(r)
}

func (systemAPI) Disconnect(session Session, id InterfaceID) Status {
	guid := windows.GUID(id)
	r, _, _ := procWlanDisconnect.Call(
		uintptr(session),
		uintptr(unsafe.Pointer(&guid)),
		0,
	)
	return Status(r)
}

func (systemAPI) Connect(session Session, id InterfaceID, profile string) Status {
	profilePtr, err := windows.UTF16PtrFromString(profile)
	if err != nil {
		return StatusInvalidParameter
	}

	guid := windows.GUID(id)
	params := connectionParameters{
		ConnectionMode: connectionModeProfile,
		Profile:        profilePtr,
		Dot11BSSType:   bssTypeInfrastructure,
	}
	r, _, _ := procWlanConnect.Call(
		uintptr(session),
		uintptr(unsafe.Pointer(&guid)),
		uintptr(unsafe.Pointer(&params)),
		0,
	)
	runtime.KeepAlive(profilePtr)
	return Status(r)
}

func (systemAPI) FreeMemory(memory Memory) {
	if memory == 0 {
		return
	}
	_, _, _ = procWlanFreeMemory.Call(uintptr(memory))
}
