package wlan

// unsupportedAPI fails every call with StatusNotSupported. It stands in for
// the system binding where wlanapi.dll is missing or on other platforms.
type unsupportedAPI struct{}

func (unsupportedAPI) OpenHandle() (Session, Status) { return 0, StatusNotSupported }

func (unsupportedAPI) CloseHandle(Session) Status { return StatusNotSupported }

func (unsupportedAPI) EnumInterfaces(Session) (*InterfaceList, Status) {
	return nil, StatusNotSupported
}

func (unsupportedAPI) QueryCurrentConnection(Session, InterfaceID) (*ConnectionAttributes, Status) {
	return nil, StatusNotSupported
}

func (unsupportedAPI) Disconnect(Session, InterfaceID) Status { return StatusNotSupported }

func (unsupportedAPI) Connect(Session, InterfaceID, string) Status { return StatusNotSupported }

func (unsupportedAPI) FreeMemory(Memory) {}

// UnsupportedAPI returns the always-failing binding.
func UnsupportedAPI() API {
	return unsupportedAPI{}
}
