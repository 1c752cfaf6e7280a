package wlan

import (
	"github.com/maksimkurb/internet-reloader/src/internal/errors"
	"github.com/maksimkurb/internet-reloader/src/internal/log"
)

// ListInterfaces returns a copy of the adapter records known to the subsystem.
// It opens and closes its own session and frees the enumeration buffer.
func ListInterfaces(api API) ([]InterfaceInfo, error) {
	session, status := api.OpenHandle()
	if !status.OK() {
		return nil, errors.NewWLANError("WlanOpenHandle", uint32(status))
	}
	defer func() {
		if status := api.CloseHandle(session); !status.OK() {
			log.Warnf("Failed to close WLAN session: %v", errors.NewWLANError("WlanCloseHandle", uint32(status)))
		}
	}()

	list, status := api.EnumInterfaces(session)
	if list != nil && list.Memory != 0 {
		defer api.FreeMemory(list.Memory)
	}
	if !status.OK() {
		return nil, errors.NewWLANError("WlanEnumInterfaces", uint32(status))
	}
	if list == nil {
		return nil, nil
	}

	interfaces := make([]InterfaceInfo, len(list.Interfaces))
	copy(interfaces, list.Interfaces)
	return interfaces, nil
}
