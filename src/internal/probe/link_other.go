//go:build !linux && !windows

package probe

import (
	"net"

	"github.com/maksimkurb/internet-reloader/src/internal/errors"
)

// InterfaceFlagsChecker reports a link as up when any non-loopback
// interface has the up flag set.
type InterfaceFlagsChecker struct{}

// NewSystemLinkChecker returns the interface-flags checker.
func NewSystemLinkChecker() LinkChecker {
	return InterfaceFlagsChecker{}
}

func (InterfaceFlagsChecker) IsLinkUp() (bool, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return false, errors.NewInterfaceError("failed to list interfaces", err)
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback == 0 && iface.Flags&net.FlagUp != 0 {
			return true, nil
		}
	}
	return false, nil
}
