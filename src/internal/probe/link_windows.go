//go:build windows

package probe

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/maksimkurb/internet-reloader/src/internal/errors"
)

var (
	modwininet                    = windows.NewLazySystemDLL("wininet.dll")
	procInternetGetConnectedState = modwininet.NewProc("InternetGetConnectedState")
)

// WininetChecker asks InternetGetConnectedState whether the machine has a
// LAN, modem or proxy connection configured and up.
type WininetChecker struct{}

// NewSystemLinkChecker returns the wininet-based checker.
func NewSystemLinkChecker() LinkChecker {
	return WininetChecker{}
}

func (WininetChecker) IsLinkUp() (bool, error) {
	if err := modwininet.Load(); err != nil {
		return false, errors.NewInterfaceError("wininet.dll is not available", err)
	}
	var flags uint32
	r, _, _ := procInternetGetConnectedState.Call(uintptr(unsafe.Pointer(&flags)), 0)
	return r != 0, nil
}
