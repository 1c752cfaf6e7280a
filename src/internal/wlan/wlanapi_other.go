//go:build !windows

package wlan

import (
	"runtime"

	"github.com/maksimkurb/internet-reloader/src/internal/errors"
)

// NewSystemAPI reports that the native WLAN API is only available on Windows.
// The returned API fails every call with StatusNotSupported.
func NewSystemAPI() (API, error) {
	return unsupportedAPI{}, errors.New(errors.ErrCodeWLAN, "native WLAN API is not available on "+runtime.GOOS)
}
