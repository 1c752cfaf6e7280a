package api

import (
	"fmt"
	"net/http"

	"github.com/maksimkurb/internet-reloader/src/internal/status"
)

// CheckHealth reports whether the monitor is running, the WLAN subsystem
// answers, and the latest poll found the internet reachable.
// GET /api/v1/health
func (h *Handler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	snap := h.monitor.Snapshot()

	response := HealthCheckResponse{
		Healthy: true,
		Checks:  make(map[string]CheckResult),
	}
	set := func(name string, passed bool, message string) {
		response.Checks[name] = CheckResult{Passed: passed, Message: message}
		if !passed {
			response.Healthy = false
		}
	}

	if snap.Running {
		set("monitor", true, fmt.Sprintf("Polling every %ds", snap.IntervalSeconds))
	} else {
		set("monitor", false, "Poll loop is not running")
	}

	interfaces, err := h.interfaces()
	switch {
	case err != nil:
		set("wlan", false, "WLAN subsystem unavailable: "+err.Error())
	case len(interfaces) == 0:
		set("wlan", false, "No wireless interfaces found")
	default:
		set("wlan", true, fmt.Sprintf("%d wireless interface(s), using %s", len(interfaces), interfaces[0].ID))
	}

	switch {
	case snap.Polls == 0:
		set("internet", false, "No poll has completed yet")
	case snap.Status == status.Connected:
		set("internet", true, "Internet is reachable")
	default:
		set("internet", false, "Latest status is "+snap.Status.String())
	}

	writeJSONData(w, response)
}
