package api

import (
	"encoding/json"
	"net/http"

	"github.com/maksimkurb/internet-reloader/src/internal/service"
	"github.com/maksimkurb/internet-reloader/src/internal/wlan"
)

// Monitor is the part of the connectivity monitor the API uses.
type Monitor interface {
	Snapshot() service.Snapshot
	ForceReconnect() bool
}

// InterfaceLister lists wireless interfaces.
type InterfaceLister func() ([]wlan.InterfaceInfo, error)

// Handler manages all API endpoints and dependencies.
type Handler struct {
	monitor    Monitor
	interfaces InterfaceLister
}

// NewHandler creates a new API handler.
func NewHandler(monitor Monitor, interfaces InterfaceLister) *Handler {
	return &Handler{
		monitor:    monitor,
		interfaces: interfaces,
	}
}

// GetStatus returns the latest monitor snapshot.
// GET /api/v1/status
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	writeJSONData(w, h.monitor.Snapshot())
}

// Reconnect runs one forced reconnect attempt and reports whether the
// subsystem accepted the connect.
// POST /api/v1/reconnect
func (h *Handler) Reconnect(w http.ResponseWriter, r *http.Request) {
	writeJSONData(w, ReconnectResponse{Success: h.monitor.ForceReconnect()})
}

// GetInterfaces lists wireless interfaces.
// GET /api/v1/interfaces
func (h *Handler) GetInterfaces(w http.ResponseWriter, r *http.Request) {
	list, err := h.interfaces()
	if err != nil {
		WriteWLANError(w, "Failed to list interfaces: "+err.Error())
		return
	}

	response := InterfacesResponse{Interfaces: make([]InterfaceInfo, 0, len(list))}
	for _, iface := range list {
		response.Interfaces = append(response.Interfaces, InterfaceInfo{
			ID:          iface.ID.String(),
			Description: iface.Description,
			State:       iface.State.String(),
		})
	}
	writeJSONData(w, response)
}

// writeJSON writes a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(DataResponse{Data: data})
}

// writeJSONData writes a successful JSON response with data.
func writeJSONData(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}
