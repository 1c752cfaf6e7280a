package api

// DataResponse wraps successful responses with a "data" field.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// ReconnectResponse is the result of a forced reconnect.
type ReconnectResponse struct {
	Success bool `json:"success"`
}

// InterfaceInfo describes one wireless interface.
type InterfaceInfo struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	State       string `json:"state"`
}

// InterfacesResponse lists wireless interfaces.
type InterfacesResponse struct {
	Interfaces []InterfaceInfo `json:"interfaces"`
}

// HealthCheckResponse is the result of the health checks.
type HealthCheckResponse struct {
	Healthy bool                   `json:"healthy"`
	Checks  map[string]CheckResult `json:"checks"`
}

// CheckResult is the outcome of one health check.
type CheckResult struct {
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}
