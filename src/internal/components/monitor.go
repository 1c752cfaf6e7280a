package components

import (
	"context"

	"github.com/maksimkurb/internet-reloader/src/internal/service"
)

// MonitorComponent runs the connectivity monitor's poll loop.
type MonitorComponent struct {
	monitor *service.Monitor
}

// NewMonitorComponent wraps a monitor as a Component.
func NewMonitorComponent(monitor *service.Monitor) *MonitorComponent {
	return &MonitorComponent{monitor: monitor}
}

// Name implements Component.
func (c *MonitorComponent) Name() string {
	return "Monitor"
}

// Run implements Component.
func (c *MonitorComponent) Run(ctx context.Context) error {
	return c.monitor.Run(ctx)
}
