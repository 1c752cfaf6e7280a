package domain

import (
	"github.com/maksimkurb/internet-reloader/src/internal/config"
	"github.com/maksimkurb/internet-reloader/src/internal/hooks"
	"github.com/maksimkurb/internet-reloader/src/internal/log"
	"github.com/maksimkurb/internet-reloader/src/internal/probe"
	"github.com/maksimkurb/internet-reloader/src/internal/status"
	"github.com/maksimkurb/internet-reloader/src/internal/wlan"
)

// AppDependencies is a dependency injection container that holds all application dependencies.
//
// Production code builds it with NewAppDependencies; tests inject scripted
// implementations with NewTestDependencies.
//
// Usage:
//
//	deps := domain.NewDefaultDependencies()
//	reconnector, err := deps.Reconnector(cfg)
type AppDependencies struct {
	wlanAPI   wlan.API
	wlanErr   error
	probe     status.Probe
	commander hooks.Commander
}

// AppConfig holds configuration for creating application dependencies.
type AppConfig struct {
	// DisableWLAN replaces the native WLAN binding with one that fails every
	// call. Polls still run; reconnect attempts fail at the session step.
	DisableWLAN bool
}

// NewAppDependencies creates a new dependency container with production implementations.
//
// A missing WLAN subsystem is not fatal: it is logged, and the returned
// binding fails every call so the poll loop keeps reporting status.
func NewAppDependencies(cfg AppConfig) *AppDependencies {
	deps := &AppDependencies{commander: hooks.ExecCommander{}}

	if cfg.DisableWLAN {
		deps.wlanAPI = wlan.UnsupportedAPI()
		return deps
	}

	api, err := wlan.NewSystemAPI()
	if err != nil {
		log.Warnf("WLAN subsystem unavailable, reconnects will fail: %v", err)
	}
	deps.wlanAPI = api
	deps.wlanErr = err
	return deps
}

// NewDefaultDependencies creates dependencies using default configuration.
func NewDefaultDependencies() *AppDependencies {
	return NewAppDependencies(AppConfig{})
}

// NewTestDependencies creates a dependency container with the given
// implementations. A nil probe means the probe is built from configuration.
func NewTestDependencies(api wlan.API, p status.Probe, commander hooks.Commander) *AppDependencies {
	return &AppDependencies{
		wlanAPI:   api,
		probe:     p,
		commander: commander,
	}
}

// WLANAPI returns the WLAN subsystem binding.
func (d *AppDependencies) WLANAPI() wlan.API {
	return d.wlanAPI
}

// WLANError returns why the native binding could not be loaded, if it could not.
func (d *AppDependencies) WLANError() error {
	return d.wlanErr
}

// Probe returns the injected probe, or the one described by cfg.
func (d *AppDependencies) Probe(cfg *config.Config) (status.Probe, error) {
	if d.probe != nil {
		return d.probe, nil
	}
	return probe.FromConfig(cfg)
}

// Reconnector returns a reconnector using the configured disconnect policy.
func (d *AppDependencies) Reconnector(cfg *config.Config) (*wlan.Reconnector, error) {
	policy, err := wlan.ParseDisconnectPolicy(cfg.Reconnect.DisconnectPolicy)
	if err != nil {
		return nil, err
	}
	return wlan.NewReconnector(d.wlanAPI, policy), nil
}

// HookRunner returns a hook runner for the configured hooks.
func (d *AppDependencies) HookRunner(cfg *config.Config) *hooks.Runner {
	return hooks.NewRunner(
		cfg.ResolveHook(cfg.Hooks.OnStatusChange),
		cfg.ResolveHook(cfg.Hooks.OnReconnect),
		d.commander,
	)
}
