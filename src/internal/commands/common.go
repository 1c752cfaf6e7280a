package commands

import (
	"fmt"

	"github.com/maksimkurb/internet-reloader/src/internal/config"
	"github.com/maksimkurb/internet-reloader/src/internal/domain"
	"github.com/maksimkurb/internet-reloader/src/internal/status"
	"github.com/maksimkurb/internet-reloader/src/internal/wlan"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath string
	Verbose    bool
}

// loadAndValidateConfigOrFail loads configuration from file and validates it.
// A missing file yields the defaults.
func loadAndValidateConfigOrFail(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %v", err)
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %v", err)
	}

	return cfg, nil
}

// buildPollParts builds the probe and reconnector described by cfg.
func buildPollParts(deps *domain.AppDependencies, cfg *config.Config) (status.Probe, *wlan.Reconnector, error) {
	probe, err := deps.Probe(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create probe: %w", err)
	}

	reconnector, err := deps.Reconnector(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create reconnector: %w", err)
	}

	return probe, reconnector, nil
}
