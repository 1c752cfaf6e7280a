package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/maksimkurb/internet-reloader/src/internal/api"
	"github.com/maksimkurb/internet-reloader/src/internal/components"
	"github.com/maksimkurb/internet-reloader/src/internal/config"
	"github.com/maksimkurb/internet-reloader/src/internal/domain"
	"github.com/maksimkurb/internet-reloader/src/internal/hooks"
	"github.com/maksimkurb/internet-reloader/src/internal/log"
	"github.com/maksimkurb/internet-reloader/src/internal/service"
	"github.com/maksimkurb/internet-reloader/src/internal/wlan"
)

// signalAction is what the service does when it receives a signal.
type signalAction int

const (
	actionShutdown signalAction = iota
	actionReload
	actionReconnect
)

func CreateServiceCommand() *ServiceCommand {
	sc := &ServiceCommand{
		fs: flag.NewFlagSet("service", flag.ExitOnError),
	}

	sc.fs.IntVar(&sc.PollInterval, "poll-interval", 0, "Override poll interval in seconds (0 = use configuration)")
	sc.fs.BoolVar(&sc.NoAPI, "no-api", false, "Do not start the REST API even if it is enabled in configuration")

	return sc
}

type ServiceCommand struct {
	fs           *flag.FlagSet
	cfg          *config.Config
	ctx          *AppContext
	PollInterval int
	NoAPI        bool

	deps    *domain.AppDependencies
	monitor *service.Monitor
	hooks   *hooks.Runner

	runners []*RestartableRunner
}

func (s *ServiceCommand) Name() string {
	return s.fs.Name()
}

func (s *ServiceCommand) Init(args []string, ctx *AppContext) error {
	s.ctx = ctx

	if err := s.fs.Parse(args); err != nil {
		return err
	}
	if s.PollInterval < 0 {
		return fmt.Errorf("poll interval must not be negative")
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	s.cfg = cfg

	if s.deps == nil {
		s.deps = domain.NewDefaultDependencies()
	}

	probe, reconnector, err := buildPollParts(s.deps, cfg)
	if err != nil {
		return err
	}

	s.hooks = s.deps.HookRunner(cfg)
	s.monitor = service.NewMonitor(probe, reconnector, s.hooks, s.interval(cfg))

	return nil
}

func (s *ServiceCommand) Run() error {
	log.Infof("Starting internet-reloader service...")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	notifySignals(sigChan)

	if err := s.startComponents(ctx); err != nil {
		s.shutdown()
		return err
	}

	log.Infof("Service started successfully.")
	log.Infof("%s", signalHelp)

	for sig := range sigChan {
		switch signalActionFor(sig) {
		case actionReload:
			log.Infof("Received %v signal, reloading configuration...", sig)
			if err := s.reload(); err != nil {
				log.Errorf("Failed to reload configuration: %v", err)
			} else {
				log.Infof("Configuration reloaded successfully")
			}

		case actionReconnect:
			log.Infof("Received %v signal, forcing a reconnect...", sig)
			s.monitor.ForceReconnect()

		case actionShutdown:
			log.Infof("Received signal %v, shutting down...", sig)
			s.shutdown()
			return nil
		}
	}
	return nil
}

// startComponents starts the monitor and, when enabled, the API server.
func (s *ServiceCommand) startComponents(ctx context.Context) error {
	monitorRunner := NewRestartableRunner(components.NewMonitorComponent(s.monitor), RunnerConfig{})
	if err := monitorRunner.Start(ctx); err != nil {
		return err
	}
	s.runners = append(s.runners, monitorRunner)

	if s.NoAPI || !s.cfg.API.Enabled {
		log.Infof("REST API is disabled")
		return nil
	}

	log.Infof("Access to the REST API is restricted to private subnets only:")
	log.Infof("  IPv4: 10.0.0.0/8, 172.16.0.0/12, 192.168.0.0/16, 127.0.0.0/8")
	log.Infof("  IPv6: fc00::/7, fe80::/10, ::1/128")

	wlanAPI := s.deps.WLANAPI()
	router := api.NewRouter(s.monitor, func() ([]wlan.InterfaceInfo, error) {
		return wlan.ListInterfaces(wlanAPI)
	})

	apiRunner := NewRestartableRunner(components.NewAPIServer(s.cfg.API.ListenAddr, router), RunnerConfig{
		RestartBackoff: 2 * time.Second,
		MaxBackoff:     30 * time.Second,
	})
	if err := apiRunner.Start(ctx); err != nil {
		return err
	}
	s.runners = append(s.runners, apiRunner)

	return nil
}

// reload re-reads the configuration and applies it to the running monitor
// and hooks. The API listen address is only read at startup.
func (s *ServiceCommand) reload() error {
	cfg, err := loadAndValidateConfigOrFail(s.ctx.ConfigPath)
	if err != nil {
		return err
	}

	probe, reconnector, err := buildPollParts(s.deps, cfg)
	if err != nil {
		return err
	}

	if cfg.API.Enabled != s.cfg.API.Enabled || cfg.API.ListenAddr != s.cfg.API.ListenAddr {
		log.Warnf("REST API settings changed, restart the service to apply them")
	}

	s.monitor.Reload(probe, reconnector, s.interval(cfg))
	s.hooks.SetHooks(cfg.ResolveHook(cfg.Hooks.OnStatusChange), cfg.ResolveHook(cfg.Hooks.OnReconnect))
	s.cfg = cfg

	return nil
}

func (s *ServiceCommand) interval(cfg *config.Config) time.Duration {
	if s.PollInterval > 0 {
		return time.Duration(s.PollInterval) * time.Second
	}
	return cfg.PollInterval()
}

// shutdown stops the components in reverse start order.
func (s *ServiceCommand) shutdown() {
	log.Infof("Shutting down internet-reloader service...")

	for i := len(s.runners) - 1; i >= 0; i-- {
		if err := s.runners[i].Stop(); err != nil {
			log.Errorf("Failed to stop %s: %v", s.runners[i].Name(), err)
		}
	}
	s.runners = nil

	log.Infof("Service stopped successfully")
}
