package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/maksimkurb/internet-reloader/src/internal/config"
	"github.com/maksimkurb/internet-reloader/src/internal/domain"
	"github.com/maksimkurb/internet-reloader/src/internal/log"
	"github.com/maksimkurb/internet-reloader/src/internal/wlan"
)

func CreateSelfCheckCommand() *SelfCheckCommand {
	return &SelfCheckCommand{
		fs: flag.NewFlagSet("self-check", flag.ExitOnError),
	}
}

type SelfCheckCommand struct {
	fs   *flag.FlagSet
	cfg  *config.Config
	deps *domain.AppDependencies
}

func (g *SelfCheckCommand) Name() string {
	return g.fs.Name()
}

func (g *SelfCheckCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	g.cfg = cfg

	if g.deps == nil {
		g.deps = domain.NewDefaultDependencies()
	}

	return nil
}

func (g *SelfCheckCommand) Run() error {
	log.Infof("Running self-check...")
	log.Infof("---------------- Configuration START -----------------")

	serialized, err := g.cfg.SerializeConfig()
	if err != nil {
		log.Errorf("Failed to serialize config: %v", err)
		return err
	}
	if _, err := os.Stdout.Write(serialized.Bytes()); err != nil {
		log.Errorf("Failed to output config: %v", err)
		return err
	}

	log.Infof("----------------- Configuration END ------------------")

	hasFailures := false
	for _, check := range g.checks() {
		passed, message := check.run()
		if passed {
			log.Infof("[%s] %s", check.name, message)
		} else {
			log.Errorf("[%s] %s", check.name, message)
			hasFailures = true
		}
	}

	if hasFailures {
		log.Errorf("Self-check completed with failures")
		return fmt.Errorf("self-check failed")
	}

	log.Infof("Self-check completed successfully")
	return nil
}

type selfCheck struct {
	name string
	run  func() (bool, string)
}

func (g *SelfCheckCommand) checks() []selfCheck {
	return []selfCheck{
		{name: "wlan", run: g.checkWLAN},
		{name: "interfaces", run: g.checkInterfaces},
		{name: "network", run: g.checkNetwork},
		{name: "internet", run: g.checkInternet},
	}
}

func (g *SelfCheckCommand) checkWLAN() (bool, string) {
	if err := g.deps.WLANError(); err != nil {
		return false, fmt.Sprintf("WLAN subsystem is not available: %v", err)
	}
	return true, "WLAN subsystem is available"
}

func (g *SelfCheckCommand) checkInterfaces() (bool, string) {
	interfaces, err := wlan.ListInterfaces(g.deps.WLANAPI())
	if err != nil {
		return false, fmt.Sprintf("Failed to list interfaces: %v", err)
	}
	if len(interfaces) == 0 {
		return false, "No wireless interfaces found"
	}
	first := interfaces[0]
	return true, fmt.Sprintf("%d interface(s), reconnects use %s (%s, %s)", len(interfaces), first.ID, first.Description, first.State)
}

func (g *SelfCheckCommand) checkNetwork() (bool, string) {
	probe, err := g.deps.Probe(g.cfg)
	if err != nil {
		return false, fmt.Sprintf("Failed to create probe: %v", err)
	}
	if !probe.IsConnectedToNetwork() {
		return false, "No network link is up"
	}
	return true, "Network link is up"
}

func (g *SelfCheckCommand) checkInternet() (bool, string) {
	probe, err := g.deps.Probe(g.cfg)
	if err != nil {
		return false, fmt.Sprintf("Failed to create probe: %v", err)
	}
	if !probe.IsConnectedToInternet() {
		return false, fmt.Sprintf("Internet is unreachable via %s probe", g.cfg.Probe.Method)
	}
	return true, fmt.Sprintf("Internet is reachable via %s probe", g.cfg.Probe.Method)
}
