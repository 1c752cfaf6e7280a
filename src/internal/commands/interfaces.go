package commands

import (
	"flag"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/maksimkurb/internet-reloader/src/internal/domain"
	"github.com/maksimkurb/internet-reloader/src/internal/wlan"
)

func CreateInterfacesCommand() *InterfacesCommand {
	return &InterfacesCommand{
		fs: flag.NewFlagSet("interfaces", flag.ExitOnError),
	}
}

type InterfacesCommand struct {
	fs   *flag.FlagSet
	deps *domain.AppDependencies
}

func (g *InterfacesCommand) Name() string {
	return g.fs.Name()
}

func (g *InterfacesCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if g.deps == nil {
		g.deps = domain.NewDefaultDependencies()
	}

	return nil
}

func (g *InterfacesCommand) Run() error {
	interfaces, err := wlan.ListInterfaces(g.deps.WLANAPI())
	if err != nil {
		return fmt.Errorf("failed to get interfaces: %v", err)
	}

	fmt.Print(formatInterfaces(interfaces))
	return nil
}

// formatInterfaces renders interfaces as a table. The first one is the
// interface reconnects use.
func formatInterfaces(interfaces []wlan.InterfaceInfo) string {
	if len(interfaces) == 0 {
		return "No wireless interfaces found\n"
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\tGUID\tSTATE\tDESCRIPTION")
	for i, iface := range interfaces {
		marker := ""
		if i == 0 {
			marker = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", marker, iface.ID, iface.State, iface.Description)
	}
	_ = w.Flush()

	return sb.String()
}
