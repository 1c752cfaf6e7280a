package commands

import (
	"flag"
	"fmt"

	"github.com/maksimkurb/internet-reloader/src/internal/domain"
	"github.com/maksimkurb/internet-reloader/src/internal/errors"
	"github.com/maksimkurb/internet-reloader/src/internal/log"
	"github.com/maksimkurb/internet-reloader/src/internal/wlan"
)

func CreateReconnectCommand() *ReconnectCommand {
	return &ReconnectCommand{
		fs: flag.NewFlagSet("reconnect", flag.ExitOnError),
	}
}

// ReconnectCommand drops and re-establishes the wireless connection once,
// whatever the current connectivity.
type ReconnectCommand struct {
	fs   *flag.FlagSet
	deps *domain.AppDependencies

	reconnector *wlan.Reconnector
}

func (r *ReconnectCommand) Name() string {
	return r.fs.Name()
}

func (r *ReconnectCommand) Init(args []string, ctx *AppContext) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}

	if r.deps == nil {
		r.deps = domain.NewDefaultDependencies()
	}

	reconnector, err := r.deps.Reconnector(cfg)
	if err != nil {
		return fmt.Errorf("failed to create reconnector: %w", err)
	}
	r.reconnector = reconnector

	return nil
}

func (r *ReconnectCommand) Run() error {
	log.Infof("Reconnecting (disconnect policy: %s)...", r.reconnector.Policy())

	if !r.reconnector.Reconnect() {
		return errors.New(errors.ErrCodeWLAN, "reconnect attempt failed")
	}

	log.Infof("Reconnect accepted")
	return nil
}
