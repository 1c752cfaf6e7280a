package commands

import (
	"flag"
	"fmt"

	"github.com/maksimkurb/internet-reloader/src/internal/config"
	"github.com/maksimkurb/internet-reloader/src/internal/domain"
	"github.com/maksimkurb/internet-reloader/src/internal/errors"
	"github.com/maksimkurb/internet-reloader/src/internal/status"
)

func CreatePollCommand() *PollCommand {
	pc := &PollCommand{
		fs: flag.NewFlagSet("poll", flag.ExitOnError),
	}

	pc.fs.BoolVar(&pc.NoReconnect, "no-reconnect", false, "Only probe, never attempt a reconnect")

	return pc
}

// PollCommand runs one status evaluation and fails unless the result is Connected.
type PollCommand struct {
	fs          *flag.FlagSet
	cfg         *config.Config
	deps        *domain.AppDependencies
	NoReconnect bool

	evaluator *status.Evaluator
}

func (p *PollCommand) Name() string {
	return p.fs.Name()
}

func (p *PollCommand) Init(args []string, ctx *AppContext) error {
	if err := p.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	p.cfg = cfg

	if p.deps == nil {
		p.deps = domain.NewDefaultDependencies()
	}

	probe, reconnector, err := buildPollParts(p.deps, cfg)
	if err != nil {
		return err
	}

	var r status.Reconnector = reconnector
	if p.NoReconnect {
		r = status.ReconnectorFunc(func() bool { return false })
	}
	p.evaluator = status.NewEvaluator(probe, r)

	return nil
}

func (p *PollCommand) Run() error {
	result := p.evaluator.Poll()
	fmt.Println(result)

	if result != status.Connected {
		return errors.NewProbeError(fmt.Sprintf("status is %s", result), nil)
	}
	return nil
}
