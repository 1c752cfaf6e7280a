package probe

import (
	"context"
	"fmt"
	"time"

	"github.com/maksimkurb/internet-reloader/src/internal/config"
	"github.com/maksimkurb/internet-reloader/src/internal/errors"
	"github.com/maksimkurb/internet-reloader/src/internal/log"
)

// LinkChecker reports whether any network link is up.
type LinkChecker interface {
	IsLinkUp() (bool, error)
}

// InternetChecker reports whether an internet endpoint answers.
type InternetChecker interface {
	IsReachable(ctx context.Context) (bool, error)
	// Target names what is being checked, for log lines.
	Target() string
}

// Probe combines a link check and an internet check into the two boolean
// questions the status evaluator asks. Check failures are logged and read
// as "not connected".
type Probe struct {
	link     LinkChecker
	internet InternetChecker
	timeout  time.Duration
}

// New creates a probe. timeout bounds every internet check.
func New(link LinkChecker, internet InternetChecker, timeout time.Duration) *Probe {
	return &Probe{
		link:     link,
		internet: internet,
		timeout:  timeout,
	}
}

// FromConfig builds the probe described by the [probe] section, using the
// platform link checker.
func FromConfig(cfg *config.Config) (*Probe, error) {
	internet, err := NewInternetChecker(cfg)
	if err != nil {
		return nil, err
	}
	return New(NewSystemLinkChecker(), internet, cfg.ProbeTimeout()), nil
}

// NewInternetChecker builds the internet check selected by probe.method.
func NewInternetChecker(cfg *config.Config) (InternetChecker, error) {
	switch cfg.Probe.Method {
	case config.ProbeMethodHTTP:
		return NewHTTPChecker(cfg.Probe.HTTPURL, cfg.ProbeTimeout()), nil
	case config.ProbeMethodDNS:
		return NewDNSChecker(cfg.Probe.DNSServer, cfg.Probe.DNSQuery, cfg.ProbeTimeout()), nil
	default:
		return nil, errors.NewConfigError(fmt.Sprintf("unknown probe method %q", cfg.Probe.Method), nil)
	}
}

// IsConnectedToNetwork reports link-layer connectivity.
func (p *Probe) IsConnectedToNetwork() bool {
	up, err := p.link.IsLinkUp()
	if err != nil {
		log.Debugf("Link check failed: %v", err)
		return false
	}
	return up
}

// IsConnectedToInternet reports whether the configured endpoint answered
// within the timeout.
func (p *Probe) IsConnectedToInternet() bool {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	ok, err := p.internet.IsReachable(ctx)
	if err != nil {
		log.Debugf("Internet check against %s failed: %v", p.internet.Target(), err)
		return false
	}
	return ok
}

// Target returns the internet check's target.
func (p *Probe) Target() string {
	return p.internet.Target()
}
