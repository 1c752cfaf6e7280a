package status

import (
	"fmt"

	"github.com/maksimkurb/internet-reloader/src/internal/log"
)

// Status is the outcome of one poll.
type Status int

const (
	// Disconnected means the adapter reports no link.
	Disconnected Status = iota

	// NetworkOnly means the link is up but the internet could not be
	// reached, and a reconnect did not get the connection re-established.
	NetworkOnly

	// Connected means the internet is reachable, or a reconnect was
	// accepted by the subsystem.
	Connected
)

func (s Status) String() string {
	switch s {
	case Disconnected:
		return "Disconnected"
	case NetworkOnly:
		return "NetworkOnly"
	case Connected:
		return "Connected"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Probe answers the two connectivity questions a poll needs.
type Probe interface {
	// IsConnectedToNetwork reports link-layer connectivity.
	IsConnectedToNetwork() bool

	// IsConnectedToInternet reports whether a known internet endpoint is reachable.
	IsConnectedToInternet() bool
}

// Reconnector performs one reconnect attempt.
type Reconnector interface {
	Reconnect() bool
}

// ReconnectorFunc adapts a function to the Reconnector interface.
type ReconnectorFunc func() bool

// Reconnect calls f.
func (f ReconnectorFunc) Reconnect() bool {
	return f()
}

// Evaluate maps the two signals to a Status. reconnect is called exactly
// once when the link is up and the internet is not reachable, and never
// otherwise.
func Evaluate(linkUp, internetReachable bool, reconnect func() bool) Status {
	switch {
	case !linkUp:
		return Disconnected
	case internetReachable:
		return Connected
	case reconnect():
		return Connected
	default:
		return NetworkOnly
	}
}

// Evaluator runs one poll at a time against a probe and a reconnector.
// It keeps no state between polls.
type Evaluator struct {
	probe       Probe
	reconnector Reconnector
}

// NewEvaluator creates an evaluator.
func NewEvaluator(probe Probe, reconnector Reconnector) *Evaluator {
	return &Evaluator{
		probe:       probe,
		reconnector: reconnector,
	}
}

// Poll reads the probe and, when the link is up but the internet is not
// reachable, makes exactly one reconnect attempt.
//
// The internet probe is only consulted when the link is up.
func (e *Evaluator) Poll() Status {
	linkUp := e.probe.IsConnectedToNetwork()
	internet := false
	if linkUp {
		internet = e.probe.IsConnectedToInternet()
	}
	log.Debugf("Probe: link=%t internet=%t", linkUp, internet)

	return Evaluate(linkUp, internet, e.reconnect)
}

func (e *Evaluator) reconnect() bool {
	log.Infof("Link is up but internet is unreachable, attempting reconnect")
	if e.reconnector.Reconnect() {
		log.Infof("Reconnected successfully")
		return true
	}
	log.Warnf("Reconnect failed")
	return false
}
