package wlan

import (
	"fmt"
	"strings"

	"github.com/maksimkurb/internet-reloader/src/internal/errors"
	"github.com/maksimkurb/internet-reloader/src/internal/log"
)

// DisconnectPolicy decides what a failed disconnect does to the attempt.
type DisconnectPolicy int

const (
	// TolerateDisconnectFailure logs the failure and still issues the connect.
	// A connect on a profile usually supersedes whatever connection is left.
	TolerateDisconnectFailure DisconnectPolicy = iota

	// AbortOnDisconnectFailure ends the attempt when disconnect fails.
	AbortOnDisconnectFailure
)

func (p DisconnectPolicy) String() string {
	switch p {
	case TolerateDisconnectFailure:
		return "tolerate"
	case AbortOnDisconnectFailure:
		return "abort"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParseDisconnectPolicy maps the configuration value to a policy.
func ParseDisconnectPolicy(s string) (DisconnectPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "tolerate":
		return TolerateDisconnectFailure, nil
	case "abort":
		return AbortOnDisconnectFailure, nil
	default:
		return TolerateDisconnectFailure, errors.NewValidationError(
			fmt.Sprintf("unknown disconnect policy %q (expected \"tolerate\" or \"abort\")", s), nil)
	}
}

// Reconnector drops and re-establishes the active wireless connection using
// the profile that was active before the drop.
//
// Only the first enumerated interface is considered. Machines with more than
// one wireless adapter are not supported.
//
// A Reconnector keeps no state between attempts and is not safe for
// concurrent use; callers serialise Reconnect.
type Reconnector struct {
	api    API
	policy DisconnectPolicy
}

// NewReconnector creates a reconnector over the given subsystem binding.
func NewReconnector(api API, policy DisconnectPolicy) *Reconnector {
	return &Reconnector{
		api:    api,
		policy: policy,
	}
}

// Policy returns the disconnect policy the reconnector was built with.
func (r *Reconnector) Policy() DisconnectPolicy {
	return r.policy
}

// Reconnect performs one disconnect/connect sequence.
//
// It returns true when the subsystem accepted a connect on the previously
// active profile. That does not mean the internet is reachable again.
func (r *Reconnector) Reconnect() bool {
	if err := r.attempt(); err != nil {
		log.Errorf("Reconnect attempt failed: %v", err)
		return false
	}
	return true
}

// target is what the read-only steps resolve before anything is torn down.
type target struct {
	id      InterfaceID
	profile string
}

// attempt runs the step pipeline. The session opened here is closed by the
// deferred call, which runs right after the connect step on the success path
// and on every early return.
func (r *Reconnector) attempt() error {
	session, err := r.openSession()
	if err != nil {
		return err
	}
	defer r.closeSession(session)

	t, err := r.resolveTarget(session)
	if err != nil {
		return err
	}

	if err := r.disconnect(session, t.id); err != nil {
		if r.policy == AbortOnDisconnectFailure {
			return err
		}
		log.Warnf("Disconnect failed, trying to connect anyway: %v", err)
	}

	return r.connect(session, t)
}

func (r *Reconnector) openSession() (Session, error) {
	session, status := r.api.OpenHandle()
	if !status.OK() {
		return 0, errors.NewWLANError("WlanOpenHandle", uint32(status))
	}
	log.Debugf("Opened WLAN session %#x", uintptr(session))
	return session, nil
}

func (r *Reconnector) closeSession(session Session) {
	if status := r.api.CloseHandle(session); !status.OK() {
		log.Warnf("Failed to close WLAN session: %v", errors.NewWLANError("WlanCloseHandle", uint32(status)))
	}
}

func (r *Reconnector) resolveTarget(session Session) (target, error) {
	id, err := r.selectInterface(session)
	if err != nil {
		return target{}, err
	}

	profile, err := r.activeProfile(session, id)
	if err != nil {
		return target{}, err
	}

	return target{id: id, profile: profile}, nil
}

// selectInterface picks the first enumerated interface. The list is
// released before this function returns, whatever the outcome.
func (r *Reconnector) selectInterface(session Session) (InterfaceID, error) {
	list, status := r.api.EnumInterfaces(session)
	if list != nil && list.Memory != 0 {
		defer r.api.FreeMemory(list.Memory)
	}

	if !status.OK() {
		return InterfaceID{}, errors.NewWLANError("WlanEnumInterfaces", uint32(status))
	}
	if list == nil || len(list.Interfaces) == 0 {
		return InterfaceID{}, errors.NewInterfaceError("no wireless interfaces found", nil)
	}

	chosen := list.Interfaces[0]
	if len(list.Interfaces) > 1 {
		log.Debugf("Found %d wireless interfaces, using the first one", len(list.Interfaces))
	}
	log.Debugf("Selected interface %s (%s, %s)", chosen.ID, chosen.Description, chosen.State)

	return chosen.ID, nil
}

// activeProfile reads the profile name of the interface's current connection.
// The attributes buffer is released before this function returns.
func (r *Reconnector) activeProfile(session Session, id InterfaceID) (string, error) {
	attrs, status := r.api.QueryCurrentConnection(session, id)
	if attrs != nil && attrs.Memory != 0 {
		defer r.api.FreeMemory(attrs.Memory)
	}

	if !status.OK() {
		return "", errors.NewWLANError("WlanQueryInterface", uint32(status))
	}
	if attrs == nil {
		return "", errors.NewProfileError(fmt.Sprintf("no connection attributes returned for %s", id), nil)
	}

	profile := strings.TrimRight(attrs.ProfileName, "\x00")
	if profile == "" {
		return "", errors.NewProfileError(fmt.Sprintf("interface %s has no active profile", id), nil)
	}

	log.Debugf("Active profile on %s is %q", id, profile)
	return profile, nil
}

func (r *Reconnector) disconnect(session Session, id InterfaceID) error {
	if status := r.api.Disconnect(session, id); !status.OK() {
		return errors.NewWLANError("WlanDisconnect", uint32(status))
	}
	log.Debugf("Disconnected %s", id)
	return nil
}

func (r *Reconnector) connect(session Session, t target) error {
	if status := r.api.Connect(session, t.id, t.profile); !status.OK() {
		return errors.NewWLANError("WlanConnect", uint32(status))
	}
	log.Infof("Connect on profile %q accepted for interface %s", t.profile, t.id)
	return nil
}
