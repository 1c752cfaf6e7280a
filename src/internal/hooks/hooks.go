package hooks

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/valyala/fasttemplate"

	"github.com/maksimkurb/internet-reloader/src/internal/errors"
	"github.com/maksimkurb/internet-reloader/src/internal/log"
)

// Template variables.
const (
	VarStatus   = "status"
	VarPrevious = "previous"
	VarResult   = "result"
)

const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// DefaultTimeout bounds a single hook run.
const DefaultTimeout = 30 * time.Second

// Commander runs an external program and returns its combined output.
type Commander interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecCommander runs programs with os/exec.
type ExecCommander struct{}

func (ExecCommander) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// Runner expands and runs the configured hooks. Hooks run synchronously,
// one at a time, each bounded by the runner's timeout.
type Runner struct {
	mu             sync.RWMutex
	onStatusChange []string
	onReconnect    []string
	commander      Commander
	timeout        time.Duration
}

// NewRunner creates a runner. Empty argv disables the hook. A nil commander
// runs hooks with ExecCommander.
func NewRunner(onStatusChange, onReconnect []string, commander Commander) *Runner {
	if commander == nil {
		commander = ExecCommander{}
	}
	return &Runner{
		onStatusChange: onStatusChange,
		onReconnect:    onReconnect,
		commander:      commander,
		timeout:        DefaultTimeout,
	}
}

// SetTimeout changes the bound on a single hook run.
func (r *Runner) SetTimeout(timeout time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.timeout = timeout
}

// SetHooks replaces both hooks.
func (r *Runner) SetHooks(onStatusChange, onReconnect []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onStatusChange = onStatusChange
	r.onReconnect = onReconnect
}

// StatusChanged runs the on_status_change hook.
func (r *Runner) StatusChanged(previous, current fmt.Stringer) {
	r.mu.RLock()
	argv := r.onStatusChange
	r.mu.RUnlock()

	r.run("on_status_change", argv, map[string]interface{}{
		VarStatus:   current.String(),
		VarPrevious: previous.String(),
	})
}

// ReconnectAttempted runs the on_reconnect hook.
func (r *Runner) ReconnectAttempted(success bool, current fmt.Stringer) {
	r.mu.RLock()
	argv := r.onReconnect
	r.mu.RUnlock()

	result := ResultFailure
	if success {
		result = ResultSuccess
	}
	r.run("on_reconnect", argv, map[string]interface{}{
		VarResult: result,
		VarStatus: current.String(),
	})
}

func (r *Runner) run(name string, argv []string, vars map[string]interface{}) {
	if len(argv) == 0 {
		return
	}

	expanded, err := Expand(argv, vars)
	if err != nil {
		log.Warnf("Hook %s skipped: %v", name, err)
		return
	}
	if err := r.exec(expanded); err != nil {
		log.Warnf("Hook %s failed: %v", name, err)
		return
	}
	log.Debugf("Hook %s finished: %s", name, strings.Join(expanded, " "))
}

func (r *Runner) exec(argv []string) error {
	r.mu.RLock()
	timeout := r.timeout
	r.mu.RUnlock()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	output, err := r.commander.Run(ctx, argv[0], argv[1:]...)
	if err != nil {
		msg := fmt.Sprintf("command %q failed", argv[0])
		if out := strings.TrimSpace(string(output)); out != "" {
			msg += ": " + out
		}
		return errors.NewHookError(msg, err)
	}
	return nil
}

// Expand substitutes {{name}} placeholders in every argument. An argument
// with an unclosed placeholder is an error and nothing is expanded.
func Expand(argv []string, vars map[string]interface{}) ([]string, error) {
	expanded := make([]string, len(argv))
	for i, arg := range argv {
		value, err := expandArg(arg, vars)
		if err != nil {
			return nil, err
		}
		expanded[i] = value
	}
	return expanded, nil
}

func expandArg(template string, vars map[string]interface{}) (string, error) {
	if !strings.Contains(template, "{{") {
		return template, nil
	}

	t, err := fasttemplate.NewTemplate(template, "{{", "}}")
	if err != nil {
		return "", errors.NewHookError(fmt.Sprintf("invalid template in argument %q", template), err)
	}
	return t.ExecuteString(vars), nil
}
