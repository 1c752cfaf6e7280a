//go:build windows

package commands

import (
	"os"
	"os/signal"
	"syscall"
)

const signalHelp = "Press Ctrl+C to stop"

func notifySignals(ch chan<- os.Signal) {
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
}

func signalActionFor(os.Signal) signalAction {
	return actionShutdown
}
