//go:build !windows

package commands

import (
	"os"
	"os/signal"
	"syscall"
)

const signalHelp = "Send SIGHUP to reload configuration, SIGUSR1 to force a reconnect"

func notifySignals(ch chan<- os.Signal) {
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGUSR1)
}

func signalActionFor(sig os.Signal) signalAction {
	switch sig {
	case syscall.SIGHUP:
		return actionReload
	case syscall.SIGUSR1:
		return actionReconnect
	default:
		return actionShutdown
	}
}
