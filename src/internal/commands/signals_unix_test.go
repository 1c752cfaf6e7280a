//go:build !windows

package commands

import (
	"syscall"
	"testing"
)

func TestSignalActionFor(t *testing.T) {
	tests := []struct {
		sig  syscall.Signal
		want signalAction
	}{
		{syscall.SIGHUP, actionReload},
		{syscall.SIGUSR1, actionReconnect},
		{syscall.SIGINT, actionShutdown},
		{syscall.SIGTERM, actionShutdown},
	}
	for _, tt := range tests {
		if got := signalActionFor(tt.sig); got != tt.want {
			t.Errorf("signalActionFor(%v) = %d, want %d", tt.sig, got, tt.want)
		}
	}
}
