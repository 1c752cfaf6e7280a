// Package components contains the long-running parts of the service
// command. Each one implements Component and is supervised by a
// restartable runner, so a crash in the API server does not stop polling.
package components
