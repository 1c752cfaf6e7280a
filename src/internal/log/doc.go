// Package log provides simple leveled logging for internet-reloader.
//
// Lines are prefixed with a colored level tag: DEBUG, INFO, WARN and ERROR.
// Debug lines are only shown in verbose mode; errors always go to stderr.
//
// # Example Usage
//
//	log.Infof("Polling every %d seconds", interval)
//	log.Warnf("Disconnect failed: %v", err)
//
//	log.SetVerbose(true)
//	log.Debugf("Probe result: link=%v internet=%v", up, reachable)
//
// Output control:
//
//	log.SetForceStdErr(true)        // Send all logs to stderr
//	log.SetOutput(&outBuf, &errBuf) // Capture output in tests
//
// The package keeps global state guarded by a mutex, so it is safe to use
// from the poll loop and the API server at the same time.
package log
