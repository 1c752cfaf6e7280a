// Package commands implements CLI command handlers for internet-reloader.
//
// Subcommands:
//
//	service     poll loop with optional REST API; SIGHUP reloads, SIGUSR1 forces a reconnect
//	poll        one evaluation, exit status 0 only when Connected
//	reconnect   one forced disconnect/connect on the active profile
//	interfaces  list wireless interfaces
//	self-check  print the effective configuration and run each check once
//
// # Command Structure
//
// All commands follow a consistent pattern:
//   - Init(): Parse arguments, load configuration and build dependencies
//   - Run(): Execute the command
//   - Name(): Return command name for routing
//
// Long-running parts of the service are components.Component values
// supervised by a RestartableRunner.
package commands
