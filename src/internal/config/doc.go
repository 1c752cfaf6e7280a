// Package config handles configuration file parsing and validation.
//
// The configuration is a TOML file with five sections:
//
//	[general]    poll interval
//	[probe]      connectivity check method, timeout and targets
//	[reconnect]  disconnect failure policy
//	[hooks]      commands run on status changes and reconnect attempts
//	[api]        local status API
//
// Every section and field is optional; LoadConfig fills in defaults and
// ValidateConfig reports every invalid field at once.
//
// # Example Usage
//
//	cfg, err := config.LoadConfig("/etc/internet-reloader.toml")
//	if err != nil {
//	    log.Fatalf("%v", err)
//	}
//	if err := cfg.ValidateConfig(); err != nil {
//	    log.Fatalf("%v", err)
//	}
package config
