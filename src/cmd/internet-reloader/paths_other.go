//go:build !windows

package main

func defaultConfigPath() string {
	return "/etc/internet-reloader/internet-reloader.toml"
}
