//go:build windows

package main

import (
	"os"
	"path/filepath"
)

func defaultConfigPath() string {
	if dir := os.Getenv("ProgramData"); dir != "" {
		return filepath.Join(dir, "internet-reloader", "internet-reloader.toml")
	}
	return "internet-reloader.toml"
}
