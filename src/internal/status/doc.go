// Package status reduces the two connectivity signals to one Status and
// decides when a reconnect is attempted.
package status
