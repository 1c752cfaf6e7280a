// Package wlan binds the native wireless LAN client API and builds the
// reconnect sequence on top of it.
//
// The API interface exposes one method per subsystem call. NewSystemAPI
// returns the wlanapi.dll binding on Windows and an always-failing stand-in
// elsewhere, so the rest of the tool can run and be tested on any platform.
//
// Reconnector runs the fixed sequence:
//
//	open session -> enumerate interfaces -> query active profile ->
//	disconnect -> connect(profile) -> close session
//
// Every list or buffer the subsystem hands out is freed exactly once and an
// opened session is closed exactly once, on success and on every failure path.
package wlan
