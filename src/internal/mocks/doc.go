// Package mocks provides scripted implementations of the WLAN API and the
// connectivity probe for tests.
package mocks
