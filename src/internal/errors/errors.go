// Package errors provides domain-specific error types for internet-reloader.
//
// Errors carry an error code so callers and tests can tell a failed WLAN
// call from a bad profile or a broken probe without parsing messages.
package errors

import "fmt"

// ErrorCode represents a category of error that can occur in the application.
type ErrorCode string

const (
	// ErrCodeConfig indicates a configuration-related error.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"

	// ErrCodeWLAN indicates a WLAN subsystem call returned a non-success status.
	ErrCodeWLAN ErrorCode = "WLAN_ERROR"

	// ErrCodeInterface indicates no usable wireless interface was found.
	ErrCodeInterface ErrorCode = "INTERFACE_ERROR"

	// ErrCodeProfile indicates the active connection profile could not be resolved.
	ErrCodeProfile ErrorCode = "PROFILE_ERROR"

	// ErrCodeProbe indicates a connectivity probe could not be set up.
	ErrCodeProbe ErrorCode = "PROBE_ERROR"

	// ErrCodeHook indicates a user hook command failed.
	ErrCodeHook ErrorCode = "HOOK_ERROR"

	// ErrCodeValidation indicates a validation error.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"

	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Error represents a domain-specific error with an error code and optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new domain error with the specified code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// StatusError is a native WLAN subsystem status code carried as an error cause.
type StatusError uint32

func (s StatusError) Error() string {
	return fmt.Sprintf("status %d (0x%08X)", uint32(s), uint32(s))
}

// NewWLANError creates an error for a subsystem call that returned a non-success status.
func NewWLANError(call string, status uint32) *Error {
	return Wrap(ErrCodeWLAN, call+" failed", StatusError(status))
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, cause error) *Error {
	return Wrap(ErrCodeConfig, message, cause)
}

// NewInterfaceError creates a new interface-related error.
func NewInterfaceError(message string, cause error) *Error {
	return Wrap(ErrCodeInterface, message, cause)
}

// NewProfileError creates a new profile resolution error.
func NewProfileError(message string, cause error) *Error {
	return Wrap(ErrCodeProfile, message, cause)
}

// NewProbeError creates a new probe error.
func NewProbeError(message string, cause error) *Error {
	return Wrap(ErrCodeProbe, message, cause)
}

// NewHookError creates a new hook execution error.
func NewHookError(message string, cause error) *Error {
	return Wrap(ErrCodeHook, message, cause)
}

// NewValidationError creates a new validation error.
func NewValidationError(message string, cause error) *Error {
	return Wrap(ErrCodeValidation, message, cause)
}

// NewInternalError creates a new internal error.
func NewInternalError(message string, cause error) *Error {
	return Wrap(ErrCodeInternal, message, cause)
}
