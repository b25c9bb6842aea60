package config

import "fmt"

// ConfigError is a fatal configuration failure: the build must abort
// before any compilation starts. The message always names the specific
// path, version or token that caused the failure.
type ConfigError struct {
	Message string
	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Configf builds a ConfigError from a format string.
func Configf(format string, args ...any) error {
	return &ConfigError{Message: fmt.Sprintf(format, args...)}
}

// ConfigWrap builds a ConfigError around an underlying cause.
func ConfigWrap(err error, format string, args ...any) error {
	return &ConfigError{Message: fmt.Sprintf(format, args...), Err: err}
}
