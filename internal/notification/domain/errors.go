package domain

import "errors"

// Error kinds distinguish who broke a push request: the caller, the
// operator's configuration, or a downstream service. They all collapse to
// the same HTTP shape at the delivery boundary but stay distinct for logs
// and tests.

// ValidationError marks a defect in the inbound payload.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }
func (e *ValidationError) Unwrap() error { return e.Err }

// ConfigError marks missing or malformed process configuration.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return e.Err.Error() }
func (e *ConfigError) Unwrap() error { return e.Err }

// DependencyError marks a failed call to the datastore or the token
// exchange, before any per-device delivery has been attempted.
type DependencyError struct {
	Err error
}

func (e *DependencyError) Error() string { return e.Err.Error() }
func (e *DependencyError) Unwrap() error { return e.Err }

var ErrMissingUserID = errors.New("missing user_id")
