package client

import (
	"fmt"
	"strings"
)

// ConfigurationError reports every required builder field that was missing
// or empty at Build time, in the order the fields are declared. It is not
// retryable without the caller supplying the missing values.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("building a client has failed due to missing parameters: %s",
		strings.Join(e.Missing, ", "))
}

// PayloadError reports serialized input that is truncated or does not match
// the expected encoding. It indicates data corruption or a payload version
// mismatch, never a recoverable condition.
type PayloadError struct {
	Reason string
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("malformed client payload: %s", e.Reason)
}
