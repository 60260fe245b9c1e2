package client

import "verifykit/config"

// Environment is a closed-set selector for a named deployment of the
// verification service, mapped to its canonical endpoint at the time it is
// supplied to the builder.
type Environment int

const (
	// EnvironmentProduction targets the production endpoint.
	EnvironmentProduction Environment = iota
	// EnvironmentSandbox is reserved for development and testing. No sandbox
	// endpoint is published yet, so selecting it leaves the environment host
	// unset and Build reports it as missing unless a literal endpoint is
	// supplied instead.
	EnvironmentSandbox
)

// Host returns the canonical endpoint for the environment, or "" when the
// environment has no published endpoint.
func (e Environment) Host() string {
	if e == EnvironmentProduction {
		return config.EndpointProduction
	}
	return ""
}
