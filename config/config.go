// Package config holds endpoint details and related configs for the SDK
package config

import (
	"os"
	"strings"
)

// EndpointProduction is the canonical production verification endpoint.
const EndpointProduction = "https://api.verifykit.dev"

// envVarEndpoint overrides the resolved endpoint when set. Intended for
// local development against a staging deployment.
const envVarEndpoint = "VERIFYKIT_ENDPOINT"

// Endpoint resolves the verification service endpoint, honouring the
// VERIFYKIT_ENDPOINT environment variable with a production fallback.
func Endpoint() string {
	endpoint := os.Getenv(envVarEndpoint)
	if strings.TrimSpace(endpoint) == "" {
		endpoint = EndpointProduction
	}
	return endpoint
}
