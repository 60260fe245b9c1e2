// Package client provides the verifykit entry point: a validated, immutable
// descriptor of an authenticated session with the verification service,
// constructed through Builder. The descriptor is what the request-building
// and push-registration layers read their configuration from.
package client

import (
	"fmt"
	"sync"

	"verifykit/version"
)

// ExecutionContext is an opaque handle to the embedding runtime. The SDK
// never inspects it; it is carried for collaborators that need access to the
// surrounding platform environment. It is not part of the serialized form
// and must be re-supplied on reconstruction.
type ExecutionContext any

// Client is the validated session descriptor. All fields except the
// registration token are fixed at construction; the token may be rotated at
// any time via SetRegistrationToken.
//
// A Client is only ever obtained through Builder.Build (validated path) or
// UnmarshalClient (trusted path). There is no partially-configured state.
type Client struct {
	ctx             ExecutionContext
	applicationID   string
	sharedSecretKey string
	environmentHost string

	mu                sync.RWMutex
	registrationToken string
}

// Context returns the execution context supplied at construction.
func (c *Client) Context() ExecutionContext {
	return c.ctx
}

// ApplicationID returns the registered application identifier.
func (c *Client) ApplicationID() string {
	return c.applicationID
}

// SharedSecretKey returns the pre-shared credential for this application.
func (c *Client) SharedSecretKey() string {
	return c.sharedSecretKey
}

// EnvironmentHost returns the resolved verification service endpoint.
func (c *Client) EnvironmentHost() string {
	return c.environmentHost
}

// RegistrationToken returns a snapshot of the current push registration
// token. It may be empty if push integration is not configured.
func (c *Client) RegistrationToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.registrationToken
}

// SetRegistrationToken replaces the push registration token. Safe to call
// concurrently with reads and other writes; last write wins.
func (c *Client) SetRegistrationToken(token string) {
	c.mu.Lock()
	c.registrationToken = token
	c.mu.Unlock()
}

// String renders all fields in fixed order for diagnostics. Empty optional
// fields render as empty segments. Not intended for protocol use.
func (c *Client) String() string {
	return fmt.Sprintf("ApplicationID: %s, SharedSecretKey: %s, EnvironmentHost: %s, RegistrationToken: %s",
		c.applicationID, c.sharedSecretKey, c.environmentHost, c.RegistrationToken())
}

// Version returns the current verifykit library revision.
func Version() string {
	return version.Version
}
