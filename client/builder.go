package client

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"verifykit/config"
)

var validate = validator.New()

// pendingConfig is the snapshot Build validates as a single unit. Field
// declaration order determines the order of missing-parameter reporting.
type pendingConfig struct {
	Context         ExecutionContext `validate:"required"`
	ApplicationID   string           `validate:"required"`
	SharedSecretKey string           `validate:"required"`
	EnvironmentHost string           `validate:"required"`
}

// Builder accumulates candidate configuration for a Client. Setters perform
// no validation; every check is deferred to Build, which reports all missing
// parameters at once.
//
// NewBuilder seeds the environment host with the production endpoint. The
// zero value is also usable and carries no default, in which case the
// environment host must be supplied explicitly.
//
// A Builder is a single-owner staging object; it is not safe for concurrent
// use.
type Builder struct {
	ctx               ExecutionContext
	applicationID     string
	sharedSecretKey   string
	environmentHost   string
	registrationToken string
}

// NewBuilder returns a Builder targeting the production environment.
func NewBuilder() *Builder {
	return &Builder{environmentHost: config.EndpointProduction}
}

// WithContext sets the execution context handle.
func (b *Builder) WithContext(ctx ExecutionContext) *Builder {
	b.ctx = ctx
	return b
}

// WithApplicationID sets the registered application identifier.
func (b *Builder) WithApplicationID(id string) *Builder {
	b.applicationID = id
	return b
}

// WithSharedSecretKey sets the pre-shared credential.
func (b *Builder) WithSharedSecretKey(key string) *Builder {
	b.sharedSecretKey = key
	return b
}

// WithEnvironmentHost sets a literal verification service endpoint.
func (b *Builder) WithEnvironmentHost(host string) *Builder {
	b.environmentHost = host
	return b
}

// WithEnvironment selects a named environment and stores its canonical
// endpoint. Environments without a published endpoint leave the host unset.
func (b *Builder) WithEnvironment(env Environment) *Builder {
	b.environmentHost = env.Host()
	return b
}

// WithRegistrationToken sets the optional push registration token.
func (b *Builder) WithRegistrationToken(token string) *Builder {
	b.registrationToken = token
	return b
}

// Build validates the accumulated state and returns a new Client. All four
// required parameters are checked; when any are missing the returned
// *ConfigurationError lists every one of them, so the caller can fix all
// problems in a single pass.
//
// Build does not mutate the builder. Calling it again produces a fresh
// Client from the same snapshot.
func (b *Builder) Build() (*Client, error) {
	pending := pendingConfig{
		Context:         b.ctx,
		ApplicationID:   b.applicationID,
		SharedSecretKey: b.sharedSecretKey,
		EnvironmentHost: b.environmentHost,
	}

	if err := validate.Struct(pending); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return nil, err
		}
		missing := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			missing = append(missing, fe.Field())
		}
		return nil, &ConfigurationError{Missing: missing}
	}

	return &Client{
		ctx:               b.ctx,
		applicationID:     b.applicationID,
		sharedSecretKey:   b.sharedSecretKey,
		environmentHost:   b.environmentHost,
		registrationToken: b.registrationToken,
	}, nil
}
