package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"verifykit/client"
	"verifykit/cmd/verifyctl/config"
	"verifykit/cmd/verifyctl/output"
)

// ClientCommand returns the client command with subcommands
func ClientCommand() *cli.Command {
	return &cli.Command{
		Name:  "client",
		Usage: "Build and inspect client descriptors",
		Commands: []*cli.Command{
			buildClientCommand(),
			inspectClientCommand(),
		},
	}
}

func buildClientCommand() *cli.Command {
	return &cli.Command{
		Name:  "build",
		Usage: "Validate configuration and build a client descriptor",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "app-id",
				Usage: "Registered application ID",
			},
			&cli.StringFlag{
				Name:  "secret-key",
				Usage: "Pre-shared secret key",
			},
			&cli.StringFlag{
				Name:  "host",
				Usage: "Literal verification service endpoint",
			},
			&cli.BoolFlag{
				Name:  "sandbox",
				Usage: "Target the sandbox environment instead of production",
			},
			&cli.StringFlag{
				Name:  "token",
				Usage: "Push registration token",
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "Write the serialized descriptor to this file",
			},
		},
		Action: buildClientAction,
	}
}

func buildClientAction(ctx context.Context, c *cli.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	appID := cfg.GetApplicationID()
	if c.IsSet("app-id") {
		appID = c.String("app-id")
	}

	secretKey := cfg.GetSharedSecretKey()
	if c.IsSet("secret-key") {
		secretKey = c.String("secret-key")
	}

	builder := client.NewBuilder().
		WithContext(ctx).
		WithApplicationID(appID).
		WithSharedSecretKey(secretKey)

	if host := cfg.GetEnvironmentHost(); host != "" {
		builder.WithEnvironmentHost(host)
	}
	if c.Bool("sandbox") {
		builder.WithEnvironment(client.EnvironmentSandbox)
	}
	if c.IsSet("host") {
		builder.WithEnvironmentHost(c.String("host"))
	}
	if c.IsSet("token") {
		builder.WithRegistrationToken(c.String("token"))
	}

	descriptor, err := builder.Build()
	if err != nil {
		return err
	}

	if c.IsSet("out") {
		payload, err := descriptor.MarshalBinary()
		if err != nil {
			return fmt.Errorf("failed to serialize descriptor: %w", err)
		}
		if err := os.WriteFile(c.String("out"), payload, 0600); err != nil {
			return fmt.Errorf("failed to write descriptor: %w", err)
		}
	}

	return printDescriptor(descriptor)
}

func inspectClientCommand() *cli.Command {
	return &cli.Command{
		Name:  "inspect",
		Usage: "Reconstruct a serialized client descriptor and print its fields",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "in",
				Usage:    "Path to a serialized descriptor file",
				Required: true,
			},
		},
		Action: inspectClientAction,
	}
}

func inspectClientAction(ctx context.Context, c *cli.Command) error {
	payload, err := os.ReadFile(c.String("in"))
	if err != nil {
		return fmt.Errorf("failed to read descriptor file: %w", err)
	}

	descriptor, err := client.UnmarshalClient(payload, ctx)
	if err != nil {
		return err
	}

	return printDescriptor(descriptor)
}

// descriptorView is the printable projection of a descriptor.
type descriptorView struct {
	ApplicationID     string `json:"application_id"`
	SharedSecretKey   string `json:"shared_secret_key"`
	EnvironmentHost   string `json:"environment_host"`
	RegistrationToken string `json:"registration_token"`
	SDKVersion        string `json:"sdk_version"`
}

func printDescriptor(descriptor *client.Client) error {
	formatter := output.NewJSONFormatter()
	jsonOutput, err := formatter.Format(descriptorView{
		ApplicationID:     descriptor.ApplicationID(),
		SharedSecretKey:   descriptor.SharedSecretKey(),
		EnvironmentHost:   descriptor.EnvironmentHost(),
		RegistrationToken: descriptor.RegistrationToken(),
		SDKVersion:        client.Version(),
	})
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	fmt.Println(jsonOutput)
	return nil
}
