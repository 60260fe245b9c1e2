package commands

import (
	"verifykit/version"

	"github.com/urfave/cli/v3"
)

// NewApp creates the root CLI application
func NewApp() *cli.Command {
	return &cli.Command{
		Name:    "verifyctl",
		Usage:   "verifykit CLI - build and inspect client descriptors",
		Version: version.Version,
		Commands: []*cli.Command{
			ClientCommand(),
		},
	}
}
