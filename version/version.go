// Package version holds the library revision string.
package version

// Version is the current verifykit library revision.
// Overridden at build time via -ldflags "-X verifykit/version.Version=...".
var Version = "1.0.0"
