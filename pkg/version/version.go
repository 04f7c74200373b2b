package version

// Version holds the current version of the CLI.
// It is set at build time with -ldflags "-X github.com/cloudposse/timestamp/pkg/version.Version=<version>".
var Version = "test"
