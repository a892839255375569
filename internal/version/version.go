// Package version exposes the build version of the dashboard server.
package version

// Version is overridden at build time with
// -ldflags "-X github.com/ndewijer/Exchange-Rate-Dashboard/internal/version.Version=v1.2.3".
var Version = "dev"
