// Package version exposes the CarbonFocus build version.
package version

// Version is overridden at build time via
// -ldflags "-X github.com/rshade/carbonfocus/pkg/version.Version=v1.2.3".
//
//nolint:gochecknoglobals // Set by the linker at build time.
var Version = "dev"

// GetVersion returns the current build version.
func GetVersion() string {
	return Version
}
