// Package version exposes build metadata injected at link time.
package version

//nolint:gochecknoglobals // overridden with -ldflags "-X"
var (
	name    = "custom-integrations-analytics"
	version = "dev"
	commit  = "unknown"
)

// Name returns the binary name.
func Name() string {
	return name
}

// Version returns the release version, or "dev" for local builds.
func Version() string {
	return version
}

// Commit returns the git commit the binary was built from.
func Commit() string {
	return commit
}
