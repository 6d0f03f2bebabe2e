package cli

import "github.com/oye-labs/oye/internal/version"

// Build info, overwritten by Execute with values injected via ldflags.
var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

// versionString is printed by --version.
func versionString() string {
	return version.String(buildVersion, buildCommit, buildDate)
}
