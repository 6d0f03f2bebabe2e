// Package version renders the build version reported by --version.
package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Normalize returns version in canonical semver form ("v1.2" -> "1.2.0").
// Strings that are not semver, such as "dev", are returned unchanged.
func Normalize(version string) string {
	v, err := parseSemver(version)
	if err != nil {
		return version
	}
	return v.String()
}

// String formats the full version line. Commit and date are appended only
// when they were injected at build time.
func String(version, commit, date string) string {
	s := Normalize(version)
	var extra []string
	if commit != "" && commit != "unknown" {
		extra = append(extra, "commit: "+commit)
	}
	if date != "" && date != "unknown" {
		extra = append(extra, "built: "+date)
	}
	if len(extra) == 0 {
		return s
	}
	return fmt.Sprintf("%s (%s)", s, strings.Join(extra, ", "))
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
