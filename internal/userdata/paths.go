package userdata

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/oye-labs/oye/internal/branding"
	"github.com/oye-labs/oye/internal/config"
)

// GetDefaultRoot returns the bundled catalog directory.
// It checks the OYE_DEFAULT_DIR environment variable first, then the
// default_dir config key, then falls back to .oye next to the executable.
// The result is always absolute.
func GetDefaultRoot() (string, error) {
	if v := os.Getenv(branding.EnvVar("DEFAULT_DIR")); v != "" {
		return filepath.Abs(v)
	}
	if v := config.DefaultDir(); v != "" {
		return filepath.Abs(v)
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), branding.HomeDir()), nil
}

// GetHomeRoot returns the user catalog directory.
// It checks the OYE_HOME environment variable first,
// then falls back to ~/.oye. The directory may not exist.
// Returns "" when no home directory can be determined.
func GetHomeRoot() (string, error) {
	dir := config.Dir()
	if dir == "" {
		return "", nil
	}
	root, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving home catalog directory: %w", err)
	}
	return root, nil
}
