// Package branding provides compile-time identity values for the CLI.
//
// Values come from branding.yaml in this package, baked into the binary
// with //go:embed. Hard defaults apply when a key is missing.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	CatalogFile string `yaml:"catalog_file"`
	EnvPrefix   string `yaml:"env_prefix"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:     "oye",
			Description: "Copy example files into the current directory",
			HomeDir:     ".oye",
			CatalogFile: ".oye.json",
			EnvPrefix:   "OYE",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "oye").
func CLIName() string { load(); return defaults.CLIName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name that holds catalogs, both next to
// the executable and under $HOME (e.g., ".oye").
func HomeDir() string { load(); return defaults.HomeDir }

// CatalogFile returns the catalog file name looked up in every catalog
// directory (e.g., ".oye.json").
func CatalogFile() string { load(); return defaults.CatalogFile }

// EnvPrefix returns the environment variable prefix (e.g., "OYE").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("home") → "OYE_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
