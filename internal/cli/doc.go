// Package cli defines the cobra root command for the oye CLI. The command
// builds the merged catalog, renders it in --help and --debug output, and
// delegates copying to the registry package.
package cli
