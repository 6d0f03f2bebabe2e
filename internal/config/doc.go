// Package config manages user-level settings stored at ~/.oye/config.yaml.
// Settings can also be supplied as OYE_-prefixed environment variables.
package config
