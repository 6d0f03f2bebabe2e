package registry

import (
	"encoding/json"
	"io"

	"github.com/charmbracelet/log"
)

// Role identifies where a catalog directory sits in the layer order.
type Role int

const (
	// RoleDefault is the bundled catalog shipped with the binary.
	RoleDefault Role = iota
	// RoleHomeRoot is the user's ~/.oye/ directory.
	RoleHomeRoot
	// RoleHomeSubdir is a non-hidden directory directly under ~/.oye/.
	RoleHomeSubdir
)

// String returns a human-readable name for the role.
func (r Role) String() string {
	switch r {
	case RoleDefault:
		return "default"
	case RoleHomeRoot:
		return "home"
	case RoleHomeSubdir:
		return "home-subdir"
	default:
		return "unknown"
	}
}

// CatalogPath is a directory that may hold a catalog file.
type CatalogPath struct {
	Path string // absolute directory path
	Role Role
}

// ResolvedExample is a catalog entry after normalization.
type ResolvedExample struct {
	Name        string         // namespaced name, e.g. "work/readme"
	Source      string         // absolute path of the template file
	Target      string         // file name to create in the working directory
	Description string         // empty when the entry has none
	Origin      CatalogPath    // directory the entry was declared in
	Fields      map[string]any // every declared field, with source made absolute
}

// MarshalJSON renders the example the way it appears in the merged catalog:
// the declared fields with an absolute source.
func (e *ResolvedExample) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Fields)
}

// Summary returns the description, or the target when there is none.
func (e *ResolvedExample) Summary() string {
	if e.Description != "" {
		return e.Description
	}
	return e.Target
}

type options struct {
	logger *log.Logger
}

// Option configures discovery and merging.
type Option func(*options)

// WithLogger sets the logger that receives diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	return o
}
