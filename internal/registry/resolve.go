package registry

import (
	"errors"
	"fmt"
	"path/filepath"
)

// ErrExampleNotFound is returned when a name is absent from the catalog.
var ErrExampleNotFound = errors.New("example not found")

// Resolve returns the example stored under name, or an error wrapping
// ErrExampleNotFound.
func (c *Catalog) Resolve(name string) (*ResolvedExample, error) {
	ex, ok := c.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrExampleNotFound)
	}
	return ex, nil
}

// TargetPath returns where ex is written when copied into dir.
func (e *ResolvedExample) TargetPath(dir string) string {
	return filepath.Join(dir, e.Target)
}
