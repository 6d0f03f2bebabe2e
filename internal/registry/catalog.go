package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Catalog maps namespaced example names to resolved examples, keeping the
// order in which names were first inserted.
type Catalog struct {
	names    []string
	examples map[string]*ResolvedExample
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{examples: make(map[string]*ResolvedExample)}
}

// Set stores ex under ex.Name. An existing entry is replaced in place and
// keeps its position. Reports whether an entry was replaced.
func (c *Catalog) Set(ex *ResolvedExample) bool {
	_, exists := c.examples[ex.Name]
	if !exists {
		c.names = append(c.names, ex.Name)
	}
	c.examples[ex.Name] = ex
	return exists
}

// Lookup returns the example stored under name.
func (c *Catalog) Lookup(name string) (*ResolvedExample, bool) {
	ex, ok := c.examples[name]
	return ex, ok
}

// Names returns every example name in insertion order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// All returns every example in insertion order.
func (c *Catalog) All() []*ResolvedExample {
	out := make([]*ResolvedExample, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.examples[name])
	}
	return out
}

// Len returns the number of examples.
func (c *Catalog) Len() int { return len(c.names) }

// MarshalJSON renders the catalog as {"examples": {...}} with names in
// insertion order.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"examples":{`)
	for i, name := range c.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(c.examples[name])
		if err != nil {
			return nil, fmt.Errorf("marshaling example %s: %w", name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteString(`}}`)
	return buf.Bytes(), nil
}
