package manifest

// EntryKind distinguishes the two shapes an example entry may take.
type EntryKind int

const (
	// KindShorthand is a bare relative path string.
	KindShorthand EntryKind = iota
	// KindRecord is an object with at least a "source" field.
	KindRecord
)

// Well-known record fields.
const (
	FieldSource      = "source"
	FieldTarget      = "target"
	FieldDescription = "description"
)

// Entry is a single example as declared in a catalog file.
type Entry struct {
	Kind EntryKind
	// Path holds the relative path of a shorthand entry.
	Path string
	// Fields holds every field of a record entry, verbatim.
	Fields map[string]any
}

// Shorthand returns a string-shorthand entry.
func Shorthand(path string) Entry {
	return Entry{Kind: KindShorthand, Path: path}
}

// Record returns a record entry holding fields.
func Record(fields map[string]any) Entry {
	return Entry{Kind: KindRecord, Fields: fields}
}

// Source returns the relative source path the entry points at.
func (e Entry) Source() string {
	if e.Kind == KindShorthand {
		return e.Path
	}
	return e.stringField(FieldSource)
}

// Target returns the explicit target file name, or "" when the entry
// does not declare one.
func (e Entry) Target() string {
	if e.Kind == KindShorthand {
		return e.Path
	}
	return e.stringField(FieldTarget)
}

// Description returns the human-readable description, if any.
func (e Entry) Description() string {
	if e.Kind == KindShorthand {
		return ""
	}
	return e.stringField(FieldDescription)
}

func (e Entry) stringField(name string) string {
	s, _ := e.Fields[name].(string)
	return s
}

// NamedEntry pairs an example name with its entry.
type NamedEntry struct {
	Name  string
	Entry Entry
}

// File is a parsed catalog file.
type File struct {
	// Path is the file the catalog was read from, if any.
	Path string
	// Merge is the optional layer-merge directive. Nil when absent.
	Merge *bool
	// Examples lists entries in declaration order. Duplicate names are kept
	// as written; later ones win when folded.
	Examples []NamedEntry
}
