// Package manifest handles parsing and validation of .oye.json catalog files.
// Each file declares named examples either as a bare relative path or as a
// record with a source path and descriptive fields. Files are checked against
// an embedded JSON Schema before their entries are decoded.
package manifest
