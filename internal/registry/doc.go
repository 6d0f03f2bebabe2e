// Package registry discovers catalog directories, merges their .oye.json
// files into one namespaced lookup table, and copies resolved examples into
// a working directory. Catalogs are layered: the bundled default directory
// first, then ~/.oye/, then each non-hidden subdirectory of ~/.oye/ under
// its own namespace.
package registry
