package registry

import (
	"os"
	"path/filepath"
	"strings"
)

// DiscoverPaths returns the directories that may contain a catalog file, in
// priority order: defaultRoot, then homeRoot when it is an existing directory,
// then each non-hidden subdirectory of homeRoot in listing order. An empty
// root is treated as absent.
//
// Filesystem errors never abort discovery. An unreadable or missing homeRoot
// is treated as absent and an unreadable listing as empty.
func DiscoverPaths(defaultRoot, homeRoot string, opts ...Option) []CatalogPath {
	o := newOptions(opts)

	var paths []CatalogPath
	seen := map[string]bool{}
	if defaultRoot != "" {
		defaultRoot = absPath(defaultRoot)
		seen[defaultRoot] = true
		paths = append(paths, CatalogPath{Path: defaultRoot, Role: RoleDefault})
	}

	if homeRoot == "" {
		return paths
	}
	homeRoot = absPath(homeRoot)

	info, err := os.Stat(homeRoot)
	if err != nil || !info.IsDir() {
		o.logger.Debug("no home catalog directory", "path", homeRoot)
		return paths
	}

	if !seen[homeRoot] {
		seen[homeRoot] = true
		paths = append(paths, CatalogPath{Path: homeRoot, Role: RoleHomeRoot})
	}

	entries, err := os.ReadDir(homeRoot)
	if err != nil {
		o.logger.Debug("listing home catalog directory", "path", homeRoot, "err", err)
		return paths
	}

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		dir := filepath.Join(homeRoot, name)
		// Stat follows symlinks, so a link to a directory counts.
		fi, err := os.Stat(dir)
		if err != nil {
			o.logger.Debug("skipping unreadable entry", "path", dir, "err", err)
			continue
		}
		if !fi.IsDir() || seen[dir] {
			continue
		}
		seen[dir] = true
		paths = append(paths, CatalogPath{Path: dir, Role: RoleHomeSubdir})
	}

	return paths
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}
