package registry

import (
	"errors"
	"io/fs"
	"maps"
	"path/filepath"

	"github.com/oye-labs/oye/internal/branding"
	"github.com/oye-labs/oye/internal/manifest"
)

// Build reads the catalog file from each path, in order, and folds every
// entry into one Catalog. Entries from later paths overwrite earlier entries
// with the same namespaced name.
//
// Build never fails. Missing catalog files are skipped quietly; malformed
// ones are reported through the logger and skipped.
func Build(paths []CatalogPath, opts ...Option) *Catalog {
	o := newOptions(opts)
	cat := NewCatalog()

	for _, p := range paths {
		file := filepath.Join(p.Path, branding.CatalogFile())

		f, err := manifest.ParseFile(file)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				o.logger.Debug("no catalog", "path", file)
				continue
			}
			o.logger.Warn("skipping catalog", "path", file, "err", err)
			continue
		}

		if f.Merge != nil {
			o.logger.Debug("merge directive ignored; root catalogs always merge", "path", file, "merge", *f.Merge)
		}

		ns := p.Namespace()
		for _, ne := range f.Examples {
			ex := normalize(p, ne.Entry)
			ex.Name = namespaced(ns, ne.Name)
			if cat.Set(ex) {
				o.logger.Debug("example overridden", "name", ex.Name, "path", file)
			}
		}
		o.logger.Debug("loaded catalog", "path", file, "role", p.Role, "examples", len(f.Examples))
	}

	return cat
}

// Namespace returns the prefix applied to entry names declared in p.
// Root layers share the empty namespace; each home subdirectory is
// namespaced by its base name.
func (p CatalogPath) Namespace() string {
	if p.Role == RoleHomeSubdir {
		return filepath.Base(p.Path)
	}
	return ""
}

// namespaced prefixes name with ns verbatim. The key is not cleaned, so
// "../x" declared in work stays "work/../x" and never reaches another namespace.
func namespaced(ns, name string) string {
	if ns == "" {
		return name
	}
	return ns + "/" + name
}

// normalize turns a raw catalog entry into a ResolvedExample rooted at p.
func normalize(p CatalogPath, e manifest.Entry) *ResolvedExample {
	ex := &ResolvedExample{
		Source: filepath.Join(p.Path, e.Source()),
		Origin: p,
	}

	switch e.Kind {
	case manifest.KindShorthand:
		ex.Target = e.Path
		ex.Fields = map[string]any{
			manifest.FieldSource: ex.Source,
			manifest.FieldTarget: ex.Target,
		}
	default:
		ex.Fields = maps.Clone(e.Fields)
		ex.Fields[manifest.FieldSource] = ex.Source
		ex.Target = e.Target()
		if ex.Target == "" {
			ex.Target = e.Source()
		}
		ex.Description = e.Description()
	}

	return ex
}
