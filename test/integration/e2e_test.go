//go:build integration

package integration_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oye-labs/oye/internal/registry"
	"github.com/oye-labs/oye/internal/userdata"
)

// TestFullFlowLayeredCatalog discovers and merges all layers the way the
// CLI does and checks the resulting table.
func TestFullFlowLayeredCatalog(t *testing.T) {
	env := setupTestEnv(t)
	setupCatalogs(t, env)

	defaultRoot, err := userdata.GetDefaultRoot()
	if err != nil {
		t.Fatalf("GetDefaultRoot: %v", err)
	}
	homeRoot, err := userdata.GetHomeRoot()
	if err != nil {
		t.Fatalf("GetHomeRoot: %v", err)
	}

	paths := registry.DiscoverPaths(defaultRoot, homeRoot)
	if len(paths) != 3 {
		t.Fatalf("expected default, home and team paths, got %+v", paths)
	}

	cat := registry.Build(paths)

	want := []string{"editorconfig", "gitignore", "license", "team/license", "team/ci"}
	got := cat.Names()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Names() = %v, want %v", got, want)
	}

	gitignore, _ := cat.Lookup("gitignore")
	if gitignore.Origin.Role != registry.RoleHomeRoot {
		t.Errorf("gitignore should come from the home catalog, got %v", gitignore.Origin.Role)
	}
	if _, ok := cat.Lookup("secret"); ok {
		t.Error("hidden directory was scanned")
	}
	for _, ex := range cat.All() {
		if !filepath.IsAbs(ex.Source) {
			t.Errorf("%s: source %q is not absolute", ex.Name, ex.Source)
		}
	}
}

// TestFullFlowCopyEveryLayer copies one example from each layer into the
// working directory.
func TestFullFlowCopyEveryLayer(t *testing.T) {
	env := setupTestEnv(t)
	setupCatalogs(t, env)

	for _, name := range []string{"editorconfig", "gitignore", "team/ci"} {
		if _, stderr, err := runOye(t, name); err != nil {
			t.Fatalf("oye %s: %v (stderr %q)", name, err, stderr)
		}
	}

	assertFileContains(t, filepath.Join(env.WorkDir, ".editorconfig"), "root = true")
	assertFileContains(t, filepath.Join(env.WorkDir, ".gitignore"), "node_modules/")
	assertFileContains(t, filepath.Join(env.WorkDir, "ci.yml"), "on: push")
	assertFileNotExists(t, filepath.Join(env.WorkDir, "workflows"))
}

// TestFullFlowNamespaceConflict checks that root and team entries sharing a
// name both remain reachable.
func TestFullFlowNamespaceConflict(t *testing.T) {
	env := setupTestEnv(t)
	setupCatalogs(t, env)

	if _, _, err := runOye(t, "license"); err != nil {
		t.Fatalf("oye license: %v", err)
	}
	assertFileContains(t, filepath.Join(env.WorkDir, "LICENSE"), "MIT License")

	// Same target name: the second copy must be refused.
	_, _, err := runOye(t, "team/license")
	if !errors.Is(err, registry.ErrTargetExists) {
		t.Fatalf("err = %v, want ErrTargetExists", err)
	}
	assertFileContains(t, filepath.Join(env.WorkDir, "LICENSE"), "MIT License")

	stdout, _, err := runOye(t, "--stdout", "team/license")
	if err != nil {
		t.Fatalf("oye --stdout team/license: %v", err)
	}
	if stdout != "Proprietary\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

// TestFullFlowBrokenHomeCatalog checks that a malformed home catalog does
// not block the bundled or namespaced layers.
func TestFullFlowBrokenHomeCatalog(t *testing.T) {
	env := setupTestEnv(t)
	setupCatalogs(t, env)
	writeFile(t, filepath.Join(env.HomeDir, ".oye.json"), "{not json")

	stdout, stderr, err := runOye(t, "-o", "gitignore")
	if err != nil {
		t.Fatalf("oye -o gitignore: %v", err)
	}
	if stdout != "*.log\n" {
		t.Errorf("expected the bundled gitignore, got %q", stdout)
	}
	if !strings.Contains(stderr, ".oye.json") {
		t.Errorf("expected a diagnostic naming the catalog, got %q", stderr)
	}

	if _, _, err := runOye(t, "team/ci"); err != nil {
		t.Fatalf("oye team/ci: %v", err)
	}
	assertFileExists(t, filepath.Join(env.WorkDir, "ci.yml"))
}

// TestFullFlowNoHomeDirectory runs with only the bundled catalog.
func TestFullFlowNoHomeDirectory(t *testing.T) {
	env := setupTestEnv(t)
	setupCatalogs(t, env)
	t.Setenv("OYE_HOME", filepath.Join(env.HomeDir, "does-not-exist"))

	if _, _, err := runOye(t, "gitignore"); err != nil {
		t.Fatalf("oye gitignore: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(env.WorkDir, ".gitignore"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "*.log\n" {
		t.Errorf("expected bundled content, got %q", data)
	}

	_, _, err = runOye(t, "team/ci")
	if !errors.Is(err, registry.ErrExampleNotFound) {
		t.Errorf("err = %v, want ErrExampleNotFound", err)
	}
}
