//go:build integration

package integration_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oye-labs/oye/internal/cli"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	DefaultDir string // OYE_DEFAULT_DIR: bundled catalog
	HomeDir    string // OYE_HOME: user catalog root with subdirectories
	WorkDir    string // working directory examples are copied into
}

// setupTestEnv creates isolated temp directories and sets environment variables
// so all oye operations are sandboxed. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		DefaultDir: t.TempDir(),
		HomeDir:    t.TempDir(),
		WorkDir:    t.TempDir(),
	}

	t.Setenv("OYE_DEFAULT_DIR", env.DefaultDir)
	t.Setenv("OYE_HOME", env.HomeDir)
	t.Setenv("OYE_LOG_LEVEL", "")
	t.Chdir(env.WorkDir)

	return env
}

// setupCatalogs writes a bundled catalog, a home catalog that shadows one
// bundled entry, a namespaced team catalog, and a hidden directory that must
// never be read.
func setupCatalogs(t *testing.T, env *testEnv) {
	t.Helper()

	// --- Bundled defaults ---
	writeFile(t, filepath.Join(env.DefaultDir, ".oye.json"), `{
  "examples": {
    "editorconfig": ".editorconfig",
    "gitignore": {"source": "gitignore", "target": ".gitignore", "description": "Generic .gitignore"},
    "license": {"source": "LICENSE-MIT", "target": "LICENSE", "description": "MIT license"}
  }
}`)
	writeFile(t, filepath.Join(env.DefaultDir, ".editorconfig"), "root = true\n")
	writeFile(t, filepath.Join(env.DefaultDir, "gitignore"), "*.log\n")
	writeFile(t, filepath.Join(env.DefaultDir, "LICENSE-MIT"), "MIT License\n")

	// --- Home root: shadows gitignore ---
	writeFile(t, filepath.Join(env.HomeDir, ".oye.json"), `{
  "merge": true,
  "examples": {
    "gitignore": {"source": "my-gitignore", "target": ".gitignore", "description": "My .gitignore"}
  }
}`)
	writeFile(t, filepath.Join(env.HomeDir, "my-gitignore"), "node_modules/\n*.log\n")

	// --- Team subdirectory: namespaced ---
	writeFile(t, filepath.Join(env.HomeDir, "team", ".oye.json"), `{
  "examples": {
    "license": "LICENSE",
    "ci": {"source": "workflows/ci.yml", "target": "ci.yml"}
  }
}`)
	writeFile(t, filepath.Join(env.HomeDir, "team", "LICENSE"), "Proprietary\n")
	writeFile(t, filepath.Join(env.HomeDir, "team", "workflows", "ci.yml"), "on: push\n")

	// --- Hidden subdirectory: never scanned ---
	writeFile(t, filepath.Join(env.HomeDir, ".cache", ".oye.json"), `{"examples": {"secret": "secret.txt"}}`)
	writeFile(t, filepath.Join(env.HomeDir, ".cache", "secret.txt"), "hidden\n")
}

// runOye executes a fresh root command with args and captures its output.
func runOye(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	if args == nil {
		args = []string{}
	}
	cmd := cli.NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

// writeFile creates a file with the given content, creating parent dirs as needed.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
