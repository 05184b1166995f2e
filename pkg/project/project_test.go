// SPDX-License-Identifier: MPL-2.0

package project

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewResolvesPaths(t *testing.T) {
	t.Parallel()

	p, err := New("/some/root")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"modules root", p.ModulesDir(), filepath.Join("/some/root", "modules")},
		{"data root", p.DataDir(), filepath.Join("/some/root", "data")},
		{"module dir", p.ModuleDir("demo"), filepath.Join("/some/root", "modules", "demo")},
		{"module data dir", p.ModuleDataDir("demo"), filepath.Join("/some/root", "data", "demo")},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestPathsShareModuleName(t *testing.T) {
	t.Parallel()

	p, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	code := filepath.Base(p.ModuleDir("demo"))
	data := filepath.Base(p.ModuleDataDir("demo"))
	if code != data {
		t.Errorf("code dir %q and data dir %q must share the module name", code, data)
	}
}

func TestSetupIdempotent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	p, err := Setup(dir)
	if err != nil {
		t.Fatalf("first Setup failed: %v", err)
	}
	for _, d := range []string{p.ModulesDir(), p.DataDir()} {
		info, err := os.Stat(d)
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s after Setup: %v", d, err)
		}
	}

	// Second run must succeed and leave existing content alone.
	marker := filepath.Join(p.ModulesDir(), "keep")
	if err := os.Mkdir(marker, 0o755); err != nil {
		t.Fatalf("failed to create marker: %v", err)
	}
	if _, err := Setup(dir); err != nil {
		t.Fatalf("second Setup failed: %v", err)
	}
	if _, err := os.Stat(marker); err != nil {
		t.Errorf("Setup removed existing content: %v", err)
	}
}

func TestFind(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if _, err := Setup(root); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	nested := filepath.Join(root, "modules", "demo", "deeper")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	tests := []struct {
		name  string
		start string
	}{
		{"from project root", root},
		{"from nested directory", nested},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, err := Find(tt.start)
			if err != nil {
				t.Fatalf("Find failed: %v", err)
			}
			// Resolve symlinks: t.TempDir may sit behind one on some platforms.
			wantRoot, _ := filepath.EvalSymlinks(root)
			gotRoot, _ := filepath.EvalSymlinks(p.Root)
			if gotRoot != wantRoot {
				t.Errorf("Find root = %q, want %q", gotRoot, wantRoot)
			}
		})
	}
}

func TestFindNoProject(t *testing.T) {
	t.Parallel()

	_, err := Find(t.TempDir())
	if err == nil {
		t.Fatal("expected error outside a project")
	}
	if err != ErrNoProject {
		t.Errorf("error = %v, want ErrNoProject", err)
	}
}

func TestFindRequiresBothRoots(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ModulesDirName), 0o755); err != nil {
		t.Fatalf("failed to create modules dir: %v", err)
	}

	if _, err := Find(dir); err != ErrNoProject {
		t.Errorf("a lone modules/ directory must not count as a project, got %v", err)
	}
}
