// SPDX-License-Identifier: MPL-2.0

package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ModulesDirName is the fixed name of the code root under the project root.
	ModulesDirName = "modules"
	// DataDirName is the fixed name of the data root under the project root.
	DataDirName = "data"
)

// ErrNoProject is returned by Find when no datalab workspace is found in the
// starting directory or any of its parents.
var ErrNoProject = errors.New("no datalab project found")

// Project locates everything relative to a single root directory.
// The zero value is not usable; construct with New or Find.
type Project struct {
	// Root is the absolute path of the project root.
	Root string
}

// New returns a Project rooted at dir. The path is resolved to an absolute
// path but not required to exist.
func New(dir string) (Project, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Project{}, fmt.Errorf("failed to resolve project root: %w", err)
	}
	return Project{Root: abs}, nil
}

// Find walks from start upwards until it reaches a directory containing both
// the modules root and the data root. Returns ErrNoProject when the walk
// reaches the filesystem root without a match.
func Find(start string) (Project, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return Project{}, fmt.Errorf("failed to resolve start directory: %w", err)
	}

	for {
		if isRoot(dir) {
			return Project{Root: dir}, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Project{}, ErrNoProject
		}
		dir = parent
	}
}

// isRoot reports whether dir holds both fixed children of a project root.
func isRoot(dir string) bool {
	for _, name := range []string{ModulesDirName, DataDirName} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil || !info.IsDir() {
			return false
		}
	}
	return true
}

// ModulesDir returns the code root, a fixed child of the project root.
func (p Project) ModulesDir() string {
	return filepath.Join(p.Root, ModulesDirName)
}

// DataDir returns the data root, a fixed child of the project root.
func (p Project) DataDir() string {
	return filepath.Join(p.Root, DataDirName)
}

// ModuleDir returns the code directory of the named module.
func (p Project) ModuleDir(name string) string {
	return filepath.Join(p.ModulesDir(), name)
}

// ModuleDataDir returns the data directory of the named module. It always
// shares its base name with the module's code directory.
func (p Project) ModuleDataDir(name string) string {
	return filepath.Join(p.DataDir(), name)
}

// Setup creates the modules root and data root under dir. It is idempotent:
// roots that already exist are left untouched and do not cause an error.
func Setup(dir string) (Project, error) {
	p, err := New(dir)
	if err != nil {
		return Project{}, err
	}
	for _, d := range []string{p.ModulesDir(), p.DataDir()} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return Project{}, fmt.Errorf("failed to create %s: %w", d, err)
		}
	}
	return p, nil
}
