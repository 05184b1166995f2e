// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"datalab-cli/pkg/labmod"
	"datalab-cli/pkg/project"
)

var (
	// ErrNotFound is returned when the module or its entry point file does
	// not exist.
	ErrNotFound = errors.New("module entry point not found")
	// ErrRunFailed wraps any failure raised while loading or executing a
	// module's code.
	ErrRunFailed = errors.New("module run failed")
)

// Runner locates and invokes module entry points inside one project.
type Runner struct {
	Project project.Project

	// Stdio passed through to module code. Defaults to the process stdio.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New returns a Runner bound to p with process stdio.
func New(p project.Project) *Runner {
	return &Runner{
		Project: p,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Run invokes the named module's entry point and returns ErrRunFailed
// wrapping whatever its code raised. The runner never writes to the
// module's files, so a failed run cannot corrupt on-disk state.
func (r *Runner) Run(ctx context.Context, name string) error {
	if err := labmod.ValidateName(name); err != nil {
		return err
	}

	moduleDir := r.Project.ModuleDir(name)
	if info, err := os.Stat(moduleDir); err != nil || !info.IsDir() {
		return fmt.Errorf("%w: module %q", ErrNotFound, name)
	}

	if entry := filepath.Join(moduleDir, labmod.EntryFileGo); fileExists(entry) {
		return r.runGo(ctx, name, moduleDir)
	}
	if entry := filepath.Join(moduleDir, labmod.EntryFileShell); fileExists(entry) {
		return r.runShell(ctx, name, filepath.Join(moduleDir, labmod.EntryFileShell))
	}
	return fmt.Errorf("%w: module %q has neither %s nor %s", ErrNotFound, name, labmod.EntryFileGo, labmod.EntryFileShell)
}

// failure tags err with the module name under the ErrRunFailed sentinel.
func failure(name string, err error) error {
	return fmt.Errorf("%w: module %q: %v", ErrRunFailed, name, err)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
