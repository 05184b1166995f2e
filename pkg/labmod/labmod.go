// SPDX-License-Identifier: MPL-2.0

package labmod

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"datalab-cli/pkg/project"
)

var (
	// ErrAlreadyExists is returned by Create when a code or data directory
	// for the name is already present.
	ErrAlreadyExists = errors.New("module already exists")
	// ErrNotFound is returned by Remove and Info when neither directory
	// exists for the name.
	ErrNotFound = errors.New("module not found")
	// ErrWriteFailed wraps filesystem errors from template emission.
	ErrWriteFailed = errors.New("failed to write module files")
	// ErrInvalidName is returned for names that are not filesystem-safe.
	ErrInvalidName = errors.New("invalid module name")
)

// moduleNameRegex accepts filesystem-safe names: a leading letter followed
// by letters, digits, underscores, or hyphens.
var moduleNameRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

// ValidateName checks that name is acceptable as a module name.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidName)
	}
	if !moduleNameRegex.MatchString(name) {
		return fmt.Errorf("%w: %q must start with a letter and contain only letters, digits, '_' or '-'", ErrInvalidName, name)
	}
	return nil
}

// Store creates, enumerates, and removes modules inside one project.
type Store struct {
	Project project.Project
}

// NewStore returns a Store bound to p.
func NewStore(p project.Project) *Store {
	return &Store{Project: p}
}

// CreateOptions controls module creation.
type CreateOptions struct {
	// Name is the module name. Required.
	Name string
	// Shell emits a shell entry point (run.sh) instead of Go script files.
	Shell bool
}

// Create makes the module's code and data directories and emits the starter
// files. It fails with ErrAlreadyExists before touching the filesystem if
// either directory is present.
func (s *Store) Create(opts CreateOptions) error {
	if err := ValidateName(opts.Name); err != nil {
		return err
	}

	moduleDir := s.Project.ModuleDir(opts.Name)
	dataDir := s.Project.ModuleDataDir(opts.Name)

	for _, d := range []string{moduleDir, dataDir} {
		if _, err := os.Stat(d); err == nil {
			return fmt.Errorf("%w: %s", ErrAlreadyExists, d)
		}
	}

	for _, d := range []string{moduleDir, dataDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return fmt.Errorf("failed to create module directory %s: %w", d, err)
		}
	}

	return emitTemplates(moduleDir, opts)
}

// List returns the names of all modules, derived from the immediate
// subdirectories of the modules root. The result is sorted for determinism;
// a missing modules root yields an empty list.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.Project.ModulesDir())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read modules root: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Remove recursively deletes the module's code and data directories.
// Irreversible; confirmation belongs at the CLI boundary. Fails with
// ErrNotFound when neither directory exists.
func (s *Store) Remove(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	moduleDir := s.Project.ModuleDir(name)
	dataDir := s.Project.ModuleDataDir(name)

	exists := false
	for _, d := range []string{moduleDir, dataDir} {
		if _, err := os.Stat(d); err == nil {
			exists = true
		}
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	for _, d := range []string{moduleDir, dataDir} {
		if err := os.RemoveAll(d); err != nil {
			return fmt.Errorf("failed to remove %s: %w", d, err)
		}
	}
	return nil
}

// Info describes a module and its data footprint.
type Info struct {
	Name string
	// DataFiles is the number of regular files under the data directory.
	DataFiles int
	// DataSize is the total size of those files in bytes.
	DataSize int64
}

// Info returns the data footprint of the named module.
func (s *Store) Info(name string) (Info, error) {
	if err := ValidateName(name); err != nil {
		return Info{}, err
	}
	if _, err := os.Stat(s.Project.ModuleDir(name)); err != nil {
		return Info{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	info := Info{Name: name}
	dataDir := s.Project.ModuleDataDir(name)
	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		info.DataFiles++
		info.DataSize += fi.Size()
		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Info{}, fmt.Errorf("failed to scan data directory: %w", err)
	}
	return info, nil
}

// ListInfo returns Info for every module, sorted by name.
func (s *Store) ListInfo() ([]Info, error) {
	names, err := s.List()
	if err != nil {
		return nil, err
	}
	infos := make([]Info, 0, len(names))
	for _, name := range names {
		info, err := s.Info(name)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// FormatSize renders a byte count as a short human-readable string
// ("0 B", "1.5 KB", "2.0 MB", ...).
func FormatSize(size int64) string {
	if size == 0 {
		return "0 B"
	}
	units := []string{"B", "KB", "MB", "GB", "TB"}
	value := float64(size)
	i := 0
	for value >= 1024 && i < len(units)-1 {
		value /= 1024
		i++
	}
	return fmt.Sprintf("%.1f %s", value, units[i])
}
