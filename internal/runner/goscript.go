// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"datalab-cli/pkg/labmod"
)

// runGo evaluates every Go source file in the module's code directory in a
// fresh yaegi interpreter and calls its Run function. A new interpreter per
// invocation keeps module runs fully isolated from each other.
func (r *Runner) runGo(ctx context.Context, name, moduleDir string) (err error) {
	sources, err := goSources(moduleDir)
	if err != nil {
		return failure(name, err)
	}

	i := interp.New(interp.Options{
		Stdin:  r.Stdin,
		Stdout: r.Stdout,
		Stderr: r.Stderr,
	})
	if err := i.Use(stdlib.Symbols); err != nil {
		return failure(name, fmt.Errorf("failed to load stdlib: %w", err))
	}

	for _, src := range sources {
		data, readErr := os.ReadFile(src)
		if readErr != nil {
			return failure(name, readErr)
		}
		if _, evalErr := i.EvalWithContext(ctx, string(data)); evalErr != nil {
			return failure(name, fmt.Errorf("%s: %w", filepath.Base(src), evalErr))
		}
	}

	entry, err := i.Eval("main." + labmod.EntryFunc)
	if err != nil {
		return failure(name, fmt.Errorf("function %s not found: %w", labmod.EntryFunc, err))
	}

	// Module code can panic; contain it here.
	defer func() {
		if rec := recover(); rec != nil {
			err = failure(name, fmt.Errorf("panic: %v", rec))
		}
	}()

	switch fn := entry.Interface().(type) {
	case func() error:
		if runErr := fn(); runErr != nil {
			return failure(name, runErr)
		}
	case func():
		fn()
	default:
		return failure(name, fmt.Errorf("%s has signature %T, want func() error or func()", labmod.EntryFunc, entry.Interface()))
	}
	return nil
}

// goSources lists the module's Go files sorted by name, with the entry
// point evaluated last so stubs it calls are already defined.
func goSources(moduleDir string) ([]string, error) {
	entries, err := os.ReadDir(moduleDir)
	if err != nil {
		return nil, err
	}

	var sources []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".go") {
			continue
		}
		sources = append(sources, filepath.Join(moduleDir, e.Name()))
	}
	sort.Slice(sources, func(a, b int) bool {
		aEntry := filepath.Base(sources[a]) == labmod.EntryFileGo
		bEntry := filepath.Base(sources[b]) == labmod.EntryFileGo
		if aEntry != bEntry {
			return bEntry
		}
		return sources[a] < sources[b]
	})
	return sources, nil
}
