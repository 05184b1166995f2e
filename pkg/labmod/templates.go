// SPDX-License-Identifier: MPL-2.0

package labmod

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// EntryFileGo is the Go entry point file the runner looks for first.
	EntryFileGo = "run.go"
	// EntryFileShell is the shell entry point file used as a fallback.
	EntryFileShell = "run.sh"
	// EntryFunc is the function a Go module must export from its entry point.
	EntryFunc = "Run"
)

const runTemplate = `// Module %[1]s.
package main

import "fmt"

// Run is the entry point invoked by 'lab run %[1]s'.
func Run() error {
	fmt.Println("=== Module %[1]s ===")

	data, err := LoadData()
	if err != nil {
		return err
	}
	if err := Analyze(data); err != nil {
		return err
	}

	fmt.Println("=== Finished ===")
	return nil
}
`

const loadDataTemplate = `// Load data for %[1]s.
package main

// LoadData reads the module's input files. They live in data/%[1]s/
// under the project root.
func LoadData() ([][]string, error) {
	return nil, nil
}
`

const analyzeTemplate = `// Analyze data for %[1]s.
package main

// Analyze processes the rows produced by LoadData.
func Analyze(data [][]string) error {
	_ = data
	return nil
}
`

const runShellTemplate = `# Module %[1]s.
# Input files live in "$LAB_DATA_DIR" (data/%[1]s/ under the project root).

echo "=== Module %[1]s ==="

echo "=== Finished ==="
`

// emitTemplates writes the starter files for a freshly created module into
// its code directory. Partial output on failure is not rolled back; Create
// guards against clobbering existing modules before calling this.
func emitTemplates(moduleDir string, opts CreateOptions) error {
	for filename, content := range Templates(opts) {
		path := filepath.Join(moduleDir, filename)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrWriteFailed, path, err)
		}
	}
	return nil
}

// Templates returns the starter file set for the given options, keyed by
// file name, with the module name substituted into each file.
func Templates(opts CreateOptions) map[string]string {
	if opts.Shell {
		return map[string]string{
			EntryFileShell: fmt.Sprintf(runShellTemplate, opts.Name),
		}
	}
	return map[string]string{
		EntryFileGo:    fmt.Sprintf(runTemplate, opts.Name),
		"load_data.go": fmt.Sprintf(loadDataTemplate, opts.Name),
		"analyze.go":   fmt.Sprintf(analyzeTemplate, opts.Name),
	}
}
