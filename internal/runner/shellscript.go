// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// runShell parses and runs the module's run.sh with the embedded mvdan/sh
// interpreter. The script runs in the module's code directory with
// LAB_MODULE and LAB_DATA_DIR set.
func (r *Runner) runShell(ctx context.Context, name, entryPath string) error {
	f, err := os.Open(entryPath)
	if err != nil {
		return failure(name, err)
	}
	defer f.Close()

	prog, err := syntax.NewParser().Parse(f, filepath.Base(entryPath))
	if err != nil {
		return failure(name, fmt.Errorf("script syntax error: %w", err))
	}

	env := append(os.Environ(),
		"LAB_MODULE="+name,
		"LAB_DATA_DIR="+r.Project.ModuleDataDir(name),
	)

	sh, err := interp.New(
		interp.Dir(r.Project.ModuleDir(name)),
		interp.Env(expand.ListEnviron(env...)),
		interp.StdIO(r.Stdin, r.Stdout, r.Stderr),
	)
	if err != nil {
		return failure(name, fmt.Errorf("failed to create interpreter: %w", err))
	}

	if err := sh.Run(ctx, prog); err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			return failure(name, fmt.Errorf("exit status %d", int(exitStatus)))
		}
		return failure(name, err)
	}
	return nil
}
