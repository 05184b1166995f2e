// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"datalab-cli/internal/issue"
	"datalab-cli/internal/runner"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// runCmd invokes a module's entry point.
var runCmd = &cobra.Command{
	Use:   "run <name>",
	Short: "Run a module",
	Long: `Locate the named module's entry point (run.go or run.sh) and invoke
it. Go entry points are interpreted in a fresh in-process interpreter and
must define a Run function; shell entry points run in the embedded shell
with LAB_MODULE and LAB_DATA_DIR set.

A failure inside the module is reported with the module name and exits
non-zero; it never corrupts the module's files.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	name := args[0]

	p, err := findProject()
	if err != nil {
		return err
	}

	fmt.Printf("%s Running %s\n", SubtitleStyle.Render("▶"), CmdStyle.Render(name))

	r := runner.New(p)
	if err := r.Run(cmd.Context(), name); err != nil {
		log.Debug("module run failed", "module", name, "err", err)
		if errors.Is(err, runner.ErrNotFound) {
			return issue.NewErrorContext().
				WithOperation("run module").
				WithResource(name).
				WithSuggestion("Run 'lab list' to see available modules").
				WithSuggestion("Check that the module has a run.go or run.sh entry point").
				Wrap(err).
				BuildError()
		}

		// A failure inside the module's own code is not a usage error:
		// report it directly and exit non-zero without usage help.
		ae := issue.NewErrorContext().
			WithOperation("run module").
			WithResource(name).
			WithSuggestion("Fix the error in the module's code and re-run").
			Wrap(err).
			Build()
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("✗ ")+ae.Format(verbose))
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
		return &ExitError{Code: 1}
	}

	fmt.Printf("%s Module %s finished\n", SuccessStyle.Render("✓"), CmdStyle.Render(name))
	return nil
}
