// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for lab.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"datalab-cli/internal/config"
	"datalab-cli/internal/issue"
	"datalab-cli/pkg/project"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgDir allows overriding the config directory
	cfgDir string

	// cfg is the loaded configuration, available to all commands.
	cfg = config.DefaultConfig()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "lab",
		Short: "A modular data-analysis workspace",
		Long: TitleStyle.Render("lab") + SubtitleStyle.Render(" - A modular data-analysis workspace") + `

lab organizes ad-hoc data-analysis scripts into a uniform layout:
one directory per module under modules/, paired with a dedicated
data directory under data/. Modules supply their own entry point
(run.go or run.sh) which lab discovers and invokes.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Run 'lab setup' in your project directory
  2. Add a module with 'lab add <name>'
  3. Drop input files into data/<name>/ and edit modules/<name>/
  4. Execute it with 'lab run <name>'

` + SubtitleStyle.Render("Examples:") + `
  lab setup                 Create the modules/ and data/ roots
  lab add sales             Scaffold a new 'sales' module
  lab list                  List modules with their data footprint
  lab run sales             Run the 'sales' module
  lab backup ./backups      Archive all modules to ./backups`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgDir, "config-dir", "", "config directory (default is platform-specific, e.g. ~/.config/lab)")

	// Add subcommands
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads in the config file if present.
func initRootConfig() {
	if cfgDir != "" {
		config.SetConfigDirOverride(cfgDir)
	}

	loaded, err := config.Load()
	if err != nil {
		// Always surface config loading errors to the user
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}
	if loaded != nil {
		cfg = loaded
	}

	// Apply verbose from config if not set via flag
	if !verbose {
		verbose = cfg.UI.Verbose
	}
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// findProject locates the enclosing datalab project from the working
// directory, translating a miss into an actionable error.
func findProject() (project.Project, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return project.Project{}, fmt.Errorf("failed to get current directory: %w", err)
	}

	p, err := project.Find(cwd)
	if err != nil {
		return project.Project{}, issue.NewErrorContext().
			WithOperation("locate project root").
			WithResource(cwd).
			WithSuggestion("Run 'lab setup' to initialize the project structure").
			WithSuggestion("Or change into a directory inside an existing project").
			Wrap(err).
			BuildError()
	}

	log.Debug("resolved project root", "root", p.Root)
	return p, nil
}
