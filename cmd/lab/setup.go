// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"datalab-cli/pkg/project"

	"github.com/spf13/cobra"
)

// setupCmd creates the project structure in the current directory.
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Initialize the project structure in the current directory",
	Long: `Create the modules/ and data/ roots in the current directory.

Setup is idempotent: roots that already exist are left untouched, so it is
safe to re-run in an existing project.`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

func runSetup(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	p, err := project.Setup(cwd)
	if err != nil {
		return fmt.Errorf("failed to set up project: %w", err)
	}

	fmt.Printf("%s Project initialized\n", SuccessStyle.Render("✓"))
	fmt.Printf("  %s\n", PathStyle.Render(p.ModulesDir()))
	fmt.Printf("  %s\n", PathStyle.Render(p.DataDir()))
	fmt.Println()
	fmt.Println(SubtitleStyle.Render("Next steps:"))
	fmt.Printf("  1. Run %s to create your first module\n", CmdStyle.Render("lab add <name>"))
	fmt.Printf("  2. Run %s to execute it\n", CmdStyle.Render("lab run <name>"))

	return nil
}
