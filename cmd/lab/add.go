// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"datalab-cli/internal/issue"
	"datalab-cli/pkg/labmod"

	"github.com/spf13/cobra"
)

var addShell bool

// addCmd creates a new module.
var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a new module",
	Long: `Create a new module with the given name.

The module gets a code directory under modules/ populated with starter
files, and an empty data directory under data/. Module names must start
with a letter and contain only letters, digits, '_' or '-'.

Examples:
  lab add sales
  lab add daily-report --shell`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().BoolVar(&addShell, "shell", false, "scaffold a shell entry point (run.sh) instead of Go script files")
}

func runAdd(cmd *cobra.Command, args []string) error {
	name := args[0]

	p, err := findProject()
	if err != nil {
		return err
	}

	store := labmod.NewStore(p)
	opts := labmod.CreateOptions{Name: name, Shell: addShell}
	if err := store.Create(opts); err != nil {
		if errors.Is(err, labmod.ErrAlreadyExists) {
			return issue.NewErrorContext().
				WithOperation("create module").
				WithResource(name).
				WithSuggestion("Pick a different name").
				WithSuggestion("Or remove the existing module with 'lab remove " + name + "'").
				Wrap(err).
				BuildError()
		}
		return fmt.Errorf("failed to create module: %w", err)
	}

	fmt.Printf("%s Module %s created\n", SuccessStyle.Render("✓"), CmdStyle.Render(name))
	fmt.Printf("  %s\n", PathStyle.Render(p.ModuleDir(name)))
	fmt.Printf("  %s\n", PathStyle.Render(p.ModuleDataDir(name)))

	files := make([]string, 0, 3)
	for f := range labmod.Templates(opts) {
		files = append(files, f)
	}
	sort.Strings(files)
	fmt.Printf("  Files: %s\n", strings.Join(files, ", "))

	fmt.Println()
	fmt.Println(SubtitleStyle.Render("Next steps:"))
	fmt.Printf("  1. Drop input files into %s\n", PathStyle.Render("data/"+name+"/"))
	fmt.Printf("  2. Edit the starter files in %s\n", PathStyle.Render("modules/"+name+"/"))
	fmt.Printf("  3. Run %s\n", CmdStyle.Render("lab run "+name))

	return nil
}
