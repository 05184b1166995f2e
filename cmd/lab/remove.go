// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"datalab-cli/internal/issue"
	"datalab-cli/pkg/labmod"

	"github.com/spf13/cobra"
)

var removeForce bool

// removeCmd deletes a module and its data.
var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a module and its data",
	Long: `Recursively delete the named module's code directory and its data
directory. This is irreversible, so a confirmation prompt is shown unless
--force is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().BoolVarP(&removeForce, "force", "f", false, "skip the confirmation prompt")
}

func runRemove(cmd *cobra.Command, args []string) error {
	name := args[0]

	p, err := findProject()
	if err != nil {
		return err
	}

	store := labmod.NewStore(p)

	if !removeForce {
		fmt.Printf("%s Remove module %s and its data? (y/N): ", WarningStyle.Render("!"), CmdStyle.Render(name))
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println(SubtitleStyle.Render("Deletion canceled"))
			return nil
		}
	}

	if err := store.Remove(name); err != nil {
		if errors.Is(err, labmod.ErrNotFound) {
			return issue.NewErrorContext().
				WithOperation("remove module").
				WithResource(name).
				WithSuggestion("Run 'lab list' to see available modules").
				Wrap(err).
				BuildError()
		}
		return fmt.Errorf("failed to remove module: %w", err)
	}

	fmt.Printf("%s Removed %s\n", SuccessStyle.Render("✓"), PathStyle.Render(p.ModuleDir(name)))
	fmt.Printf("%s Removed %s\n", SuccessStyle.Render("✓"), PathStyle.Render(p.ModuleDataDir(name)))
	return nil
}
