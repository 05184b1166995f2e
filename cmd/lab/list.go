// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"datalab-cli/pkg/labmod"

	"github.com/spf13/cobra"
)

var listQuiet bool

// listCmd enumerates the modules of the current project.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all modules",
	Long: `List the modules of the current project, one per line, with the
number and total size of files in each module's data directory.

With --quiet, print bare module names only (suitable for scripting).`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVarP(&listQuiet, "quiet", "q", false, "print module names only")
}

func runList(cmd *cobra.Command, args []string) error {
	p, err := findProject()
	if err != nil {
		return err
	}

	store := labmod.NewStore(p)

	if listQuiet {
		names, err := store.List()
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	}

	infos, err := store.ListInfo()
	if err != nil {
		return err
	}

	if len(infos) == 0 {
		fmt.Println(SubtitleStyle.Render("No modules found"))
		fmt.Printf("Use %s to create one\n", CmdStyle.Render("lab add <name>"))
		return nil
	}

	fmt.Println(TitleStyle.Render(fmt.Sprintf("Modules (%d)", len(infos))))
	for _, info := range infos {
		dataInfo := "no data"
		if info.DataFiles > 0 {
			dataInfo = fmt.Sprintf("%d files, %s", info.DataFiles, labmod.FormatSize(info.DataSize))
		}
		fmt.Printf("  %s %s\n", CmdStyle.Render(info.Name), SubtitleStyle.Render("("+dataInfo+")"))
	}
	return nil
}
