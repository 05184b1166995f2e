// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"datalab-cli/internal/config"

	"github.com/spf13/cobra"
)

// configCmd groups configuration subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage lab configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.FilePath()
		if err != nil {
			return err
		}
		rendered, err := config.Render(cfg)
		if err != nil {
			return err
		}
		fmt.Println(SubtitleStyle.Render("# " + path))
		fmt.Print(rendered)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.WriteDefault()
		if err != nil {
			return err
		}
		fmt.Printf("%s Created %s\n", SuccessStyle.Render("✓"), PathStyle.Render(path))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
