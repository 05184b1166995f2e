// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"datalab-cli/internal/issue"
	"datalab-cli/pkg/backup"
	"datalab-cli/pkg/labmod"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	backupCode    bool
	backupData    bool
	backupExclude []string
)

// backupCmd archives module directories into a timestamped ZIP file.
var backupCmd = &cobra.Command{
	Use:   "backup [<name>] [<target_dir>]",
	Short: "Archive modules into a timestamped ZIP file",
	Long: `Write a ZIP snapshot of the project's module directories into the
target directory. With a module name, only that module is archived;
otherwise all modules are included. Archive entries are stored relative to
the project root, so extracting inside a project root restores the
modules/ and data/ layout in place.

The target directory may be omitted when backup.dir is set in the config
file.

Examples:
  lab backup ./backups              Archive all modules
  lab backup sales ./backups        Archive only the 'sales' module
  lab backup sales ./backups --data Archive only sales' data directory
  lab backup ./backups --exclude 'data/*/*.tmp'`,
	Args: cobra.RangeArgs(0, 2),
	RunE: runBackup,
}

func init() {
	backupCmd.Flags().BoolVarP(&backupCode, "code", "c", false, "archive code directories only")
	backupCmd.Flags().BoolVarP(&backupData, "data", "d", false, "archive data directories only")
	backupCmd.Flags().StringArrayVar(&backupExclude, "exclude", nil, "glob pattern to exclude (repeatable, matched against archive paths)")
	backupCmd.MarkFlagsMutuallyExclusive("code", "data")
}

// backupArgs splits the optional positional arguments into module name and
// target directory. One argument is always the target; a module name can
// only be given together with a target unless backup.dir is configured.
func backupArgs(args []string) (module, target string, err error) {
	switch len(args) {
	case 2:
		module, target = args[0], args[1]
	case 1:
		target = args[0]
	}
	if target == "" {
		target = cfg.Backup.Dir
	}
	if target == "" {
		return "", "", issue.NewErrorContext().
			WithOperation("resolve backup target").
			WithSuggestion("Pass a target directory: 'lab backup <target_dir>'").
			WithSuggestion("Or set backup.dir in the config file ('lab config init')").
			BuildError()
	}
	return module, target, nil
}

func runBackup(cmd *cobra.Command, args []string) error {
	module, target, err := backupArgs(args)
	if err != nil {
		return err
	}
	if module != "" {
		if err := labmod.ValidateName(module); err != nil {
			return err
		}
	}

	p, err := findProject()
	if err != nil {
		return err
	}

	scope := backup.ScopeBoth
	switch {
	case backupCode:
		scope = backup.ScopeCode
	case backupData:
		scope = backup.ScopeData
	}

	opts := backup.Options{
		Module:    module,
		Scope:     scope,
		TargetDir: target,
		Exclude:   append(append([]string{}, cfg.Backup.Exclude...), backupExclude...),
	}
	log.Debug("starting backup", "module", module, "scope", scope, "target", target)

	res, err := backup.Create(p, opts)
	if err != nil {
		switch {
		case errors.Is(err, backup.ErrSourceNotFound):
			return issue.NewErrorContext().
				WithOperation("back up module").
				WithResource(module).
				WithSuggestion("Run 'lab list' to see available modules").
				Wrap(err).
				BuildError()
		case errors.Is(err, backup.ErrTargetUnwritable):
			return issue.NewErrorContext().
				WithOperation("write backup archive").
				WithResource(target).
				WithSuggestion("Check that the target is a writable directory").
				Wrap(err).
				BuildError()
		default:
			return fmt.Errorf("failed to create backup: %w", err)
		}
	}

	fmt.Printf("%s Backup complete\n", SuccessStyle.Render("✓"))
	fmt.Printf("  Archive: %s\n", PathStyle.Render(res.ArchivePath))
	fmt.Printf("  Files: %d\n", res.Files)
	fmt.Printf("  Original size: %s\n", labmod.FormatSize(res.SourceSize))
	fmt.Printf("  Compressed size: %s\n", labmod.FormatSize(res.ArchiveSize))
	return nil
}
