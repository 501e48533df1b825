package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/item"
	"github.com/thenoetrevino/todo/internal/launcher"
)

var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "todo - A terminal to-do list",
	Long: `todo keeps a to-do list in a local SQLite database.

Run without arguments to open the interactive list, or use the
subcommands to script it.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return launcher.Launch()
	},
}

func init() {
	rootCmd.AddCommand(item.Commands()...)

	// Bad flags are usage errors
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\nRun '%s --help' for usage.\n", err, cmd.CommandPath())
		return cli.Exit(cli.ExitUsage, err)
	})
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
