// Package item holds the item subcommands: add, list, update, delete, clear
// and seed.
package item

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/database"
	"github.com/thenoetrevino/todo/internal/models"
)

// Commands returns every item subcommand
func Commands() []*cobra.Command {
	return []*cobra.Command{
		AddCmd(),
		ListCmd(),
		UpdateCmd(),
		DeleteCmd(),
		ClearCmd(),
		SeedCmd(),
	}
}

// openCLI initializes the CLI for cmd, reporting failures through formatter
func openCLI(cmd *cobra.Command, formatter *cli.OutputFormatter) (*cli.CLI, error) {
	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return nil, cli.Fail(formatter, cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	return cliInstance, nil
}

func closeCLI(cliInstance *cli.CLI) {
	if err := cliInstance.Close(); err != nil {
		slog.Error("Error closing CLI", "error", err)
	}
}

// storeFailure maps a store error to the matching exit code
func storeFailure(formatter *cli.OutputFormatter, code string, err error) error {
	switch {
	case errors.Is(err, database.ErrItemNotFound):
		return cli.Fail(formatter, cli.ExitNotFound, "ITEM_NOT_FOUND", err,
			"Use 'todo list' to see item ids")
	case errors.Is(err, database.ErrCorruptRow), errors.Is(err, models.ErrUnknownIconTag):
		return cli.Fail(formatter, cli.ExitDataErr, "CORRUPT_DATA", err, "")
	default:
		return cli.Fail(formatter, cli.ExitError, code, err, "")
	}
}

// parseIcon validates an icon flag, using fallback when it is empty
func parseIcon(formatter *cli.OutputFormatter, name string, fallback models.Icon) (models.Icon, error) {
	if name == "" {
		return fallback, nil
	}
	icon, err := models.ParseIcon(name)
	if err != nil {
		return 0, cli.Fail(formatter, cli.ExitValidation, "INVALID_ICON", err,
			"Valid icons are: square, done, event, privacy, trash")
	}
	return icon, nil
}

// lookupItem parses the --id flag and loads the item
func lookupItem(cmd *cobra.Command, formatter *cli.OutputFormatter, cliInstance *cli.CLI) (models.TodoItem, error) {
	rawID, _ := cmd.Flags().GetString("id")
	id, err := cli.ParseItemID(rawID)
	if err != nil {
		return models.TodoItem{}, cli.Fail(formatter, cli.ExitValidation, "INVALID_ID", err, "")
	}

	item, err := cliInstance.App.Store.Get(cmd.Context(), id)
	if err != nil {
		return models.TodoItem{}, storeFailure(formatter, "ITEM_FETCH_ERROR", err)
	}
	return item, nil
}

func markRequired(cmd *cobra.Command, name string) {
	if err := cmd.MarkFlagRequired(name); err != nil {
		slog.Error("Error marking flag as required", "flag", name, "error", err)
	}
}
