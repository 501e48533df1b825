package item

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/styles"
	"github.com/thenoetrevino/todo/internal/models"
)

// UpdateCmd returns the update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change an item's task or icon",
		Long: `Change the task text and/or icon of an existing item.

Examples:
  todo update --id=<id> --task="Buy oat milk"
  todo update --id=<id> --icon=done
`,
		RunE: runUpdate,
	}

	cmd.Flags().String("id", "", "Item ID (required)")
	markRequired(cmd, "id")
	cmd.Flags().String("task", "", "New task text")
	cmd.Flags().String("icon", "", "New icon: square, done, event, privacy, trash")

	cli.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)

	taskChanged := cmd.Flags().Changed("task")
	iconChanged := cmd.Flags().Changed("icon")
	if !taskChanged && !iconChanged {
		return cli.Fail(formatter, cli.ExitUsage, "NO_UPDATES",
			errors.New("nothing to update"), "Pass --task and/or --icon")
	}

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	item, err := lookupItem(cmd, formatter, cliInstance)
	if err != nil {
		return err
	}

	if taskChanged {
		task, _ := cmd.Flags().GetString("task")
		if err := models.ValidateTask(task); err != nil {
			return cli.Fail(formatter, cli.ExitValidation, "EMPTY_TASK", err, "")
		}
		item = item.WithTask(task)
	}

	if iconChanged {
		iconName, _ := cmd.Flags().GetString("icon")
		icon, err := models.ParseIcon(iconName)
		if err != nil {
			return cli.Fail(formatter, cli.ExitValidation, "INVALID_ICON", err,
				"Valid icons are: square, done, event, privacy, trash")
		}
		item = item.WithIcon(icon)
	}

	if err := cliInstance.App.Repo.UpdateItem(ctx, item); err != nil {
		return storeFailure(formatter, "ITEM_UPDATE_ERROR", err)
	}

	if formatter.Quiet {
		return formatter.Success(item)
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"item":    item,
		})
	}

	fmt.Printf("%s Updated %s\n", styles.SuccessStyle.Render("✓"), styles.RenderItem(item))
	return nil
}
