package item

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/styles"
	"github.com/thenoetrevino/todo/internal/models"
)

// AddCmd returns the add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a to-do item",
		Long: `Add a new item to the to-do list.

Examples:
  # Simple item (human-readable output)
  todo add --task="Buy milk"

  # Pick an icon
  todo add --task="Dentist" --icon=event

  # Quiet mode for bash capture
  ITEM_ID=$(todo add --task="Buy milk" --quiet)
`,
		RunE: runAdd,
	}

	cmd.Flags().String("task", "", "Task text (required)")
	markRequired(cmd, "task")
	cmd.Flags().String("icon", "", "Icon: square, done, event, privacy, trash (defaults to config default_icon)")

	cli.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)

	task, _ := cmd.Flags().GetString("task")
	iconName, _ := cmd.Flags().GetString("icon")

	if err := models.ValidateTask(task); err != nil {
		return cli.Fail(formatter, cli.ExitValidation, "EMPTY_TASK", err, "Give the item some text with --task")
	}

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	icon, err := parseIcon(formatter, iconName, cliInstance.App.Config.Icon())
	if err != nil {
		return err
	}

	item := models.NewTodoItem(task, icon)
	if err := cliInstance.App.Repo.AddItem(ctx, item); err != nil {
		return storeFailure(formatter, "ITEM_CREATE_ERROR", err)
	}

	// Output based on mode (JSON/Quiet/Human)
	if formatter.Quiet {
		return formatter.Success(item)
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"item":    item,
		})
	}

	fmt.Printf("%s Added %s\n", styles.SuccessStyle.Render("✓"), styles.RenderItem(item))
	return nil
}
