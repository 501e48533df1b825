package item

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/styles"
)

// DeleteCmd returns the delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an item",
		Long:  "Delete an item by ID.",
		RunE:  runDelete,
	}

	cmd.Flags().String("id", "", "Item ID (required)")
	markRequired(cmd, "id")

	cli.AddOutputFlags(cmd, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	item, err := lookupItem(cmd, formatter, cliInstance)
	if err != nil {
		return err
	}

	if err := cliInstance.App.Repo.RemoveItem(ctx, item); err != nil {
		return storeFailure(formatter, "DELETE_ERROR", err)
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"item_id": item.ID,
		})
	}

	fmt.Printf("%s Deleted %s\n", styles.SuccessStyle.Render("✓"), styles.RenderItem(item))
	return nil
}
