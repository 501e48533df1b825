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

const maxSeedCount = 1000

// SeedCmd returns the seed subcommand
func SeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Add random items",
		Long: `Add randomly generated items, useful for trying out the list view.

Examples:
  todo seed
  todo seed --count=50
`,
		Args: cobra.NoArgs,
		RunE: runSeed,
	}

	cmd.Flags().Int("count", 10, fmt.Sprintf("Number of items to add (1-%d)", maxSeedCount))

	cli.AddOutputFlags(cmd, "Minimal output (IDs only)")

	return cmd
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)

	count, _ := cmd.Flags().GetInt("count")
	if count < 1 || count > maxSeedCount {
		return cli.Fail(formatter, cli.ExitValidation, "INVALID_COUNT",
			fmt.Errorf("count must be between 1 and %d, got %d", maxSeedCount, count), "")
	}

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	items := make([]models.TodoItem, count)
	for i := range items {
		items[i] = models.RandomTodoItem()
	}

	if err := cliInstance.App.Store.InsertAll(ctx, items); err != nil {
		return storeFailure(formatter, "SEED_ERROR", err)
	}

	if formatter.Quiet {
		return formatter.Success(items)
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"count":   len(items),
			"items":   items,
		})
	}

	fmt.Printf("%s Added %d random items\n", styles.SuccessStyle.Render("✓"), len(items))
	return nil
}
