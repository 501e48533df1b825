package item

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/styles"
)

// ListCmd returns the list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List to-do items",
		Long: `List every item in the order it was added.

Examples:
  # Human-readable list
  todo list

  # JSON output for agents
  todo list --json

  # Quiet mode (one ID per line)
  todo list --quiet
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cli.AddOutputFlags(cmd, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	items, err := cliInstance.App.Store.GetAll(ctx)
	if err != nil {
		return storeFailure(formatter, "ITEM_FETCH_ERROR", err)
	}

	if formatter.JSON && !formatter.Quiet {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"count":   len(items),
			"items":   items,
		})
	}

	if !formatter.Quiet && len(items) > 0 {
		fmt.Println(styles.TitleStyle.Render(fmt.Sprintf("To-do (%d)", len(items))))
	}
	return formatter.Success(items)
}
