package item

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/styles"
)

// ClearCmd returns the clear subcommand
func ClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every item",
		Long:  "Delete every item (requires confirmation unless --force, --json or --quiet).",
		Args:  cobra.NoArgs,
		RunE:  runClear,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")

	cli.AddOutputFlags(cmd, "Minimal output")

	return cmd
}

func runClear(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)
	force, _ := cmd.Flags().GetBool("force")

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	items, err := cliInstance.App.Store.GetAll(ctx)
	if err != nil {
		return storeFailure(formatter, "ITEM_FETCH_ERROR", err)
	}

	// Ask for confirmation unless forced or scripted
	if !force && !formatter.Quiet && !formatter.JSON {
		fmt.Printf("Delete all %d items? (y/N): ", len(items))
		var response string
		if _, err := fmt.Scanln(&response); err != nil {
			slog.Debug("no confirmation read", "error", err)
		}
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cliInstance.App.Repo.Clear(ctx); err != nil {
		return storeFailure(formatter, "CLEAR_ERROR", err)
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"deleted": len(items),
		})
	}

	fmt.Printf("%s Deleted %d items\n", styles.SuccessStyle.Render("✓"), len(items))
	return nil
}
