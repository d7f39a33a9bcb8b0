package transfer

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/storage/jsonfile"
)

type importResult struct {
	File   string `json:"file"`
	Mode   string `json:"mode"`
	Boards int    `json:"boards"`
}

// ImportCmd returns the import command
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import boards from a local storage document",
		Long: `Import boards from a document written by 'kanban export' or copied from the
browser's local storage. By default the current boards are replaced; with
--merge only boards whose ID is not present yet are added.

Examples:
  kanban import backup.json
  kanban import browser-dump.json --merge
`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().Bool("merge", false, "Add missing boards instead of replacing all boards")
	cmd.Flags().Bool("force", false, "Skip confirmation when replacing")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	merge, _ := cmd.Flags().GetBool("merge")
	force, _ := cmd.Flags().GetBool("force")

	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		defer func() { _ = file.Close() }()

		incoming, err := jsonfile.Decode(file)
		if err != nil {
			if errors.Is(err, jsonfile.ErrUnsupportedVersion) {
				return err
			}
			return fmt.Errorf("%w: %s: %w", cli.ErrDataFormat, args[0], err)
		}

		result := importResult{File: args[0], Mode: "replace", Boards: len(incoming.Boards)}
		if merge {
			result.Mode = "merge"
			added, err := c.App.Store.MergeBoards(c.Ctx, *incoming)
			if err != nil {
				return err
			}
			result.Boards = added
		} else {
			current := c.App.Store.Snapshot()
			if len(current.Boards) > 0 && !force && !f.Quiet && !f.JSON {
				prompt := fmt.Sprintf("Replace %d existing board(s) with %d imported board(s)?", len(current.Boards), len(incoming.Boards))
				if !cli.Confirm(prompt) {
					fmt.Println("Cancelled")
					return nil
				}
			}
			if err := c.App.Store.ReplaceState(c.Ctx, *incoming); err != nil {
				return err
			}
		}

		if f.Quiet {
			return nil
		}
		if handled, err := f.Success("import", result); handled {
			return err
		}

		verb := "Replaced boards with"
		if merge {
			verb = "Merged"
		}
		fmt.Printf("✓ %s %d board(s) from %s\n", verb, result.Boards, result.File)
		return nil
	})
}
