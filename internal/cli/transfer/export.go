// Package transfer implements export and import of the board state in the
// browser's local storage format
package transfer

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/storage/jsonfile"
)

type exportResult struct {
	Path   string `json:"path"`
	Boards int    `json:"boards"`
	Tasks  int    `json:"tasks"`
}

func (r exportResult) GetID() string { return r.Path }

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export all boards as a local storage document",
		Long: `Export all boards in the {"state": ..., "version": 0} layout of the browser
build's local storage entry. Without a file the document is written to stdout.

Examples:
  kanban export backup.json
  kanban export > backup.json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runExport,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		state := c.App.Store.Snapshot()

		if len(args) == 0 {
			return jsonfile.Encode(os.Stdout, state)
		}

		target, err := jsonfile.Open(args[0])
		if err != nil {
			return err
		}
		if err := target.Save(c.Ctx, state); err != nil {
			return fmt.Errorf("export to %s: %w", args[0], err)
		}

		result := exportResult{Path: target.Path(), Boards: len(state.Boards)}
		for i := range state.Boards {
			result.Tasks += state.Boards[i].TaskCount()
		}
		if handled, err := f.Success("export", result); handled {
			return err
		}

		fmt.Printf("✓ Exported %d board(s) with %d task(s) to %s\n", result.Boards, result.Tasks, result.Path)
		return nil
	})
}
