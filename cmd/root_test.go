package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/storage/jsonfile"
	"github.com/thenoetrevino/kanban/internal/testutil"
	testcli "github.com/thenoetrevino/kanban/internal/testutil/cli"
)

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	root := NewRootCmd()

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"board", "column", "task", "export", "import"} {
		assert.Contains(t, names, want)
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("storage"))
	assert.NotNil(t, root.PersistentFlags().Lookup("data-dir"))
}

func TestRootCmd_RunsSubcommandAgainstApp(t *testing.T) {
	a := testcli.SetupCLITest(t)

	output, err := testcli.ExecuteCLICommand(t, a, NewRootCmd(), []string{"board", "create", "Work", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "id-1", strings.TrimSpace(output))

	board, ok := a.Store.ActiveBoard()
	require.True(t, ok)
	assert.Equal(t, "Work", board.Title)
}

func TestRootCmd_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"board", "list", "--bogus"}},
		{"missing argument", []string{"board", "delete"}},
		{"too many arguments", []string{"task", "show", "a", "b"}},
		{"stray root argument", []string{"boards"}},
		{"required flag", []string{"task", "move", "x"}},
		{"flag group needs one", []string{"task", "reorder", "x"}},
		{"exclusive flags", []string{"task", "reorder", "x", "--up", "--down"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := testcli.SetupCLITest(t)
			root := NewRootCmd()
			testutil.SetupCobraCommand(root, tt.args)

			var err error
			testutil.CaptureOutput(t, func() {
				err = execute(cli.WithApp(context.Background(), a), root)
			})
			require.Error(t, err)
			assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
		})
	}
}

func TestExecute_CommandFailureKeepsExitCode(t *testing.T) {
	a := testcli.SetupCLITest(t)
	root := NewRootCmd()
	testutil.SetupCobraCommand(root, []string{"board", "delete", "missing", "--force", "--json"})

	var err error
	testutil.CaptureOutput(t, func() {
		err = execute(cli.WithApp(context.Background(), a), root)
	})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}

func TestRootCmd_DataDirFlag(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("KANBAN_CONFIG", filepath.Join(dir, "missing.yaml"))
	dataDir := filepath.Join(dir, "data")

	root := NewRootCmd()
	testutil.SetupCobraCommand(root, []string{"--storage", "json", "--data-dir", dataDir, "board", "create", "Work", "--quiet"})

	var err error
	output := testutil.CaptureOutput(t, func() {
		err = root.ExecuteContext(context.Background())
	})
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(output))

	data, err := os.ReadFile(filepath.Join(dataDir, jsonfile.FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Work"`)
}
