// Package testutil holds helpers shared by the command and store tests
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/spf13/cobra"
)

// CaptureOutput runs fn with os.Stdout redirected into a pipe and returns what
// fn printed. Stdout is restored even if fn panics or calls t.FailNow.
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("creating stdout pipe: %v", err)
	}

	original := os.Stdout
	os.Stdout = w
	restore := func() {
		if os.Stdout == w {
			os.Stdout = original
			_ = w.Close()
		}
	}
	t.Cleanup(restore)

	captured := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		_ = r.Close()
		captured <- buf.String()
	}()

	func() {
		defer restore()
		fn()
	}()
	return <-captured
}

// ParseJSON decodes a JSON object printed by a --json command
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("output is not a JSON object: %v\n%s", err, output)
	}
	return result
}

// SetupCobraCommand sets args on cmd and silences cobra's own error and usage
// printing, leaving output to the command's formatter
func SetupCobraCommand(cmd *cobra.Command, args []string) {
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
}
