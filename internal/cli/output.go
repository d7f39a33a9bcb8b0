package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Identifiable is implemented by payloads that can be reduced to a single ID in quiet mode
type Identifiable interface {
	GetID() string
}

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Success outputs successful operation result under key (e.g. "board", "tasks").
// Human-readable output is left to the caller, which knows the payload.
func (f *OutputFormatter) Success(key string, data any) (handled bool, err error) {
	if f.Quiet {
		if id, ok := data.(Identifiable); ok {
			fmt.Println(id.GetID())
		}
		return true, nil
	}

	if f.JSON {
		return true, json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			key:       data,
		})
	}

	return false, nil
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(os.Stderr, "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail prints err in the current mode and returns it wrapped with its exit code
func (f *OutputFormatter) Fail(err error) error {
	suggestion := ""
	var nf *NotFoundError
	if errors.As(err, &nf) {
		suggestion = nf.Hint()
	}
	if errors.Is(err, ErrNoActiveBoard) {
		suggestion = "kanban board use <board>"
	}

	if fmtErr := f.ErrorWithSuggestion(ErrorCode(err), err.Error(), suggestion); fmtErr != nil {
		return fmtErr
	}
	return &ExitStatusError{Code: ExitCode(err), Err: err}
}
