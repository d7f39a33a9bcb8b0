package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/thenoetrevino/kanban/internal/models"
)

// ErrAmbiguousRef is returned when a reference matches more than one entity
var ErrAmbiguousRef = errors.New("ambiguous reference")

// ErrNoActiveBoard is returned when a board-scoped command has no --board and no board is active
var ErrNoActiveBoard = errors.New("no active board (create one with 'kanban board create' or pass --board)")

// NotFoundError reports an unresolved reference, with the closest title when one is near
type NotFoundError struct {
	Kind       string
	Ref        string
	Suggestion string
	err        error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Ref)
}

func (e *NotFoundError) Unwrap() error {
	return e.err
}

// Hint returns a human suggestion, or "" when nothing is close
func (e *NotFoundError) Hint() string {
	if e.Suggestion == "" {
		return ""
	}
	return fmt.Sprintf("did you mean %q?", e.Suggestion)
}

type candidate struct {
	id    string
	title string
}

// match resolves ref against candidates: exact ID, then case-insensitive
// title, then unique ID prefix. It returns the index of the match.
func match(kind, ref string, candidates []candidate, notFound error) (int, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return -1, fmt.Errorf("%w: empty %s reference", ErrUsage, kind)
	}

	for i, c := range candidates {
		if c.id == ref {
			return i, nil
		}
	}

	var byTitle []int
	for i, c := range candidates {
		if strings.EqualFold(c.title, ref) {
			byTitle = append(byTitle, i)
		}
	}
	if len(byTitle) == 1 {
		return byTitle[0], nil
	}
	if len(byTitle) > 1 {
		return -1, fmt.Errorf("%w: %d %ss are titled %q, use an ID", ErrAmbiguousRef, len(byTitle), kind, ref)
	}

	var byPrefix []int
	for i, c := range candidates {
		if strings.HasPrefix(c.id, ref) {
			byPrefix = append(byPrefix, i)
		}
	}
	if len(byPrefix) == 1 {
		return byPrefix[0], nil
	}
	if len(byPrefix) > 1 {
		return -1, fmt.Errorf("%w: ID prefix %q matches %d %ss", ErrAmbiguousRef, ref, len(byPrefix), kind)
	}

	return -1, &NotFoundError{
		Kind:       kind,
		Ref:        ref,
		Suggestion: closest(ref, candidates),
		err:        notFound,
	}
}

// closest returns the title nearest to ref by edit distance, or "" when every
// title is too far away to be a plausible typo.
func closest(ref string, candidates []candidate) string {
	best, bestDist := "", -1
	needle := strings.ToLower(ref)
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(needle, strings.ToLower(c.title))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c.title, d
		}
	}

	limit := len([]rune(ref)) / 2
	if limit < 2 {
		limit = 2
	}
	if bestDist < 0 || bestDist > limit {
		return ""
	}
	return best
}

// ResolveBoard finds a board by ID, ID prefix or title
func ResolveBoard(state *models.State, ref string) (*models.Board, error) {
	cands := make([]candidate, len(state.Boards))
	for i, b := range state.Boards {
		cands[i] = candidate{id: b.ID, title: b.Title}
	}
	i, err := match("board", ref, cands, models.ErrBoardNotFound)
	if err != nil {
		return nil, err
	}
	return &state.Boards[i], nil
}

// BoardOrActive resolves ref, or returns the active board when ref is empty
func BoardOrActive(state *models.State, ref string) (*models.Board, error) {
	if strings.TrimSpace(ref) != "" {
		return ResolveBoard(state, ref)
	}
	b, ok := state.Active()
	if !ok {
		return nil, ErrNoActiveBoard
	}
	return b, nil
}

// ResolveColumn finds a column of board by ID, ID prefix or title
func ResolveColumn(board *models.Board, ref string) (*models.Column, error) {
	cands := make([]candidate, len(board.Columns))
	for i, c := range board.Columns {
		cands[i] = candidate{id: c.ID, title: c.Title}
	}
	i, err := match("column", ref, cands, models.ErrColumnNotFound)
	if err != nil {
		return nil, err
	}
	return &board.Columns[i], nil
}

// ResolveTask finds a task anywhere on board and returns it with its column
func ResolveTask(board *models.Board, ref string) (*models.Column, *models.Task, error) {
	type loc struct{ col, task int }
	var cands []candidate
	var locs []loc
	for ci, c := range board.Columns {
		for ti, t := range c.Tasks {
			cands = append(cands, candidate{id: t.ID, title: t.Title})
			locs = append(locs, loc{ci, ti})
		}
	}
	i, err := match("task", ref, cands, models.ErrTaskNotFound)
	if err != nil {
		return nil, nil, err
	}
	col := &board.Columns[locs[i].col]
	return col, &col.Tasks[locs[i].task], nil
}
