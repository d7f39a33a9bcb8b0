package store

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/kanban/internal/models"
)

// MaxTitleLength bounds board, column and task titles
const MaxTitleLength = 100

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", models.ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return "", models.ErrTitleTooLong
	}
	return title, nil
}

func validatePriority(p models.Priority) (models.Priority, error) {
	return models.ParsePriority(string(p))
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

func lookupBoard(state *models.State, boardID string) (*models.Board, error) {
	b, ok := state.Board(boardID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrBoardNotFound, boardID)
	}
	return b, nil
}

func lookupColumn(state *models.State, boardID, columnID string) (*models.Board, *models.Column, error) {
	b, err := lookupBoard(state, boardID)
	if err != nil {
		return nil, nil, err
	}
	c, ok := b.Column(columnID)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", models.ErrColumnNotFound, columnID)
	}
	return b, c, nil
}
