package huhforms

import (
	"errors"
	"strings"

	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/store"
)

// ValidateTitle rejects blank and overly long titles
func ValidateTitle(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("title is required")
	}
	if len([]rune(s)) > store.MaxTitleLength {
		return errors.New("title is too long")
	}
	return nil
}

// ValidateDueDate accepts an empty string or a YYYY-MM-DD date
func ValidateDueDate(s string) error {
	if _, err := models.ParseDueDate(s); err != nil {
		return errors.New("use YYYY-MM-DD")
	}
	return nil
}

// ValidateColor accepts a #RRGGBB color or an empty string
func ValidateColor(s string) error {
	if err := models.ValidateColor(strings.TrimSpace(s)); err != nil {
		return errors.New("use #RRGGBB")
	}
	return nil
}
