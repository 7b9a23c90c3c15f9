package token

import (
	"fmt"
	"strings"

	"quickcap/pkg/terrors"
)

func validateEmptyText(text string) error {
	if strings.TrimSpace(text) == "" {
		return terrors.ErrEmptyText
	}
	return nil
}

// caps are policy, not grammar: a zero or negative limit disables the check
func validateValueLimit(n, limit float64) error {
	if limit > 0 && n > limit {
		return fmt.Errorf("%w: value '%g' exceeds the cap '%g'", terrors.ErrValue, n, limit)
	}
	return nil
}

func validateEffortLimit(hours, limit float64) error {
	if limit > 0 && hours > limit {
		return fmt.Errorf("%w: effort '%g' hours exceeds the cap '%g'", terrors.ErrValue, hours, limit)
	}
	return nil
}
