package cli

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/bucket/internal/model"
)

// resolveID accepts a full id or a unique prefix of one.
func resolveID(items []model.Item, arg string) (string, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return "", fmt.Errorf("%w: empty id", model.ErrInvalidInput)
	}
	var matches []string
	for _, it := range items {
		if it.ID == arg {
			return it.ID, nil
		}
		if strings.HasPrefix(it.ID, arg) {
			matches = append(matches, it.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("item %s: %w", arg, model.ErrNotFound)
	case 1:
		return matches[0], nil
	}
	return "", fmt.Errorf("%w: id prefix %q matches %d items", model.ErrInvalidInput, arg, len(matches))
}
