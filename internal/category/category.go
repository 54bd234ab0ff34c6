// Package category derives the grouped view of an item sequence.
package category

import (
	"strings"

	"github.com/idilsaglam/bucket/internal/model"
)

// Uncategorized is the synthetic group holding items without a category.
// It is always listed after the known labels.
const Uncategorized = "Uncategorized"

// DefaultLabels is the display precedence used when no labels are configured.
var DefaultLabels = []string{
	"Travel", "Career", "Learning", "Adventure", "Health", "Fun",
	"Bike", "Food", "Games", "Personal", "Other",
}

// Group is one category and its items in sequence order.
type Group struct {
	Label string
	Items []model.Item
}

// Partition groups items by the known labels, in label order, followed by
// Uncategorized. Groups without items are omitted, and so are items whose
// non-empty category is not a known label. items is not modified.
func Partition(items []model.Item, labels []string) []Group {
	byLabel := make(map[string][]model.Item, len(labels))
	var rest []model.Item
	for _, it := range items {
		if it.Category == "" {
			rest = append(rest, it)
			continue
		}
		byLabel[it.Category] = append(byLabel[it.Category], it)
	}

	groups := make([]Group, 0, len(labels)+1)
	seen := make(map[string]bool, len(labels))
	for _, l := range labels {
		if seen[l] {
			continue
		}
		seen[l] = true
		if its := byLabel[l]; len(its) > 0 {
			groups = append(groups, Group{Label: l, Items: its})
		}
	}
	if len(rest) > 0 {
		groups = append(groups, Group{Label: Uncategorized, Items: rest})
	}
	return groups
}

// GroupOf returns the group label an item is listed under.
func GroupOf(it model.Item) string {
	if it.Category == "" {
		return Uncategorized
	}
	return it.Category
}

// Known reports whether c is empty or one of labels.
func Known(labels []string, c string) bool {
	if c == "" {
		return true
	}
	for _, l := range labels {
		if l == c {
			return true
		}
	}
	return false
}

// Normalize trims labels and drops blanks, duplicates and the reserved
// Uncategorized label. An empty result falls back to DefaultLabels.
func Normalize(labels []string) []string {
	out := make([]string, 0, len(labels))
	seen := make(map[string]bool, len(labels))
	for _, l := range labels {
		l = strings.TrimSpace(l)
		if l == "" || l == Uncategorized || seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	if len(out) == 0 {
		return append([]string(nil), DefaultLabels...)
	}
	return out
}
