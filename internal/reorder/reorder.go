// Package reorder maps a position inside one category back onto the single
// global item sequence.
//
// The view only ever shows items grouped by category, so a move is expressed
// as "put item X at index k among the items of its category". Move realises
// that on the flat sequence while leaving the relative order of every other
// category untouched.
package reorder

import (
	"fmt"

	"github.com/idilsaglam/bucket/internal/debug"
	"github.com/idilsaglam/bucket/internal/model"
)

// Drop is the semantic outcome of a drag or keyboard move.
type Drop struct {
	ID       string
	Category string
	Index    int // 0-based, counting only items of Category
}

// Move returns a new sequence with the dropped item at d.Index within its
// category. seq is never modified.
//
// The item is removed, then re-inserted right after the d.Index-th remaining
// item of the same category (before the first one when d.Index is 0). An index
// past the end appends to the group; a category with no other items puts the
// item at the front.
func Move(seq []model.Item, d Drop) ([]model.Item, error) {
	from := indexOf(seq, d.ID)
	if from < 0 {
		return seq, fmt.Errorf("move %s: %w", d.ID, model.ErrNotFound)
	}
	moved := seq[from]
	if moved.Category != d.Category {
		return seq, fmt.Errorf("move %s: %w: item is in %q, not %q",
			d.ID, model.ErrInvalidInput, moved.Category, d.Category)
	}

	rest := make([]model.Item, 0, len(seq))
	rest = append(rest, seq[:from]...)
	rest = append(rest, seq[from+1:]...)

	at := insertionIndex(rest, moved.Category, d.Index)
	debug.Log("reorder: %s from global %d to global %d (k=%d)", d.ID, from, at, d.Index)

	out := make([]model.Item, 0, len(seq))
	out = append(out, rest[:at]...)
	out = append(out, moved)
	out = append(out, rest[at:]...)
	return out, nil
}

func insertionIndex(rest []model.Item, category string, k int) int {
	if k < 0 {
		k = 0
	}
	at, seen := 0, 0
	for i, it := range rest {
		if it.Category != category {
			continue
		}
		if k == 0 {
			return i
		}
		seen++
		at = i + 1
		if seen == k {
			break
		}
	}
	return at
}

// Position reports the 0-based index of id among the items of its category
// and how many items that category holds.
func Position(seq []model.Item, id string) (index, count int, ok bool) {
	from := indexOf(seq, id)
	if from < 0 {
		return 0, 0, false
	}
	category := seq[from].Category
	for i, it := range seq {
		if it.Category != category {
			continue
		}
		if i == from {
			index = count
		}
		count++
	}
	return index, count, true
}

// Within returns the items of category in sequence order.
func Within(seq []model.Item, category string) []model.Item {
	var out []model.Item
	for _, it := range seq {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out
}

func indexOf(seq []model.Item, id string) int {
	for i := range seq {
		if seq[i].ID == id {
			return i
		}
	}
	return -1
}
