package model

import (
	"github.com/goccy/go-json"

	"github.com/idilsaglam/bucket/internal/debug"
)

// looseItem is the fallback shape for an element whose clock or date fields
// do not decode. The fields kept are the ones the list cannot lose.
type looseItem struct {
	ID        string   `json:"id"`
	Text      string   `json:"text"`
	Notes     string   `json:"notes"`
	Category  string   `json:"category"`
	Priority  Priority `json:"priority"`
	Completed bool     `json:"completed"`
}

// DecodeList parses a list document. A document that is not a JSON array is
// an empty list. Inside an array each element is decoded on its own: one
// with a bad field keeps its other fields, and only an element that is not
// an object at all is dropped.
func DecodeList(b []byte) []Item {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		debug.Log("model: ignoring non-array document: %v", err)
		return []Item{}
	}
	items := make([]Item, 0, len(raw))
	for i, r := range raw {
		var it Item
		err := json.Unmarshal(r, &it)
		if err == nil {
			items = append(items, it)
			continue
		}
		debug.Log("model: element %d: %v", i, err)
		var li looseItem
		if err := json.Unmarshal(r, &li); err != nil {
			debug.Log("model: dropping element %d: %v", i, err)
			continue
		}
		items = append(items, Item{
			ID:        li.ID,
			Text:      li.Text,
			Notes:     li.Notes,
			Category:  li.Category,
			Priority:  li.Priority,
			Completed: li.Completed,
		})
	}
	return items
}
