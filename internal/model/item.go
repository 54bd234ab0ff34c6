package model

import (
	"fmt"
	"strings"
	"time"
)

// Item is the domain model for a list entry.
// ID is assigned once by the store and never changes.
type Item struct {
	ID        string    `json:"id" yaml:"id"`
	Text      string    `json:"text" yaml:"text"`
	Notes     string    `json:"notes" yaml:"notes,omitempty"`
	Category  string    `json:"category" yaml:"category,omitempty"`
	Priority  Priority  `json:"priority" yaml:"priority,omitempty"`
	DueDate   Date      `json:"dueDate" yaml:"dueDate,omitempty"`
	Completed bool      `json:"completed" yaml:"completed"`
	Created   time.Time `json:"created" yaml:"created"`
}

// Fields are the user-supplied parts of a new item.
type Fields struct {
	Text     string
	Notes    string
	Category string
	Priority Priority
	DueDate  Date
}

type Priority string

const (
	PriorityNone   Priority = ""
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists the selectable priorities, lowest first.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return PriorityNone, fmt.Errorf("%w: priority %q (want low, medium or high)", ErrInvalidInput, s)
	}
	return p, nil
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityNone, PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Label is the badge text: "High", "Low", ...
func (p Priority) Label() string {
	if p == PriorityNone {
		return ""
	}
	s := string(p)
	return strings.ToUpper(s[:1]) + s[1:]
}
