package view

import (
	"reflect"
	"testing"
	"time"

	"github.com/idilsaglam/bucket/internal/category"
	"github.com/idilsaglam/bucket/internal/model"
)

func sampleGroups() []category.Group {
	items := []model.Item{
		{ID: "1", Text: "Visit Kyoto", Category: "Travel", Priority: model.PriorityHigh,
			DueDate: model.NewDate(2026, time.April, 1), Notes: "cherry blossoms"},
		{ID: "2", Text: "Ramen tour", Category: "Food"},
		{ID: "3", Text: "Learn Go", Completed: true},
	}
	return category.Partition(items, category.DefaultLabels)
}

func TestProjectEmpty(t *testing.T) {
	tree := Project(nil, Expansion{})
	if !tree.Empty || len(tree.Sections) != 0 {
		t.Fatalf("expected empty tree, got %+v", tree)
	}
}

func TestProjectCollapsed(t *testing.T) {
	tree := Project(sampleGroups(), Expansion{})
	if tree.Empty {
		t.Fatalf("tree should not be empty")
	}
	var labels []string
	for _, s := range tree.Sections {
		labels = append(labels, s.Label)
		if s.Expanded || s.Rows != nil {
			t.Errorf("section %s should be collapsed without rows", s.Label)
		}
		if s.Count != 1 {
			t.Errorf("section %s count %d", s.Label, s.Count)
		}
	}
	if want := []string{"Travel", "Food", category.Uncategorized}; !reflect.DeepEqual(labels, want) {
		t.Fatalf("expected %v, got %v", want, labels)
	}
}

func TestProjectExpandedRow(t *testing.T) {
	e := Expansion{}
	e.Expand("Travel")
	tree := Project(sampleGroups(), e)

	travel := tree.Sections[0]
	if !travel.Expanded || len(travel.Rows) != 1 {
		t.Fatalf("expected expanded Travel with one row, got %+v", travel)
	}
	row := travel.Rows[0]
	wantBadges := []Badge{
		{Kind: BadgePriority, Class: "priority-high", Text: "High"},
		{Kind: BadgeDue, Class: "date", Text: "Apr 1, 2026"},
	}
	if !reflect.DeepEqual(row.Badges, wantBadges) {
		t.Fatalf("badges: want %+v, got %+v", wantBadges, row.Badges)
	}
	if row.Actions[0] != ActionNotes {
		t.Fatalf("expected notes action first, got %v", row.Actions)
	}
	if tree.Sections[1].Expanded {
		t.Fatalf("Food should stay collapsed")
	}
}

func TestRowWithoutExtras(t *testing.T) {
	tree := Project(sampleGroups(), All(sampleGroups()))
	row := tree.Sections[2].Rows[0]
	if !row.Completed || len(row.Badges) != 0 {
		t.Fatalf("unexpected row %+v", row)
	}
	want := []Action{ActionToggle, ActionEdit, ActionDelete, ActionMove}
	if !reflect.DeepEqual(row.Actions, want) {
		t.Fatalf("actions: want %v, got %v", want, row.Actions)
	}
}

func TestExpansionToggle(t *testing.T) {
	e := Expansion{}
	if !e.Toggle("Fun") || !e.Has("Fun") {
		t.Fatalf("expected Fun expanded")
	}
	if e.Toggle("Fun") || e.Has("Fun") {
		t.Fatalf("expected Fun collapsed")
	}
}
