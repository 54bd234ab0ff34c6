package model

import (
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestParsePriority(t *testing.T) {
	cases := map[string]Priority{
		"":       PriorityNone,
		"low":    PriorityLow,
		" HIGH ": PriorityHigh,
		"Medium": PriorityMedium,
	}
	for in, want := range cases {
		got, err := ParsePriority(in)
		if err != nil {
			t.Fatalf("ParsePriority(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParsePriority(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := ParsePriority("urgent"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPriorityLabel(t *testing.T) {
	if PriorityHigh.Label() != "High" || PriorityNone.Label() != "" {
		t.Fatalf("unexpected labels %q %q", PriorityHigh.Label(), PriorityNone.Label())
	}
}

func TestParseDate(t *testing.T) {
	now := time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC)

	d, err := ParseDate("2026-05-01", now)
	if err != nil || d.String() != "2026-05-01" {
		t.Fatalf("ParseDate iso: %v %q", err, d)
	}
	d, err = ParseDate("tomorrow", now)
	if err != nil || d.String() != "2026-03-05" {
		t.Fatalf("ParseDate tomorrow: %v %q", err, d)
	}
	d, err = ParseDate("  ", now)
	if err != nil || !d.IsZero() {
		t.Fatalf("expected zero date for blank input")
	}
	if _, err := ParseDate("zzz qqq", now); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestDateDisplay(t *testing.T) {
	if got := NewDate(2026, time.March, 4).Display(); got != "Mar 4, 2026" {
		t.Fatalf("got %q", got)
	}
	if (Date{}).Display() != "" {
		t.Fatalf("zero date should display empty")
	}
}

func TestItemDecodesListDocument(t *testing.T) {
	doc := `[
	  {"id":"1","text":"Visit Kyoto","notes":"spring","category":"Travel",
	   "priority":"high","dueDate":"2026-04-01","completed":false,
	   "created":"2026-01-02T03:04:05Z"},
	  {"id":"2","text":"Learn Go","category":"","priority":"","dueDate":"","completed":true},
	  {"id":"3","text":"Old","dueDate":null}
	]`
	var items []Item
	if err := json.Unmarshal([]byte(doc), &items); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].DueDate.String() != "2026-04-01" || items[0].Priority != PriorityHigh {
		t.Errorf("unexpected first item %+v", items[0])
	}
	if !items[1].DueDate.IsZero() || !items[1].Completed {
		t.Errorf("unexpected second item %+v", items[1])
	}
	if !items[2].DueDate.IsZero() {
		t.Errorf("null due date should decode as zero")
	}

	out, err := json.Marshal(items[1])
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var back map[string]any
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back["dueDate"] != "" {
		t.Errorf("expected empty dueDate string, got %v", back["dueDate"])
	}
}

func TestDateAcceptsTimestamp(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2026-04-01T15:00:00Z"`), &d); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if d.String() != "2026-04-01" {
		t.Fatalf("got %q", d)
	}
}

func TestDateIgnoresUnparseable(t *testing.T) {
	for _, in := range []string{`"03/04/2025"`, `"soon"`, `42`, `{}`} {
		d := NewDate(2026, time.January, 1)
		if err := json.Unmarshal([]byte(in), &d); err != nil {
			t.Fatalf("Unmarshal(%s): %v", in, err)
		}
		if !d.IsZero() {
			t.Fatalf("Unmarshal(%s): expected no date, got %q", in, d)
		}
	}
}

func TestDecodeListKeepsGoodElements(t *testing.T) {
	doc := `[
	  {"id":"a","text":"one","category":"Travel","created":"2026-01-02T03:04:05Z"},
	  {"id":"b","text":"two","dueDate":"03/04/2025"},
	  {"id":"c","text":"three","created":"","completed":true},
	  42,
	  {"id":"d","text":7}
	]`
	items := DecodeList([]byte(doc))
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d: %+v", len(items), items)
	}
	if items[0].ID != "a" || items[0].Created.Year() != 2026 {
		t.Errorf("unexpected first item %+v", items[0])
	}
	if items[1].ID != "b" || !items[1].DueDate.IsZero() {
		t.Errorf("bad due date should be dropped, not the item: %+v", items[1])
	}
	if items[2].ID != "c" || items[2].Text != "three" || !items[2].Completed || !items[2].Created.IsZero() {
		t.Errorf("bad created should be zeroed, not the item: %+v", items[2])
	}
}

func TestDecodeListNonArray(t *testing.T) {
	for _, doc := range []string{``, `null`, `{"items":[]}`, `garbage`} {
		items := DecodeList([]byte(doc))
		if items == nil || len(items) != 0 {
			t.Fatalf("DecodeList(%q): expected empty non-nil list, got %#v", doc, items)
		}
	}
}
