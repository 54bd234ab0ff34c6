package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"github.com/idilsaglam/bucket/internal/debug"
)

const (
	layoutISO     = "2006-01-02"
	layoutDisplay = "Jan 2, 2006"
)

// Date is a calendar day without a clock. The zero value means "no date" and
// encodes as an empty string, which is how the list document stores it.
type Date struct {
	time.Time
}

func NewDate(y int, m time.Month, d int) Date {
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(layoutISO)
}

// Display formats the date for badges, e.g. "Mar 4, 2026".
func (d Date) Display() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(layoutDisplay)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts "YYYY-MM-DD", an RFC 3339 timestamp, "" or null.
// Anything else decodes as no date, so one odd value never costs the item.
func (d *Date) UnmarshalJSON(b []byte) error {
	*d = Date{}
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		debug.Log("date: ignoring %s: %v", b, err)
		return nil
	}
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	t, err := time.Parse(layoutISO, v)
	if err != nil {
		// tolerate full timestamps written by other clients
		if t, err = time.Parse(time.RFC3339, v); err != nil {
			debug.Log("date: ignoring %q: %v", v, err)
			return nil
		}
	}
	*d = NewDate(t.Date())
	return nil
}

func (d Date) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

var dateParser = func() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}()

// ParseDate accepts "YYYY-MM-DD" or an English phrase such as "next friday",
// resolved relative to now. Empty input yields the zero Date.
func ParseDate(s string, now time.Time) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, nil
	}
	if t, err := time.Parse(layoutISO, s); err == nil {
		return NewDate(t.Date()), nil
	}
	r, err := dateParser.Parse(s, now)
	if err != nil {
		return Date{}, fmt.Errorf("%w: due date %q: %v", ErrInvalidInput, s, err)
	}
	if r == nil {
		return Date{}, fmt.Errorf("%w: due date %q", ErrInvalidInput, s)
	}
	return NewDate(r.Time.Date()), nil
}
