package aggregate

import (
	"fmt"
	"time"
)

const dayLayout = "2006-01-02"

// Day is a calendar day, without time of day or zone.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf returns the calendar day t falls on in loc (UTC when loc is nil).
func DayOf(t time.Time, loc *time.Location) Day {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return Day{Year: y, Month: m, Day: d}
}

func ParseDay(s string) (Day, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return Day{}, fmt.Errorf("parse day [%s]: %w", s, err)
	}
	return DayOf(t, time.UTC), nil
}

func (d Day) IsZero() bool {
	return d == Day{}
}

// String returns the ISO form, e.g. 2024-03-09.
// ISO strings sort in chronological order.
func (d Day) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}
