package aggregate

import (
	"time"

	"github.com/miguelofoliveir/pandafit-frontend/internal/model"
)

// HistoryFilter narrows history records. An empty Kind and a zero Date
// do not constrain anything.
type HistoryFilter struct {
	Kind model.HistoryKind
	Date Day
	// Location is used to get the calendar day of a completion, UTC if nil.
	Location *time.Location
}

func (f HistoryFilter) IsEmpty() bool {
	return f.Kind == "" && f.Date.IsZero()
}

func (f HistoryFilter) Match(r model.HistoryRecord) bool {
	if f.Kind != "" && r.Kind != f.Kind {
		return false
	}
	if !f.Date.IsZero() && DayOf(r.CompletedAt, f.Location) != f.Date {
		return false
	}
	return true
}

// FilterHistory keeps the records matching filter, in their original order.
// With an empty filter the input is returned as is.
func FilterHistory(records []model.HistoryRecord, filter HistoryFilter) []model.HistoryRecord {
	if filter.IsEmpty() {
		return records
	}

	filtered := make([]model.HistoryRecord, 0, len(records))
	for _, r := range records {
		if filter.Match(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
