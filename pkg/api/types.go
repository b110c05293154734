package api

import "time"

// LogEntry is one recorded event. Timestamps are milliseconds since
// epoch to keep the wire format stable across import/export; DayKey is
// the local-calendar-day projection of Timestamp and is never edited
// independently of it.
type LogEntry struct {
	ID              string   `json:"id"`
	Timestamp       int64    `json:"timestamp"`
	DayKey          string   `json:"dayKey"`
	DurationMinutes int      `json:"durationMinutes,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	Note            string   `json:"note,omitempty"`
	CreatedAt       int64    `json:"createdAt"`
	UpdatedAt       int64    `json:"updatedAt"`
}

// Time returns the entry's moment of occurrence in loc.
func (e LogEntry) Time(loc *time.Location) time.Time {
	return time.UnixMilli(e.Timestamp).In(loc)
}

// Clone returns a plain deep copy, safe to hand to the persistence
// layer while the original keeps mutating.
func (e LogEntry) Clone() LogEntry {
	c := e
	c.Tags = append([]string(nil), e.Tags...)
	return c
}

// DayKeyOf projects t onto its calendar day in t's own location.
// The fixed-width YYYY-MM-DD format makes lexicographic order equal
// chronological order.
func DayKeyOf(t time.Time) string {
	return t.Format("2006-01-02")
}

// NewLogEntry builds an entry for the given moment; DayKey and the
// bookkeeping timestamps derive from at and now.
func NewLogEntry(id string, at, now time.Time, tags []string, durationMinutes int, note string) LogEntry {
	return LogEntry{
		ID:              id,
		Timestamp:       at.UnixMilli(),
		DayKey:          DayKeyOf(at),
		DurationMinutes: durationMinutes,
		Tags:            append([]string(nil), tags...),
		Note:            note,
		CreatedAt:       now.UnixMilli(),
		UpdatedAt:       now.UnixMilli(),
	}
}
