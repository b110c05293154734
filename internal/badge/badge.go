// Package badge evaluates a declarative achievement table against the
// aggregates in internal/stats. Evaluation is stateless: every call
// recomputes the full table from the snapshot, so two evaluations over
// the same snapshot are identical and callers may diff unlocked sets
// across a mutation to find newly unlocked badges.
package badge

import (
	"time"

	"github.com/mithrel/lovelog/internal/stats"
	"github.com/mithrel/lovelog/pkg/api"
)

// Summary bundles the statistics a rule may draw its progress from.
// It is computed once per evaluation.
type Summary struct {
	Total         int
	LongestStreak int
	DailyMax      int
	Tags          map[string]int
	Windows       stats.Counters
}

// Summarize derives a Summary from the snapshot.
func Summarize(entries []api.LogEntry, loc *time.Location) Summary {
	return Summary{
		Total:         len(entries),
		LongestStreak: stats.LongestStreak(entries),
		DailyMax:      stats.DailyMax(entries),
		Tags:          stats.TagHistogram(entries),
		Windows:       stats.Windows(entries, loc),
	}
}

// Rule selects which aggregate feeds a badge's progress. Each variant
// carries exactly the parameters its evaluation needs.
type Rule interface {
	progress(s Summary) int
}

type countRule struct{}

// exactCountRule shares countRule's cumulative progress on purpose:
// the unlock check stays >= target, so the badge remains unlocked past
// the threshold even though its description says "exactly". Observed
// behavior, kept until product decides otherwise.
type exactCountRule struct{}

type streakRule struct{}

type dailyMaxRule struct{}

type tagRule struct{ tag string }

type weekendRule struct{}

// windowRule covers the fixed time-of-day windows. The early window is
// [startHour, endHour); the night window crosses midnight and is
// counted separately in stats.
type windowRule struct {
	startHour, endHour int
	night              bool
}

type durationRule struct {
	minutes int
	over    bool
}

// dateRule matches a calendar date; month is zero-indexed to match the
// wire format of the month-day set.
type dateRule struct{ month, day int }

func (countRule) progress(s Summary) int      { return s.Total }
func (exactCountRule) progress(s Summary) int { return s.Total }
func (streakRule) progress(s Summary) int     { return s.LongestStreak }
func (dailyMaxRule) progress(s Summary) int   { return s.DailyMax }
func (r tagRule) progress(s Summary) int      { return s.Tags[r.tag] }
func (weekendRule) progress(s Summary) int    { return s.Windows.Weekend }

func (r windowRule) progress(s Summary) int {
	if r.night {
		return s.Windows.Night
	}
	return s.Windows.Early
}

func (r durationRule) progress(s Summary) int {
	if r.over {
		return s.Windows.Marathon
	}
	return s.Windows.Quickie
}

func (r dateRule) progress(s Summary) int {
	if s.Windows.HasMonthDay(r.month, r.day) {
		return 1
	}
	return 0
}

// Def is one badge definition: static, process-wide, never persisted.
// Secret badges are hidden in listings until unlocked; evaluation does
// not treat them differently.
type Def struct {
	ID     string
	Name   string
	Desc   string
	Icon   string
	Target int
	Secret bool
	Rule   Rule
}

// Result is the ephemeral evaluation of one badge.
type Result struct {
	Def
	Progress int
	Unlocked bool
}

// Evaluate maps the whole table over the snapshot, order-preserving,
// locked badges included.
func Evaluate(defs []Def, entries []api.LogEntry, loc *time.Location) []Result {
	sum := Summarize(entries, loc)
	out := make([]Result, 0, len(defs))
	for _, d := range defs {
		p := d.Rule.progress(sum)
		out = append(out, Result{Def: d, Progress: p, Unlocked: p >= d.Target})
	}
	return out
}

// UnlockedSet collects the ids of unlocked badges.
func UnlockedSet(results []Result) map[string]struct{} {
	set := make(map[string]struct{})
	for _, r := range results {
		if r.Unlocked {
			set[r.ID] = struct{}{}
		}
	}
	return set
}

// NewlyUnlocked returns the results unlocked now but absent from the
// before set, in table order.
func NewlyUnlocked(before map[string]struct{}, after []Result) []Result {
	var out []Result
	for _, r := range after {
		if !r.Unlocked {
			continue
		}
		if _, ok := before[r.ID]; ok {
			continue
		}
		out = append(out, r)
	}
	return out
}
