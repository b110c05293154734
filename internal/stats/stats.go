// Package stats derives aggregates from a snapshot of log entries.
// Every function is pure: deterministic given the snapshot, the
// evaluation instant and a timezone. Day and hour extraction always
// use the observer's local timezone; callers pin a location in tests.
package stats

import (
	"sort"
	"strconv"
	"time"

	"github.com/mithrel/lovelog/pkg/api"
)

const dayKeyLayout = "2006-01-02"

// UniqueDays returns the distinct day keys present, sorted descending.
func UniqueDays(entries []api.LogEntry) []string {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		seen[e.DayKey] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(out)))
	return out
}

// CurrentStreak counts consecutive days with entries ending at the day
// of now, or the day before when today has none. A gap at both today
// and yesterday means the streak is broken and reads 0.
func CurrentStreak(entries []api.LogEntry, now time.Time) int {
	days := UniqueDays(entries)
	if len(days) == 0 {
		return 0
	}
	present := make(map[string]struct{}, len(days))
	for _, d := range days {
		present[d] = struct{}{}
	}

	check := now
	if _, ok := present[api.DayKeyOf(check)]; !ok {
		check = check.AddDate(0, 0, -1)
		if _, ok := present[api.DayKeyOf(check)]; !ok {
			return 0
		}
	}

	streak := 0
	for {
		if _, ok := present[api.DayKeyOf(check)]; !ok {
			break
		}
		streak++
		check = check.AddDate(0, 0, -1)
	}
	return streak
}

// LongestStreak scans the unique days newest-first and tracks the
// longest run of adjacent dates. Adjacency is a whole-day difference
// rounded to the nearest integer so daylight-saving drift of an hour
// either way still counts as one day.
func LongestStreak(entries []api.LogEntry) int {
	days := UniqueDays(entries)
	if len(days) == 0 {
		return 0
	}
	longest := 0
	run := 0
	var prev time.Time
	for i, d := range days {
		// Day keys parse at UTC midnight; only differences matter here.
		t, err := time.Parse(dayKeyLayout, d)
		if err != nil {
			continue
		}
		if i == 0 {
			run = 1
		} else {
			diff := prev.Sub(t).Hours() / 24
			if int(diff+0.5) == 1 {
				run++
			} else {
				if run > longest {
					longest = run
				}
				run = 1
			}
		}
		prev = t
	}
	if run > longest {
		longest = run
	}
	return longest
}

// TagHistogram maps each tag to the number of entries carrying it.
// An entry with N tags contributes once to each of the N counters;
// untagged entries contribute nothing.
func TagHistogram(entries []api.LogEntry) map[string]int {
	counts := make(map[string]int)
	for _, e := range entries {
		for _, t := range e.Tags {
			counts[t]++
		}
	}
	return counts
}

// MonthlyHistogram returns exactly 12 YYYY-MM keys for the given year,
// each holding the count of entries whose local-time year matches.
func MonthlyHistogram(entries []api.LogEntry, year int, loc *time.Location) map[string]int {
	counts := make(map[string]int, 12)
	for m := time.January; m <= time.December; m++ {
		counts[time.Date(year, m, 1, 0, 0, 0, 0, loc).Format("2006-01")] = 0
	}
	for _, e := range entries {
		t := e.Time(loc)
		if t.Year() != year {
			continue
		}
		counts[t.Format("2006-01")]++
	}
	return counts
}

// DailyMax is the largest number of entries recorded on any single day.
func DailyMax(entries []api.LogEntry) int {
	perDay := make(map[string]int, len(entries))
	max := 0
	for _, e := range entries {
		perDay[e.DayKey]++
		if perDay[e.DayKey] > max {
			max = perDay[e.DayKey]
		}
	}
	return max
}

// Years lists the distinct local-time years present, newest first.
// An empty collection still yields the year of now so callers always
// have a selectable year.
func Years(entries []api.LogEntry, now time.Time) []int {
	seen := make(map[int]struct{})
	for _, e := range entries {
		seen[e.Time(now.Location()).Year()] = struct{}{}
	}
	if len(entries) == 0 {
		seen[now.Year()] = struct{}{}
	}
	out := make([]int, 0, len(seen))
	for y := range seen {
		out = append(out, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

// Counters holds the windowed tallies computed in a single pass.
// MonthDays records "month-day" pairs present in the collection with a
// zero-indexed month, e.g. "1-14" for February 14.
type Counters struct {
	Weekend   int
	Night     int // local hour >=22 or <4, crossing midnight
	Early     int // local hour in [5,9)
	Marathon  int // durationMinutes > 45
	Quickie   int // durationMinutes < 15, zero meaning "not recorded"
	MonthDays map[string]struct{}
}

// HasMonthDay reports whether any entry fell on the given calendar
// date, with month zero-indexed.
func (c Counters) HasMonthDay(month, day int) bool {
	_, ok := c.MonthDays[MonthDayKey(month, day)]
	return ok
}

// MonthDayKey formats a zero-indexed month and a day of month.
func MonthDayKey(month, day int) string {
	return strconv.Itoa(month) + "-" + strconv.Itoa(day)
}

// Windows tallies all windowed counters over the snapshot.
func Windows(entries []api.LogEntry, loc *time.Location) Counters {
	c := Counters{MonthDays: make(map[string]struct{})}
	for _, e := range entries {
		t := e.Time(loc)
		h := t.Hour()

		c.MonthDays[MonthDayKey(int(t.Month())-1, t.Day())] = struct{}{}

		if wd := t.Weekday(); wd == time.Saturday || wd == time.Sunday {
			c.Weekend++
		}
		if h >= 22 || h < 4 {
			c.Night++
		}
		if h >= 5 && h < 9 {
			c.Early++
		}
		if e.DurationMinutes > 0 {
			if e.DurationMinutes > 45 {
				c.Marathon++
			}
			if e.DurationMinutes < 15 {
				c.Quickie++
			}
		}
	}
	return c
}
