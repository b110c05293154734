package badge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/lovelog/pkg/api"
)

var tz = time.FixedZone("TST", 8*3600)

func entryAt(t time.Time, duration int, tags ...string) api.LogEntry {
	return api.NewLogEntry("id-"+t.Format("20060102-150405.000"), t, t, tags, duration, "")
}

// spread returns n entries on distinct days three days apart, at noon
// on weekdays only, so no streak, daily-max, weekend or window badge
// can fire accidentally.
func spread(n int) []api.LogEntry {
	out := make([]api.LogEntry, 0, n)
	d := time.Date(2026, 1, 5, 12, 0, 0, 0, tz) // a Monday
	for len(out) < n {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			out = append(out, entryAt(d, 0))
		}
		d = d.AddDate(0, 0, 3)
	}
	return out
}

func byID(results []Result) map[string]Result {
	m := make(map[string]Result, len(results))
	for _, r := range results {
		m[r.ID] = r
	}
	return m
}

func TestEvaluateFullTable(t *testing.T) {
	defs := Defaults()
	results := Evaluate(defs, nil, tz)

	require.Len(t, results, len(defs), "always the full table, locked included")
	for i, r := range results {
		assert.Equal(t, defs[i].ID, r.ID, "order-preserving")
		assert.False(t, r.Unlocked)
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	entries := spread(12)
	a := Evaluate(Defaults(), entries, tz)
	b := Evaluate(Defaults(), entries, tz)
	assert.Equal(t, a, b)
}

func TestRuleDispatch(t *testing.T) {
	t.Run("count", func(t *testing.T) {
		r := byID(Evaluate(Defaults(), spread(10), tz))
		assert.True(t, r["first_step"].Unlocked)
		assert.True(t, r["getting_started"].Unlocked)
		assert.Equal(t, 10, r["getting_started"].Progress)
		assert.False(t, r["enthusiast"].Unlocked)
	})

	t.Run("streak uses longest, not current", func(t *testing.T) {
		// Three consecutive days far in the past: current streak is
		// long gone, the badge still counts.
		entries := []api.LogEntry{
			entryAt(time.Date(2020, 5, 1, 12, 0, 0, 0, tz), 0),
			entryAt(time.Date(2020, 5, 2, 12, 0, 0, 0, tz), 0),
			entryAt(time.Date(2020, 5, 3, 12, 0, 0, 0, tz), 0),
		}
		r := byID(Evaluate(Defaults(), entries, tz))
		assert.True(t, r["warming_up"].Unlocked)
		assert.Equal(t, 3, r["warming_up"].Progress)
	})

	t.Run("daily max", func(t *testing.T) {
		d := time.Date(2026, 1, 6, 10, 0, 0, 0, tz)
		entries := []api.LogEntry{
			entryAt(d, 0), entryAt(d.Add(time.Hour), 0), entryAt(d.Add(2*time.Hour), 0),
		}
		r := byID(Evaluate(Defaults(), entries, tz))
		assert.True(t, r["double_trouble"].Unlocked)
		assert.True(t, r["hat_trick"].Unlocked)
		assert.False(t, r["insatiable"].Unlocked)
	})

	t.Run("tag lookup missing tag is zero", func(t *testing.T) {
		r := byID(Evaluate(Defaults(), spread(3), tz))
		assert.Equal(t, 0, r["adventurer"].Progress)

		tagged := []api.LogEntry{entryAt(time.Date(2026, 1, 6, 12, 0, 0, 0, tz), 0, "Vacation")}
		r = byID(Evaluate(Defaults(), tagged, tz))
		assert.True(t, r["adventurer"].Unlocked)
	})

	t.Run("date match", func(t *testing.T) {
		feb14 := []api.LogEntry{entryAt(time.Date(2026, 2, 14, 12, 0, 0, 0, tz), 0)}
		r := byID(Evaluate(Defaults(), feb14, tz))
		assert.True(t, r["cupid"].Unlocked)
		assert.Equal(t, 1, r["cupid"].Progress)
		assert.False(t, r["new_year"].Unlocked)
	})

	t.Run("durations", func(t *testing.T) {
		var entries []api.LogEntry
		base := time.Date(2026, 1, 6, 12, 0, 0, 0, tz)
		for i := 0; i < 5; i++ {
			entries = append(entries, entryAt(base.Add(time.Duration(i)*time.Hour), 60))
		}
		r := byID(Evaluate(Defaults(), entries, tz))
		assert.True(t, r["marathon"].Unlocked)
		assert.Equal(t, 0, r["quickie"].Progress)
	})
}

// The exact-count badge keeps the cumulative >= check of the other
// count badges: it stays unlocked past its threshold even though the
// description says "exactly". Pinned here so a well-meaning fix shows
// up as a test failure first.
func TestExactCountStaysUnlockedPastTarget(t *testing.T) {
	r := byID(Evaluate(Defaults(), spread(43), tz))
	assert.True(t, r["the_answer"].Unlocked)
	assert.Equal(t, 43, r["the_answer"].Progress)
}

func TestSecretEvaluatesLikeAnyOther(t *testing.T) {
	results := Evaluate(Defaults(), spread(42), tz)
	r := byID(results)
	require.True(t, r["the_answer"].Secret)
	assert.True(t, r["the_answer"].Unlocked)
	// Secret is cosmetic: the result is present in the table either way.
	found := false
	for _, res := range results {
		if res.ID == "cupid" {
			found = true
			assert.False(t, res.Unlocked)
		}
	}
	assert.True(t, found)
}

func TestUnlockDiff(t *testing.T) {
	nine := spread(9)
	before := UnlockedSet(Evaluate(Defaults(), nine, tz))
	require.Contains(t, before, "first_step")
	require.NotContains(t, before, "getting_started")

	ten := append(nine, entryAt(time.Date(2026, 6, 3, 12, 0, 0, 0, tz), 0))
	newly := NewlyUnlocked(before, Evaluate(Defaults(), ten, tz))

	require.Len(t, newly, 1)
	assert.Equal(t, "getting_started", newly[0].ID)
}
