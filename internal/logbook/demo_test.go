package logbook

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/lovelog/internal/db"
	"github.com/mithrel/lovelog/internal/notify"
	"github.com/mithrel/lovelog/pkg/api"
)

func TestGenerateDemo(t *testing.T) {
	ctx := context.Background()
	sink := &notify.Memory{}
	b := newTestBook(t, db.NewMem(), sink)

	n, unlocked, err := b.GenerateDemo(ctx, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	require.Equal(t, n, b.Len(), "collection reloaded from the store")
	require.Greater(t, n, 0, "a year at these frequencies produces entries")

	now := b.now().In(tz)
	yearAgo := now.AddDate(-1, 0, 0)
	for _, e := range b.Entries() {
		at := e.Time(tz)
		assert.False(t, at.After(now), "no future entries")
		assert.False(t, at.Before(yearAgo.Add(-24*time.Hour)), "window is one year")
		assert.Equal(t, api.DayKeyOf(at), e.DayKey)
		assert.NotEmpty(t, e.Tags)
	}

	// A year of data unlocks at least the count milestones; the batch
	// reports one aggregate notification, not one per badge.
	require.Greater(t, unlocked, 0)
	require.Len(t, sink.Events, 1)
	assert.Equal(t, "Demo Data Generated", sink.Events[0].Title)
	assert.Contains(t, sink.Events[0].Message, "achievements")
}

func TestGenerateDemoDeterministicWithSeed(t *testing.T) {
	ctx := context.Background()
	a := newTestBook(t, db.NewMem(), nil)
	b := newTestBook(t, db.NewMem(), nil)

	na, _, err := a.GenerateDemo(ctx, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	nb, _, err := b.GenerateDemo(ctx, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	assert.Equal(t, na, nb)
	// IDs are random; compare everything else as a multiset since ties
	// on timestamp have no defined order.
	assert.ElementsMatch(t, demoShape(a.Entries()), demoShape(b.Entries()))
}

func demoShape(entries []api.LogEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, fmt.Sprintf("%d|%v|%d", e.Timestamp, e.Tags, e.DurationMinutes))
	}
	return out
}
