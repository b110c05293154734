package logbook

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/lovelog/internal/db"
	"github.com/mithrel/lovelog/internal/notify"
	"github.com/mithrel/lovelog/pkg/api"
)

var tz = time.FixedZone("TST", 8*3600)

var errStoreDown = errors.New("store down")

// flakyStore wraps a Store and fails selected operations on demand.
type flakyStore struct {
	db.Store
	failAdd    bool
	failUpdate bool
	failDelete bool
}

func (f *flakyStore) Add(ctx context.Context, e api.LogEntry) error {
	if f.failAdd {
		return errStoreDown
	}
	return f.Store.Add(ctx, e)
}

func (f *flakyStore) Update(ctx context.Context, e api.LogEntry) error {
	if f.failUpdate {
		return errStoreDown
	}
	return f.Store.Update(ctx, e)
}

func (f *flakyStore) Delete(ctx context.Context, id string) error {
	if f.failDelete {
		return errStoreDown
	}
	return f.Store.Delete(ctx, id)
}

func newTestBook(t *testing.T, store db.Store, sink notify.Sink) *Book {
	t.Helper()
	b := New(store, Options{
		Sink:     sink,
		Location: tz,
		Now:      func() time.Time { return time.Date(2026, 6, 3, 12, 0, 0, 0, tz) },
	})
	require.NoError(t, b.Load(context.Background()))
	return b
}

func idSet(entries []api.LogEntry) map[string]struct{} {
	s := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		s[e.ID] = struct{}{}
	}
	return s
}

// seedWeekdays persists n entries on distinct weekday days, three days
// apart at noon, so count badges are the only ones near their targets.
func seedWeekdays(t *testing.T, store db.Store, n int) {
	t.Helper()
	d := time.Date(2026, 1, 5, 12, 0, 0, 0, tz)
	added := 0
	for added < n {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			e := api.NewLogEntry(fmt.Sprintf("seed-%d", added), d, d, nil, 0, "")
			require.NoError(t, store.Add(context.Background(), e))
			added++
		}
		d = d.AddDate(0, 0, 3)
	}
}

func TestAddKeepsNewestFirst(t *testing.T) {
	ctx := context.Background()
	b := newTestBook(t, db.NewMem(), nil)

	older := time.Date(2026, 6, 1, 9, 0, 0, 0, tz)
	newer := time.Date(2026, 6, 2, 9, 0, 0, 0, tz)
	_, err := b.Add(ctx, older, nil, 0, "")
	require.NoError(t, err)
	_, err = b.Add(ctx, newer, nil, 0, "")
	require.NoError(t, err)
	middle, err := b.Add(ctx, older.Add(time.Hour), nil, 0, "")
	require.NoError(t, err)

	entries := b.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, newer.UnixMilli(), entries[0].Timestamp)
	assert.Equal(t, middle.ID, entries[1].ID)
}

func TestAddAppliesDefaultTag(t *testing.T) {
	ctx := context.Background()
	b := newTestBook(t, db.NewMem(), nil)

	e, err := b.Add(ctx, time.Date(2026, 6, 1, 9, 0, 0, 0, tz), nil, 0, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Make Love"}, e.Tags)

	e, err = b.Add(ctx, time.Date(2026, 6, 1, 10, 0, 0, 0, tz), []string{"Custom"}, 0, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Custom"}, e.Tags)
}

func TestAddComputesDayKey(t *testing.T) {
	ctx := context.Background()
	b := newTestBook(t, db.NewMem(), nil)
	at := time.Date(2026, 6, 1, 23, 59, 0, 0, tz)
	e, err := b.Add(ctx, at, nil, 0, "")
	require.NoError(t, err)
	assert.Equal(t, "2026-06-01", e.DayKey)
}

func TestAddRollsBackOnPersistFailure(t *testing.T) {
	ctx := context.Background()
	mem := db.NewMem()
	seedWeekdays(t, mem, 3)
	fs := &flakyStore{Store: mem, failAdd: true}
	sink := &notify.Memory{}
	b := newTestBook(t, fs, sink)

	before := idSet(b.Entries())
	_, err := b.Add(ctx, time.Date(2026, 6, 1, 9, 0, 0, 0, tz), nil, 0, "")
	require.ErrorIs(t, err, errStoreDown)

	assert.Equal(t, before, idSet(b.Entries()), "collection equals pre-mutation state")
	assert.Empty(t, sink.Events, "no unlock events on a failed write")
}

func TestAddUnlockDiff(t *testing.T) {
	ctx := context.Background()
	mem := db.NewMem()
	seedWeekdays(t, mem, 9)
	sink := &notify.Memory{}
	b := newTestBook(t, mem, sink)

	// first_step is already unlocked at 9 entries; the 10th must
	// report getting_started only.
	_, err := b.Add(ctx, time.Date(2026, 6, 3, 12, 0, 0, 0, tz), nil, 0, "")
	require.NoError(t, err)

	require.Len(t, sink.Events, 1)
	assert.Equal(t, "Achievement Unlocked!", sink.Events[0].Title)
	assert.Equal(t, "Getting Started", sink.Events[0].Message)
	assert.Equal(t, notify.KindAchievement, sink.Events[0].Kind)
}

func TestUpdateRecomputesDayKey(t *testing.T) {
	ctx := context.Background()
	b := newTestBook(t, db.NewMem(), nil)
	e, err := b.Add(ctx, time.Date(2026, 6, 1, 9, 0, 0, 0, tz), nil, 0, "")
	require.NoError(t, err)

	e.Timestamp = time.Date(2026, 6, 5, 9, 0, 0, 0, tz).UnixMilli()
	e.DayKey = "stale"
	require.NoError(t, b.Update(ctx, e))

	got := b.Entries()[0]
	assert.Equal(t, "2026-06-05", got.DayKey)
}

func TestUpdateFailureIsLoggedNotRolledBack(t *testing.T) {
	ctx := context.Background()
	mem := db.NewMem()
	fs := &flakyStore{Store: mem}
	b := newTestBook(t, fs, nil)
	e, err := b.Add(ctx, time.Date(2026, 6, 1, 9, 0, 0, 0, tz), nil, 0, "original")
	require.NoError(t, err)

	fs.failUpdate = true
	e.Note = "edited"
	require.NoError(t, b.Update(ctx, e), "update failures are not propagated")

	// In-memory copy keeps the edit; persisted copy does not.
	assert.Equal(t, "edited", b.Entries()[0].Note)
	persisted, err := mem.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "original", persisted[0].Note)
}

func TestUpdateUnknownID(t *testing.T) {
	b := newTestBook(t, db.NewMem(), nil)
	err := b.Update(context.Background(), api.LogEntry{ID: "missing"})
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestDeleteRollsBackAtOriginalIndex(t *testing.T) {
	ctx := context.Background()
	mem := db.NewMem()
	seedWeekdays(t, mem, 4)
	fs := &flakyStore{Store: mem, failDelete: true}
	b := newTestBook(t, fs, nil)

	before := b.Entries()
	victim := before[2].ID
	err := b.Delete(ctx, victim)
	require.ErrorIs(t, err, errStoreDown)

	after := b.Entries()
	require.Len(t, after, len(before))
	assert.Equal(t, victim, after[2].ID, "reinserted at its original index")
}

func TestDeleteRemoves(t *testing.T) {
	ctx := context.Background()
	b := newTestBook(t, db.NewMem(), nil)
	e, err := b.Add(ctx, time.Date(2026, 6, 1, 9, 0, 0, 0, tz), nil, 0, "")
	require.NoError(t, err)

	require.NoError(t, b.Delete(ctx, e.ID))
	assert.Empty(t, b.Entries())
	assert.ErrorIs(t, b.Delete(ctx, e.ID), db.ErrNotFound)
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := newTestBook(t, db.NewMem(), nil)
	_, err := src.Add(ctx, time.Date(2026, 6, 1, 9, 0, 0, 0, tz), []string{"A"}, 30, "one")
	require.NoError(t, err)
	_, err = src.Add(ctx, time.Date(2026, 6, 2, 9, 0, 0, 0, tz), nil, 0, "two")
	require.NoError(t, err)

	data, err := src.Export()
	require.NoError(t, err)

	dst := newTestBook(t, db.NewMem(), nil)
	n, err := dst.Import(ctx, data, Merge)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, idSet(src.Entries()), idSet(dst.Entries()))
}

func TestImportRejectsNonArray(t *testing.T) {
	ctx := context.Background()
	mem := db.NewMem()
	seedWeekdays(t, mem, 2)
	b := newTestBook(t, mem, nil)

	_, err := b.Import(ctx, []byte(`{"id":"x"}`), Merge)
	require.ErrorIs(t, err, ErrInvalidImport)
	assert.Equal(t, 2, b.Len(), "nothing applied")
}

func TestImportOverwriteClearsFirst(t *testing.T) {
	ctx := context.Background()
	mem := db.NewMem()
	seedWeekdays(t, mem, 3)
	b := newTestBook(t, mem, nil)

	payload := []byte(`[{"id":"fresh","timestamp":1767427200000,"dayKey":"2026-01-03","createdAt":1767427200000,"updatedAt":1767427200000}]`)
	n, err := b.Import(ctx, payload, Overwrite)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	entries := b.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "fresh", entries[0].ID)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	mem := db.NewMem()
	seedWeekdays(t, mem, 3)
	b := newTestBook(t, mem, nil)

	require.NoError(t, b.Clear(ctx))
	assert.Zero(t, b.Len())
	persisted, err := mem.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestLoadFailureKeepsPreviousState(t *testing.T) {
	ctx := context.Background()
	mem := db.NewMem()
	seedWeekdays(t, mem, 2)
	fs := &getAllFailStore{Store: mem}
	b := newTestBook(t, fs, nil)
	require.Equal(t, 2, b.Len())

	fs.fail = true
	require.ErrorIs(t, b.Load(ctx), errStoreDown)
	assert.Equal(t, 2, b.Len(), "previous collection kept")
}

type getAllFailStore struct {
	db.Store
	fail bool
}

func (g *getAllFailStore) GetAll(ctx context.Context) ([]api.LogEntry, error) {
	if g.fail {
		return nil, errStoreDown
	}
	return g.Store.GetAll(ctx)
}
