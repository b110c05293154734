// Package logbook owns the in-memory entry collection and orchestrates
// mutations against the repository: optimistic apply, persist, rollback
// on failure, and unlock-diff notifications around the achievement
// table. The collection is kept sorted newest-first at all times.
package logbook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mithrel/lovelog/internal/badge"
	"github.com/mithrel/lovelog/internal/db"
	"github.com/mithrel/lovelog/internal/notify"
	"github.com/mithrel/lovelog/pkg/api"
)

// ErrInvalidImport marks a payload whose top level is not a JSON array.
// Nothing is applied when it is returned.
var ErrInvalidImport = errors.New("import payload must be a JSON array")

// ImportMode selects how imported entries combine with existing data.
type ImportMode int

const (
	// Merge adds entries without de-duplication by id; duplicate ids
	// are the caller's responsibility.
	Merge ImportMode = iota
	// Overwrite clears persisted and in-memory state first.
	Overwrite
)

// Options configures a Book. Zero values fall back to sensible
// defaults: nop logger, discard sink, local timezone, built-in badges.
type Options struct {
	Logger      *zap.Logger
	Sink        notify.Sink
	Location    *time.Location
	Defs        []badge.Def
	DefaultTags []string
	Now         func() time.Time
}

// Book is the single mutation entry point for the entry collection.
// Single-client use is assumed; Book itself is not safe for
// concurrent use.
type Book struct {
	store db.Store
	log   *zap.Logger
	sink  notify.Sink
	loc   *time.Location
	defs  []badge.Def
	tags  []string
	now   func() time.Time

	entries []api.LogEntry
}

// New builds a Book around the given store.
func New(store db.Store, opts Options) *Book {
	b := &Book{
		store: store,
		log:   opts.Logger,
		sink:  opts.Sink,
		loc:   opts.Location,
		defs:  opts.Defs,
		tags:  opts.DefaultTags,
		now:   opts.Now,
	}
	if b.log == nil {
		b.log = zap.NewNop()
	}
	if b.sink == nil {
		b.sink = notify.Discard
	}
	if b.loc == nil {
		b.loc = time.Local
	}
	if b.defs == nil {
		b.defs = badge.Defaults()
	}
	if len(b.tags) == 0 {
		b.tags = []string{badge.DefaultTag}
	}
	if b.now == nil {
		b.now = time.Now
	}
	return b
}

// Load replaces the collection with the persisted state. On failure
// the previous collection is kept and the error is logged and returned;
// there is no automatic retry.
func (b *Book) Load(ctx context.Context) error {
	entries, err := b.store.GetAll(ctx)
	if err != nil {
		b.log.Warn("load failed; keeping previous collection", zap.Error(err))
		return err
	}
	b.entries = entries
	b.sortNewestFirst()
	return nil
}

// Entries returns a snapshot copy of the collection, newest first.
func (b *Book) Entries() []api.LogEntry {
	out := make([]api.LogEntry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Len is the total entry count.
func (b *Book) Len() int { return len(b.entries) }

// Badges evaluates the full badge table against the current snapshot.
func (b *Book) Badges() []badge.Result {
	return badge.Evaluate(b.defs, b.entries, b.loc)
}

// Location is the timezone all day and hour projections use.
func (b *Book) Location() *time.Location { return b.loc }

// Add creates an entry at the given moment, applying the default tags
// when none are supplied. The insert is optimistic: on persistence
// failure the entry is removed again and the error propagates. On
// success one notification fires per newly unlocked badge.
func (b *Book) Add(ctx context.Context, at time.Time, tags []string, durationMinutes int, note string) (api.LogEntry, error) {
	before := badge.UnlockedSet(b.Badges())

	if len(tags) == 0 {
		tags = b.tags
	}
	e := api.NewLogEntry(uuid.NewString(), at.In(b.loc), b.now(), tags, durationMinutes, note)

	b.entries = append(b.entries, e)
	b.sortNewestFirst()

	if err := b.store.Add(ctx, e.Clone()); err != nil {
		b.removeByID(e.ID)
		return api.LogEntry{}, fmt.Errorf("persist entry: %w", err)
	}

	for _, r := range badge.NewlyUnlocked(before, b.Badges()) {
		b.sink.Notify(notify.Event{
			Title:   "Achievement Unlocked!",
			Message: r.Name,
			Icon:    r.Icon,
			Kind:    notify.KindAchievement,
		})
	}
	return e, nil
}

// Update replaces the entry with the same id. The day key is
// recomputed from the timestamp so the two can never drift apart, and
// a plain deep copy goes to the store. A persistence failure is logged
// but the in-memory copy is not rolled back, unlike create and delete.
func (b *Book) Update(ctx context.Context, e api.LogEntry) error {
	idx := b.indexOf(e.ID)
	if idx < 0 {
		return db.ErrNotFound
	}
	e.DayKey = api.DayKeyOf(e.Time(b.loc))
	e.UpdatedAt = b.now().UnixMilli()

	b.entries[idx] = e
	b.sortNewestFirst()

	if err := b.store.Update(ctx, e.Clone()); err != nil {
		b.log.Error("persist update failed; in-memory copy kept", zap.String("id", e.ID), zap.Error(err))
	}
	return nil
}

// Delete removes the entry by id. On persistence failure the removed
// entry is reinserted at its original index and the error propagates.
func (b *Book) Delete(ctx context.Context, id string) error {
	idx := b.indexOf(id)
	if idx < 0 {
		return db.ErrNotFound
	}
	removed := b.entries[idx]
	b.entries = append(b.entries[:idx], b.entries[idx+1:]...)

	if err := b.store.Delete(ctx, id); err != nil {
		b.entries = append(b.entries[:idx], append([]api.LogEntry{removed}, b.entries[idx:]...)...)
		return fmt.Errorf("persist delete: %w", err)
	}
	return nil
}

// Export serializes the snapshot as a pretty-printed JSON array.
func (b *Book) Export() ([]byte, error) {
	entries := b.entries
	if entries == nil {
		entries = []api.LogEntry{}
	}
	return json.MarshalIndent(entries, "", "  ")
}

// Import parses a serialized entry array and bulk-adds it. The whole
// batch is rejected before any mutation when the top level is not an
// array. A full reload afterwards guarantees the in-memory snapshot
// matches persisted truth. Returns the number of entries imported.
func (b *Book) Import(ctx context.Context, data []byte, mode ImportMode) (int, error) {
	if !startsWithArray(data) {
		return 0, ErrInvalidImport
	}
	var parsed []api.LogEntry
	if err := json.Unmarshal(data, &parsed); err != nil {
		return 0, fmt.Errorf("parse import: %w", err)
	}

	if mode == Overwrite {
		if err := b.store.Clear(ctx); err != nil {
			return 0, fmt.Errorf("clear before overwrite: %w", err)
		}
		b.entries = nil
	}
	if err := b.store.BulkAdd(ctx, parsed); err != nil {
		// The store may be partially mutated; the reload below still
		// reflects whatever was persisted.
		_ = b.Load(ctx)
		return 0, fmt.Errorf("bulk add: %w", err)
	}
	if err := b.Load(ctx); err != nil {
		return 0, err
	}
	return len(parsed), nil
}

// Clear wipes persisted and in-memory state.
func (b *Book) Clear(ctx context.Context) error {
	if err := b.store.Clear(ctx); err != nil {
		return err
	}
	b.entries = nil
	return nil
}

func (b *Book) sortNewestFirst() {
	sort.SliceStable(b.entries, func(i, j int) bool {
		return b.entries[i].Timestamp > b.entries[j].Timestamp
	})
}

func (b *Book) indexOf(id string) int {
	for i, e := range b.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (b *Book) removeByID(id string) {
	if idx := b.indexOf(id); idx >= 0 {
		b.entries = append(b.entries[:idx], b.entries[idx+1:]...)
	}
}

func startsWithArray(data []byte) bool {
	for _, c := range data {
		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		case '[':
			return true
		default:
			return false
		}
	}
	return false
}
