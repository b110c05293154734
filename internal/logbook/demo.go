package logbook

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/mithrel/lovelog/internal/badge"
	"github.com/mithrel/lovelog/internal/notify"
	"github.com/mithrel/lovelog/pkg/api"
)

// GenerateDemo produces one year of synthetic entries ending at now,
// bulk-inserts them, reloads, and reports how many badges the batch
// unlocked in a single aggregate notification. The frequency is biased
// toward zero or one entry per day, with a weekend boost and rare
// multi-tag outliers. Returns (entries generated, badges unlocked).
func (b *Book) GenerateDemo(ctx context.Context, rng *rand.Rand) (int, int, error) {
	before := badge.UnlockedSet(b.Badges())

	now := b.now().In(b.loc)
	start := time.Date(now.Year()-1, now.Month(), now.Day(), 0, 0, 0, 0, b.loc)

	var generated []api.LogEntry
	for d := start; !d.After(now); d = d.AddDate(0, 0, 1) {
		count := 0
		switch chance := rng.Float64(); {
		case chance > 0.98:
			count = 3
		case chance > 0.9:
			count = 2
		case chance > 0.7:
			count = 1
		}
		if wd := d.Weekday(); (wd == time.Saturday || wd == time.Sunday) && rng.Float64() > 0.5 {
			count++
		}

		for i := 0; i < count; i++ {
			at := time.Date(d.Year(), d.Month(), d.Day(), 8+rng.Intn(14), rng.Intn(60), 0, 0, b.loc)
			tags := []string{badge.DefaultTag}
			if at.Hour() < 10 {
				tags = append(tags, "Morning")
			}
			if rng.Float64() > 0.9 {
				tags = append(tags, "Vacation")
			}
			duration := 0
			if rng.Float64() > 0.5 {
				duration = 15 + rng.Intn(45)
			}
			generated = append(generated, api.NewLogEntry(uuid.NewString(), at, b.now(), tags, duration, ""))
		}
	}

	if err := b.store.BulkAdd(ctx, generated); err != nil {
		return 0, 0, fmt.Errorf("bulk add demo data: %w", err)
	}
	if err := b.Load(ctx); err != nil {
		return 0, 0, err
	}

	unlocked := len(badge.NewlyUnlocked(before, b.Badges()))
	if unlocked > 0 {
		b.sink.Notify(notify.Event{
			Title:   "Demo Data Generated",
			Message: fmt.Sprintf("Unlocked %d achievements!", unlocked),
			Icon:    "auto_awesome",
			Kind:    notify.KindAchievement,
		})
	}
	return len(generated), unlocked, nil
}
