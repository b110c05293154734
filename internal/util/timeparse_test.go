package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAt(t *testing.T) {
	tz := time.FixedZone("TST", 8*3600)
	now := time.Date(2026, 3, 12, 15, 0, 0, 0, tz)

	t.Run("empty means now", func(t *testing.T) {
		got, err := ParseAt("", now)
		require.NoError(t, err)
		assert.Equal(t, now, got)
	})

	t.Run("relative shorthands", func(t *testing.T) {
		got, err := ParseAt("3d", now)
		require.NoError(t, err)
		assert.Equal(t, now.AddDate(0, 0, -3), got)

		got, err = ParseAt("2w", now)
		require.NoError(t, err)
		assert.Equal(t, now.AddDate(0, 0, -14), got)

		got, err = ParseAt("1mo", now)
		require.NoError(t, err)
		assert.Equal(t, now.AddDate(0, -1, 0), got)
	})

	t.Run("go durations keep m as minutes", func(t *testing.T) {
		got, err := ParseAt("90m", now)
		require.NoError(t, err)
		assert.Equal(t, now.Add(-90*time.Minute), got)
	})

	t.Run("absolute date reads in now's location", func(t *testing.T) {
		got, err := ParseAt("2026-03-01", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, tz).UnixMilli(), got.UnixMilli())
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := ParseAt("yesterday-ish", now)
		assert.Error(t, err)
	})
}
