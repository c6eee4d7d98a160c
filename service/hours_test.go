package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	t.Run("valid clock", func(t *testing.T) {
		d, err := ParseClock("09:30")
		require.NoError(t, err)
		assert.Equal(t, 9*time.Hour+30*time.Minute, d)
	})

	t.Run("midnight", func(t *testing.T) {
		d, err := ParseClock("00:00")
		require.NoError(t, err)
		assert.Equal(t, time.Duration(0), d)
	})

	t.Run("invalid clock", func(t *testing.T) {
		_, err := ParseClock("9.30")
		assert.Error(t, err)
	})
}

func TestShiftDuration(t *testing.T) {
	t.Run("end after start has no wraparound", func(t *testing.T) {
		d, err := ShiftDuration("09:00", "17:00")
		require.NoError(t, err)
		assert.Equal(t, 8*time.Hour, d)
	})

	t.Run("end before start crosses midnight", func(t *testing.T) {
		d, err := ShiftDuration("22:00", "06:00")
		require.NoError(t, err)
		assert.Equal(t, 8*time.Hour, d)
	})

	t.Run("end equal to start is zero", func(t *testing.T) {
		d, err := ShiftDuration("08:00", "08:00")
		require.NoError(t, err)
		assert.Equal(t, time.Duration(0), d)
	})

	t.Run("overnight duration is never negative", func(t *testing.T) {
		pairs := [][2]string{
			{"23:59", "00:00"},
			{"18:00", "02:00"},
			{"12:00", "11:59"},
		}
		for _, pair := range pairs {
			d, err := ShiftDuration(pair[0], pair[1])
			require.NoError(t, err)
			assert.GreaterOrEqual(t, d, time.Duration(0))
		}
	})

	t.Run("invalid start time", func(t *testing.T) {
		_, err := ShiftDuration("25:00", "17:00")
		assert.Error(t, err)
	})
}

func TestSessionDuration(t *testing.T) {
	t.Run("open session contributes zero hours", func(t *testing.T) {
		d, err := SessionDuration("09:00", "")
		require.NoError(t, err)
		assert.Equal(t, time.Duration(0), d)
	})

	t.Run("closed session uses wraparound policy", func(t *testing.T) {
		d, err := SessionDuration("22:15", "06:15")
		require.NoError(t, err)
		assert.Equal(t, 8*time.Hour, d)
	})
}

func TestRoundHours(t *testing.T) {
	t.Run("rounds to two decimals", func(t *testing.T) {
		assert.Equal(t, 7.58, RoundHours(7*time.Hour+35*time.Minute))
		assert.Equal(t, 0.42, RoundHours(25*time.Minute))
		assert.Equal(t, 8.0, RoundHours(8*time.Hour))
	})

	t.Run("rounding once at the end avoids compounding error", func(t *testing.T) {
		// Tiga sesi 20 menit: dibulatkan per sesi 0.33*3 = 0.99,
		// dibulatkan sekali dari total = 1.00.
		total := 3 * (20 * time.Minute)
		assert.Equal(t, 1.0, RoundHours(total))
	})
}

func TestWorkingDays(t *testing.T) {
	t.Run("august 2026 skips saturdays and sundays", func(t *testing.T) {
		first := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		last := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

		days := WorkingDays(first, last)
		require.Len(t, days, 21)
		assert.Equal(t, "2026-08-03", days[0])
		assert.Equal(t, "2026-08-31", days[len(days)-1])
		assert.NotContains(t, days, "2026-08-01")
		assert.NotContains(t, days, "2026-08-02")
	})

	t.Run("single weekend day yields no working days", func(t *testing.T) {
		sunday := time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)
		assert.Empty(t, WorkingDays(sunday, sunday))
	})
}

func TestMonthRange(t *testing.T) {
	t.Run("february", func(t *testing.T) {
		first, last, err := MonthRange("2026-02", time.UTC)
		require.NoError(t, err)
		assert.Equal(t, "2026-02-01", first.Format(DateLayout))
		assert.Equal(t, "2026-02-28", last.Format(DateLayout))
	})

	t.Run("invalid month", func(t *testing.T) {
		_, _, err := MonthRange("02-2026", time.UTC)
		assert.Error(t, err)
	})
}
