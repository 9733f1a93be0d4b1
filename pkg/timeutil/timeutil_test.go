package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	t.Run("should parse HH:MM:SS", func(t *testing.T) {
		sec, err := ParseClock("08:30:15")
		require.NoError(t, err)
		assert.Equal(t, 8*3600+30*60+15, sec)
	})

	t.Run("should parse HH:MM", func(t *testing.T) {
		sec, err := ParseClock("09:05")
		require.NoError(t, err)
		assert.Equal(t, 9*3600+5*60, sec)
	})

	t.Run("should accept hours beyond 24", func(t *testing.T) {
		sec, err := ParseClock("480:00:00")
		require.NoError(t, err)
		assert.Equal(t, 480*3600, sec)
	})

	t.Run("should reject malformed values", func(t *testing.T) {
		for _, input := range []string{"", "8", "08:61", "ab:cd", "08:30:99"} {
			_, err := ParseClock(input)
			assert.Error(t, err, "input %q", input)
		}
	})
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00:00", FormatClock(0))
	assert.Equal(t, "08:30:15", FormatClock(8*3600+30*60+15))
	assert.Equal(t, "26:00:00", FormatClock(26*3600))
	assert.Equal(t, "00:00:00", FormatClock(-5))
}

func TestNormalizeDuration(t *testing.T) {
	t.Run("should flatten day-form durations", func(t *testing.T) {
		assert.Equal(t, "26:00:00", NormalizeDuration("1 day, 02:00:00"))
		assert.Equal(t, "50:30:00", NormalizeDuration("2 days, 02:30:00"))
	})

	t.Run("should canonicalize empty and None", func(t *testing.T) {
		assert.Equal(t, "00:00:00", NormalizeDuration(""))
		assert.Equal(t, "00:00:00", NormalizeDuration("None"))
	})

	t.Run("should pass plain values through", func(t *testing.T) {
		assert.Equal(t, "07:45:00", NormalizeDuration("07:45:00"))
	})
}

func TestNormalizeBaseHours(t *testing.T) {
	t.Run("digit cells are whole hours", func(t *testing.T) {
		assert.Equal(t, "12:00:00", NormalizeBaseHours("12"))
	})

	t.Run("colon cells pass through", func(t *testing.T) {
		assert.Equal(t, "12:30:00", NormalizeBaseHours("12:30:00"))
	})

	t.Run("decimal cells truncate", func(t *testing.T) {
		assert.Equal(t, "12:00:00", NormalizeBaseHours("12.5"))
	})

	t.Run("unparseable cells collapse to zero", func(t *testing.T) {
		assert.Equal(t, "00:00:00", NormalizeBaseHours("doce"))
		assert.Equal(t, "00:00:00", NormalizeBaseHours(""))
	})
}

func TestSpanishDate(t *testing.T) {
	// 2026-01-02 is a Friday.
	d := time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Viernes 2 Enero 2026", SpanishDate(d))

	// 2026-08-30 is a Sunday.
	d = time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Domingo 30 Agosto 2026", SpanishDate(d))
}

func TestTitleCaseName(t *testing.T) {
	assert.Equal(t, "Juan Perez", TitleCaseName("juan PEREZ"))
	assert.Equal(t, "Ana Maria Solis", TitleCaseName("  ana   maria   solis "))
	assert.Equal(t, "", TitleCaseName(""))
}
