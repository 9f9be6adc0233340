package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want int
	}{
		{
			name: "same day",
			a:    time.Date(2025, 1, 1, 9, 0, 0, 0, time.Local),
			b:    time.Date(2025, 1, 1, 23, 0, 0, 0, time.Local),
			want: 0,
		},
		{
			name: "one day apart ignores clock time",
			a:    time.Date(2025, 1, 1, 23, 30, 0, 0, time.Local),
			b:    time.Date(2025, 1, 2, 0, 15, 0, 0, time.Local),
			want: 1,
		},
		{
			name: "thirty five days",
			a:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local),
			b:    time.Date(2025, 2, 5, 0, 0, 0, 0, time.Local),
			want: 35,
		},
		{
			name: "negative when reversed",
			a:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local),
			b:    time.Date(2025, 3, 7, 0, 0, 0, 0, time.Local),
			want: -3,
		},
		{
			name: "across month boundary",
			a:    time.Date(2025, 1, 31, 12, 0, 0, 0, time.Local),
			b:    time.Date(2025, 2, 1, 8, 0, 0, 0, time.Local),
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetween(tt.a, tt.b))
		})
	}
}

func TestDateOf(t *testing.T) {
	ts := time.Date(2025, 6, 15, 18, 45, 12, 999, time.Local)
	got := DateOf(ts)

	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, time.June, got.Month())
	assert.Equal(t, 15, got.Day())
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, 0, got.Minute())
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2025, 6, 15, 8, 0, 0, 0, time.Local)
	evening := time.Date(2025, 6, 15, 22, 0, 0, 0, time.Local)
	nextDay := time.Date(2025, 6, 16, 0, 0, 0, 0, time.Local)

	assert.True(t, SameDay(morning, evening))
	assert.False(t, SameDay(evening, nextDay))
}
