package timeslot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSlot(t *testing.T, day Weekday, start, end string) TimeSlot {
	t.Helper()
	s, err := ParseTimeOfDay(start)
	require.NoError(t, err)
	e, err := ParseTimeOfDay(end)
	require.NoError(t, err)
	slot, err := New(day, s, e)
	require.NoError(t, err)
	return slot
}

func TestTimeOfDayValidation(t *testing.T) {
	_, err := NewTimeOfDay(24, 0)
	assert.ErrorIs(t, err, ErrInvalidTime)

	_, err = NewTimeOfDay(-1, 0)
	assert.ErrorIs(t, err, ErrInvalidTime)

	_, err = NewTimeOfDay(10, 60)
	assert.ErrorIs(t, err, ErrInvalidTime)

	tod, err := NewTimeOfDay(23, 59)
	require.NoError(t, err)
	assert.Equal(t, "23:59", tod.String())
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("08:05")
	require.NoError(t, err)
	assert.Equal(t, 8, tod.Hour)
	assert.Equal(t, 5, tod.Minute)
	assert.Equal(t, 485, tod.Minutes())
	assert.Equal(t, tod, FromMinutes(485))

	_, err = ParseTimeOfDay("8am")
	assert.Error(t, err)

	_, err = ParseTimeOfDay("25:00")
	assert.Error(t, err)
}

func TestTimeOfDayOrdering(t *testing.T) {
	a := TimeOfDay{Hour: 9, Minute: 30}
	b := TimeOfDay{Hour: 10, Minute: 0}

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))
}

func TestNewTimeSlotRejectsBadRanges(t *testing.T) {
	ten := TimeOfDay{Hour: 10}
	twelve := TimeOfDay{Hour: 12}

	// Inverted
	_, err := New(Monday, twelve, ten)
	assert.ErrorIs(t, err, ErrInvalidRange)

	// Zero-length
	_, err = New(Monday, ten, ten)
	assert.ErrorIs(t, err, ErrInvalidRange)

	// Bad weekday
	_, err = New(Weekday(7), ten, twelve)
	assert.ErrorIs(t, err, ErrInvalidWeekday)
}

func TestOverlaps(t *testing.T) {
	base := mustSlot(t, Monday, "10:00", "12:00")

	tests := []struct {
		name  string
		other TimeSlot
		want  bool
	}{
		{"identical", mustSlot(t, Monday, "10:00", "12:00"), true},
		{"nested", mustSlot(t, Monday, "10:30", "11:30"), true},
		{"partial at start", mustSlot(t, Monday, "09:00", "10:30"), true},
		{"partial at end", mustSlot(t, Monday, "11:30", "13:00"), true},
		{"covering", mustSlot(t, Monday, "09:00", "13:00"), true},
		{"touching before", mustSlot(t, Monday, "08:00", "10:00"), false},
		{"touching after", mustSlot(t, Monday, "12:00", "14:00"), false},
		{"disjoint", mustSlot(t, Monday, "14:00", "15:00"), false},
		{"same hours different day", mustSlot(t, Tuesday, "10:00", "12:00"), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, base.Overlaps(tc.other))
			// Overlap is symmetric
			assert.Equal(t, tc.want, tc.other.Overlaps(base))
		})
	}
}

func TestParseWeekday(t *testing.T) {
	d, err := ParseWeekday("WEDNESDAY")
	require.NoError(t, err)
	assert.Equal(t, Wednesday, d)

	_, err = ParseWeekday("wednesday")
	assert.ErrorIs(t, err, ErrInvalidWeekday)
}

func TestWeekdayOf(t *testing.T) {
	// 2025-06-02 is a Monday, 2025-06-08 a Sunday.
	mon := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	sun := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, Monday, WeekdayOf(mon))
	assert.Equal(t, Sunday, WeekdayOf(sun))
}

func TestParseSlot(t *testing.T) {
	slot, err := Parse("FRIDAY", "14:00", "16:00")
	require.NoError(t, err)
	assert.Equal(t, "FRIDAY 14:00-16:00", slot.String())

	_, err = Parse("FRIDAY", "16:00", "14:00")
	assert.ErrorIs(t, err, ErrInvalidRange)
}
