package timeslot

import (
	"fmt"
	"net/http"
	"time"

	"github.com/campuskit/scheduling-backend/internal/pkg/apperror"
)

var (
	ErrInvalidTime    = apperror.New(http.StatusBadRequest, "invalid_time", "time must be HH:MM between 00:00 and 23:59")
	ErrInvalidWeekday = apperror.New(http.StatusBadRequest, "invalid_weekday", "invalid weekday")
	ErrInvalidRange   = apperror.New(http.StatusBadRequest, "invalid_time_range", "start time must be strictly before end time")
)

// TimeOfDay is a wall-clock time with minute precision. It carries no date
// and no zone; comparisons are purely (hour, minute).
type TimeOfDay struct {
	Hour   int
	Minute int
}

// NewTimeOfDay validates hour/minute bounds.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTime
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// ParseTimeOfDay parses "HH:MM" (e.g. "08:05").
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, apperror.Wrap(err, http.StatusBadRequest, "invalid_time", "time must be HH:MM between 00:00 and 23:59")
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// Minutes returns minutes since midnight, the storage representation.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// FromMinutes converts a minutes-since-midnight value back to a TimeOfDay.
func FromMinutes(m int) TimeOfDay {
	return TimeOfDay{Hour: m / 60, Minute: m % 60}
}

// Before reports whether t is strictly earlier than o.
func (t TimeOfDay) Before(o TimeOfDay) bool {
	return t.Minutes() < o.Minutes()
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Weekday is a closed day-of-week enum, Monday-first to match the academic
// week used by the quota rule.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY"}

// ParseWeekday parses an upper-case weekday name (e.g. "MONDAY").
func ParseWeekday(s string) (Weekday, error) {
	for i, name := range weekdayNames {
		if s == name {
			return Weekday(i), nil
		}
	}
	return 0, ErrInvalidWeekday
}

// WeekdayOf maps the stdlib Sunday-first weekday to the Monday-first enum.
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}

func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

func (d Weekday) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// TimeSlot is a (weekday, start, end) interval. Invariant: Start < End
// strictly; zero-length and inverted slots never construct.
type TimeSlot struct {
	Day   Weekday
	Start TimeOfDay
	End   TimeOfDay
}

// New validates and builds a TimeSlot.
func New(day Weekday, start, end TimeOfDay) (TimeSlot, error) {
	if !day.Valid() {
		return TimeSlot{}, ErrInvalidWeekday
	}
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidRange
	}
	return TimeSlot{Day: day, Start: start, End: end}, nil
}

// Parse builds a TimeSlot from wire-format strings ("MONDAY", "10:00", "12:00").
func Parse(day, start, end string) (TimeSlot, error) {
	d, err := ParseWeekday(day)
	if err != nil {
		return TimeSlot{}, err
	}
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return TimeSlot{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return TimeSlot{}, err
	}
	return New(d, s, e)
}

// Overlaps reports whether two slots intersect. Intervals are half-open:
// a slot ending at 12:00 does not overlap one starting at 12:00.
func (s TimeSlot) Overlaps(o TimeSlot) bool {
	if s.Day != o.Day {
		return false
	}
	return s.Start.Before(o.End) && o.Start.Before(s.End)
}

func (s TimeSlot) String() string {
	return fmt.Sprintf("%s %s-%s", s.Day, s.Start, s.End)
}
