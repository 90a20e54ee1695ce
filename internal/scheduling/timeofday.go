// Package scheduling holds the queue and slot derivation core: pure functions
// over a doctor's schedule configuration and a snapshot of appointments.
// Nothing in here touches the database or carries hidden state, so every
// result is a deterministic function of its inputs.
package scheduling

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidTimeOfDay = errors.New("invalid time of day, use HH:MM (24h)")

// TimeOfDay is a time of day expressed as minutes since midnight.
type TimeOfDay int

// ParseTimeOfDay parses an "HH:MM" 24-hour clock string. Every character
// is checked: a trailing non-digit must reject, not parse as a shorter
// number.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	for _, i := range [...]int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
		}
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	if h > 23 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	return TimeOfDay(h*60 + m), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// TimeRange is a half-open [Start, End) interval within a single day.
type TimeRange struct {
	Start TimeOfDay
	End   TimeOfDay
}

// ParseTimeRange parses a pair of "HH:MM" strings into a TimeRange.
func ParseTimeRange(start, end string) (TimeRange, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return TimeRange{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return TimeRange{}, err
	}
	return TimeRange{Start: s, End: e}, nil
}

// IsValid reports whether the range has positive length.
func (r TimeRange) IsValid() bool {
	return r.Start < r.End
}

// Minutes returns the range length in minutes.
func (r TimeRange) Minutes() int {
	return int(r.End - r.Start)
}

// Overlaps reports whether two half-open ranges intersect.
func (r TimeRange) Overlaps(o TimeRange) bool {
	return r.Start < o.End && r.End > o.Start
}

// Within reports whether r lies fully inside o.
func (r TimeRange) Within(o TimeRange) bool {
	return r.Start >= o.Start && r.End <= o.End
}

func (r TimeRange) String() string {
	return r.Start.String() + "-" + r.End.String()
}

// weekdayNames maps lowercase weekday names to time.Weekday.
var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

var ErrInvalidWeekday = errors.New("invalid weekday name")

// ParseWeekday maps a lowercase weekday name to time.Weekday.
func ParseWeekday(name string) (time.Weekday, error) {
	if d, ok := weekdayNames[name]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, name)
}
