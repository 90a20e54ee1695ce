package scheduling

import (
	"errors"
	"testing"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"09:60", 0, true},
		{"9:30", 0, true},
		{"0930", 0, true},
		{"", 0, true},
		{"ab:cd", 0, true},
		{"12:3x", 0, true},
		{"1x:30", 0, true},
		{"12:x3", 0, true},
		{"12 30", 0, true},
		{"-1:30", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseTimeOfDay(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseTimeOfDay(%q): expected error, got %v", tt.in, got)
			} else if !errors.Is(err, ErrInvalidTimeOfDay) {
				t.Errorf("ParseTimeOfDay(%q): error %v is not ErrInvalidTimeOfDay", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimeOfDay(%q): unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTimeOfDay(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTimeOfDayString(t *testing.T) {
	for _, s := range []string{"00:00", "09:05", "13:45", "23:59"} {
		tod, err := ParseTimeOfDay(s)
		if err != nil {
			t.Fatalf("ParseTimeOfDay(%q): %v", s, err)
		}
		if tod.String() != s {
			t.Errorf("round trip %q -> %q", s, tod.String())
		}
	}
}

func TestTimeRangeOverlaps(t *testing.T) {
	mustRange := func(start, end string) TimeRange {
		r, err := ParseTimeRange(start, end)
		if err != nil {
			t.Fatalf("ParseTimeRange(%q, %q): %v", start, end, err)
		}
		return r
	}

	tests := []struct {
		name string
		a, b TimeRange
		want bool
	}{
		{"disjoint", mustRange("09:00", "09:30"), mustRange("10:00", "10:30"), false},
		{"adjacent ranges do not overlap", mustRange("09:00", "09:30"), mustRange("09:30", "10:00"), false},
		{"partial overlap", mustRange("09:00", "09:30"), mustRange("09:15", "09:45"), true},
		{"contained", mustRange("09:00", "10:00"), mustRange("09:15", "09:45"), true},
		{"identical", mustRange("09:00", "09:30"), mustRange("09:00", "09:30"), true},
	}

	for _, tt := range tests {
		if got := tt.a.Overlaps(tt.b); got != tt.want {
			t.Errorf("%s: %v.Overlaps(%v) = %v, want %v", tt.name, tt.a, tt.b, got, tt.want)
		}
		// Overlap is symmetric.
		if got := tt.b.Overlaps(tt.a); got != tt.want {
			t.Errorf("%s (reversed): %v.Overlaps(%v) = %v, want %v", tt.name, tt.b, tt.a, got, tt.want)
		}
	}
}

func TestTimeRangeWithin(t *testing.T) {
	window, _ := ParseTimeRange("09:00", "17:00")

	inside, _ := ParseTimeRange("09:00", "09:30")
	if !inside.Within(window) {
		t.Errorf("%v should be within %v", inside, window)
	}
	spill, _ := ParseTimeRange("16:45", "17:15")
	if spill.Within(window) {
		t.Errorf("%v should not be within %v", spill, window)
	}
}

func TestParseWeekday(t *testing.T) {
	if _, err := ParseWeekday("monday"); err != nil {
		t.Errorf("monday should parse: %v", err)
	}
	if _, err := ParseWeekday("Monday"); err == nil {
		t.Error("mixed case should not parse; normalization happens at the storage boundary")
	}
	if _, err := ParseWeekday("funday"); !errors.Is(err, ErrInvalidWeekday) {
		t.Errorf("expected ErrInvalidWeekday, got %v", err)
	}
}
