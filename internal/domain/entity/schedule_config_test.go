package entity

import (
	"reflect"
	"testing"
)

func TestDayNamesNormalizesCSV(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want []string
	}{
		{"plain", "monday,tuesday", []string{"monday", "tuesday"}},
		{"mixed case and spaces", " Monday , TUESDAY ,wednesday", []string{"monday", "tuesday", "wednesday"}},
		{"trailing comma", "friday,", []string{"friday"}},
		{"empty", "", nil},
		{"only separators", " , ,", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ScheduleConfig{AvailableDays: tt.csv}
			got := c.DayNames()
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DayNames(%q) = %v, want %v", tt.csv, got, tt.want)
			}
		})
	}
}

func TestHasLunchBreak(t *testing.T) {
	s := "12:00"
	e := "13:00"

	tests := []struct {
		name  string
		start *string
		end   *string
		want  bool
	}{
		{"both set", &s, &e, true},
		{"start only", &s, nil, false},
		{"end only", nil, &e, false},
		{"neither", nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ScheduleConfig{LunchStart: tt.start, LunchEnd: tt.end}
			if got := c.HasLunchBreak(); got != tt.want {
				t.Errorf("HasLunchBreak() = %v, want %v", got, tt.want)
			}
		})
	}
}
