package scheduling

import (
	"errors"
	"testing"

	"github.com/akhileshroy86/healthcare-backend/internal/domain/entity"
)

func strPtr(s string) *string { return &s }

func baseConfig() *entity.ScheduleConfig {
	return &entity.ScheduleConfig{
		AvailableDays:        "monday,tuesday,wednesday,thursday,friday",
		StartTime:            "09:00",
		EndTime:              "17:00",
		LunchStart:           strPtr("13:00"),
		LunchEnd:             strPtr("14:00"),
		ConsultationDuration: 30,
		MaxPatientsPerDay:    10,
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*entity.ScheduleConfig)
		wantErr error
	}{
		{"valid", func(c *entity.ScheduleConfig) {}, nil},
		{"valid without lunch", func(c *entity.ScheduleConfig) {
			c.LunchStart, c.LunchEnd = nil, nil
		}, nil},
		{"sloppy day formatting is normalized", func(c *entity.ScheduleConfig) {
			c.AvailableDays = " Monday , FRIDAY "
		}, nil},
		{"no days", func(c *entity.ScheduleConfig) { c.AvailableDays = "" }, ErrNoAvailableDays},
		{"bad day name", func(c *entity.ScheduleConfig) { c.AvailableDays = "monday,funday" }, ErrInvalidWeekday},
		{"bad start time", func(c *entity.ScheduleConfig) { c.StartTime = "9am" }, ErrInvalidTimeOfDay},
		{"inverted window", func(c *entity.ScheduleConfig) {
			c.StartTime, c.EndTime = "17:00", "09:00"
		}, ErrWindowInverted},
		{"zero duration", func(c *entity.ScheduleConfig) { c.ConsultationDuration = 0 }, ErrInvalidDuration},
		{"negative capacity", func(c *entity.ScheduleConfig) { c.MaxPatientsPerDay = -1 }, ErrInvalidCapacity},
		{"lunch start only", func(c *entity.ScheduleConfig) { c.LunchEnd = nil }, ErrLunchHalfSet},
		{"inverted lunch", func(c *entity.ScheduleConfig) {
			c.LunchStart, c.LunchEnd = strPtr("14:00"), strPtr("13:00")
		}, ErrLunchInverted},
		{"lunch outside window", func(c *entity.ScheduleConfig) {
			c.LunchStart, c.LunchEnd = strPtr("08:00"), strPtr("09:30")
		}, ErrLunchOutsideHours},
		{"window too short for one slot", func(c *entity.ScheduleConfig) {
			c.StartTime, c.EndTime = "09:00", "09:20"
			c.LunchStart, c.LunchEnd = nil, nil
		}, ErrWindowTooShort},
		{"lunch eats the whole window", func(c *entity.ScheduleConfig) {
			c.StartTime, c.EndTime = "09:00", "10:00"
			c.LunchStart, c.LunchEnd = strPtr("09:15"), strPtr("09:55")
		}, ErrWindowTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			tt.mutate(cfg)
			err := ValidateConfig(cfg)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got error %v, want %v", err, tt.wantErr)
			}
		})
	}
}
