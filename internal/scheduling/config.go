package scheduling

import (
	"errors"
	"fmt"

	"github.com/akhileshroy86/healthcare-backend/internal/domain/entity"
)

var (
	ErrNoAvailableDays   = errors.New("schedule must have at least one available day")
	ErrWindowInverted    = errors.New("start time must be before end time")
	ErrLunchInverted     = errors.New("lunch start must be before lunch end")
	ErrLunchOutsideHours = errors.New("lunch break must lie within working hours")
	ErrLunchHalfSet      = errors.New("lunch start and lunch end must be set together")
	ErrInvalidDuration   = errors.New("consultation duration must be positive")
	ErrInvalidCapacity   = errors.New("max patients per day must be positive")
	ErrWindowTooShort    = errors.New("working window does not fit a single consultation")
)

// ValidateConfig checks every ScheduleConfig invariant: well-formed times,
// a non-inverted working window, a lunch break contained in it, and a window
// long enough (minus lunch) for at least one consultation slot.
func ValidateConfig(cfg *entity.ScheduleConfig) error {
	days := cfg.DayNames()
	if len(days) == 0 {
		return ErrNoAvailableDays
	}
	for _, name := range days {
		if _, err := ParseWeekday(name); err != nil {
			return err
		}
	}

	window, err := ParseTimeRange(cfg.StartTime, cfg.EndTime)
	if err != nil {
		return err
	}
	if !window.IsValid() {
		return ErrWindowInverted
	}

	if cfg.ConsultationDuration <= 0 {
		return ErrInvalidDuration
	}
	if cfg.MaxPatientsPerDay <= 0 {
		return ErrInvalidCapacity
	}

	lunchMinutes := 0
	if (cfg.LunchStart == nil) != (cfg.LunchEnd == nil) {
		return ErrLunchHalfSet
	}
	if cfg.HasLunchBreak() {
		lunch, err := ParseTimeRange(*cfg.LunchStart, *cfg.LunchEnd)
		if err != nil {
			return err
		}
		if !lunch.IsValid() {
			return ErrLunchInverted
		}
		if !lunch.Within(window) {
			return ErrLunchOutsideHours
		}
		lunchMinutes = lunch.Minutes()
	}

	if window.Minutes()-lunchMinutes < cfg.ConsultationDuration {
		return fmt.Errorf("%w: %d usable minutes, need %d",
			ErrWindowTooShort, window.Minutes()-lunchMinutes, cfg.ConsultationDuration)
	}

	return nil
}

// worksOn reports whether the config covers the given date's weekday.
func worksOn(cfg *entity.ScheduleConfig, weekday string) bool {
	for _, name := range cfg.DayNames() {
		if name == weekday {
			return true
		}
	}
	return false
}
