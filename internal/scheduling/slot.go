package scheduling

import (
	"fmt"
	"strings"
	"time"

	"github.com/akhileshroy86/healthcare-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// RejectionReason classifies why a candidate slot cannot be booked.
type RejectionReason string

const (
	RejectedOutsideAvailableDays  RejectionReason = "outside_available_days"
	RejectedOutsideWorkingHours   RejectionReason = "outside_working_hours"
	RejectedDuringLunchBreak      RejectionReason = "during_lunch_break"
	RejectedSlotConflict          RejectionReason = "slot_conflict"
	RejectedDailyCapacityExceeded RejectionReason = "daily_capacity_exceeded"
)

// SlotRejection is returned by CheckSlot when a candidate booking is not
// legal. It is a validation outcome, not an infrastructure failure: callers
// surface the reason verbatim to the user.
type SlotRejection struct {
	Reason RejectionReason
	// ConflictsWith names the blocking appointment when Reason is
	// RejectedSlotConflict, and is the zero UUID otherwise.
	ConflictsWith uuid.UUID
}

func (r *SlotRejection) Error() string {
	if r.Reason == RejectedSlotConflict {
		return fmt.Sprintf("slot rejected: %s (appointment %s)", r.Reason, r.ConflictsWith)
	}
	return fmt.Sprintf("slot rejected: %s", r.Reason)
}

// CheckSlot decides whether a candidate booking (date, slot) is legal against
// a doctor's schedule configuration and a snapshot of that day's appointments.
//
// Pure decision function: no side effects, the caller performs the actual
// insert. The snapshot must be fetched no earlier than the start of the
// booking attempt, and the insert must re-check under a lock (see
// AppointmentRepository.FindBlockingForUpdate) so two concurrent attempts
// cannot both pass.
func CheckSlot(cfg *entity.ScheduleConfig, existing []entity.Appointment, date time.Time, slot TimeRange) error {
	weekday := strings.ToLower(date.Weekday().String())
	if !worksOn(cfg, weekday) {
		return &SlotRejection{Reason: RejectedOutsideAvailableDays}
	}

	window, err := ParseTimeRange(cfg.StartTime, cfg.EndTime)
	if err != nil {
		return err
	}
	if !slot.Within(window) {
		return &SlotRejection{Reason: RejectedOutsideWorkingHours}
	}

	if cfg.HasLunchBreak() {
		lunch, err := ParseTimeRange(*cfg.LunchStart, *cfg.LunchEnd)
		if err != nil {
			return err
		}
		if slot.Overlaps(lunch) {
			return &SlotRejection{Reason: RejectedDuringLunchBreak}
		}
	}

	blocking := 0
	for i := range existing {
		appt := &existing[i]
		if !appt.Blocks() {
			continue
		}
		blocking++
		taken, err := ParseTimeRange(appt.StartTime, appt.EndTime)
		if err != nil {
			// Corrupt stored times still hold their row's capacity but
			// cannot be overlap-tested. Do not fail the whole check.
			continue
		}
		if slot.Overlaps(taken) {
			return &SlotRejection{Reason: RejectedSlotConflict, ConflictsWith: appt.ID}
		}
	}

	if blocking >= cfg.MaxPatientsPerDay {
		return &SlotRejection{Reason: RejectedDailyCapacityExceeded}
	}

	return nil
}
