package scheduling

import (
	"errors"
	"testing"
	"time"

	"github.com/akhileshroy86/healthcare-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// monday is 2025-06-02, a Monday.
var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func appt(doctorID uuid.UUID, date time.Time, start, end string, status entity.AppointmentStatus) entity.Appointment {
	return entity.Appointment{
		ID:        uuid.New(),
		DoctorID:  doctorID,
		PatientID: uuid.New(),
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Status:    status,
	}
}

func mustSlot(t *testing.T, start, end string) TimeRange {
	t.Helper()
	r, err := ParseTimeRange(start, end)
	if err != nil {
		t.Fatalf("ParseTimeRange(%q, %q): %v", start, end, err)
	}
	return r
}

func rejectionReason(t *testing.T, err error) RejectionReason {
	t.Helper()
	var rej *SlotRejection
	if !errors.As(err, &rej) {
		t.Fatalf("expected *SlotRejection, got %v", err)
	}
	return rej.Reason
}

func TestCheckSlotRejectsOutsideAvailableDays(t *testing.T) {
	cfg := baseConfig()
	cfg.AvailableDays = "tuesday"

	err := CheckSlot(cfg, nil, monday, mustSlot(t, "09:00", "09:30"))
	if got := rejectionReason(t, err); got != RejectedOutsideAvailableDays {
		t.Errorf("reason = %s, want %s", got, RejectedOutsideAvailableDays)
	}
}

func TestCheckSlotRejectsOutsideWorkingHours(t *testing.T) {
	cfg := baseConfig()

	for _, slot := range []TimeRange{
		mustSlot(t, "08:30", "09:00"),
		mustSlot(t, "16:45", "17:15"),
		mustSlot(t, "18:00", "18:30"),
	} {
		err := CheckSlot(cfg, nil, monday, slot)
		if got := rejectionReason(t, err); got != RejectedOutsideWorkingHours {
			t.Errorf("slot %v: reason = %s, want %s", slot, got, RejectedOutsideWorkingHours)
		}
	}
}

func TestCheckSlotRejectsDuringLunchBreak(t *testing.T) {
	// Config 09:00-17:00, lunch 13:00-14:00, duration 30, capacity 10.
	// Booking 13:15-13:45 must be rejected for the lunch break.
	cfg := baseConfig()

	err := CheckSlot(cfg, nil, monday, mustSlot(t, "13:15", "13:45"))
	if got := rejectionReason(t, err); got != RejectedDuringLunchBreak {
		t.Errorf("reason = %s, want %s", got, RejectedDuringLunchBreak)
	}

	// Touching the lunch bounds without overlapping is fine.
	if err := CheckSlot(cfg, nil, monday, mustSlot(t, "12:30", "13:00")); err != nil {
		t.Errorf("12:30-13:00 should be bookable: %v", err)
	}
	if err := CheckSlot(cfg, nil, monday, mustSlot(t, "14:00", "14:30")); err != nil {
		t.Errorf("14:00-14:30 should be bookable: %v", err)
	}
}

func TestCheckSlotRejectsConflicts(t *testing.T) {
	cfg := baseConfig()
	doctorID := uuid.New()
	taken := appt(doctorID, monday, "10:00", "10:30", entity.AppointmentScheduled)
	existing := []entity.Appointment{taken}

	err := CheckSlot(cfg, existing, monday, mustSlot(t, "10:15", "10:45"))
	var rej *SlotRejection
	if !errors.As(err, &rej) {
		t.Fatalf("expected *SlotRejection, got %v", err)
	}
	if rej.Reason != RejectedSlotConflict {
		t.Errorf("reason = %s, want %s", rej.Reason, RejectedSlotConflict)
	}
	if rej.ConflictsWith != taken.ID {
		t.Errorf("ConflictsWith = %s, want %s", rej.ConflictsWith, taken.ID)
	}

	// A cancelled appointment frees its range.
	existing[0].Status = entity.AppointmentCancelled
	if err := CheckSlot(cfg, existing, monday, mustSlot(t, "10:15", "10:45")); err != nil {
		t.Errorf("cancelled appointment should not block: %v", err)
	}

	// A no-show still holds its range.
	existing[0].Status = entity.AppointmentNoShow
	err = CheckSlot(cfg, existing, monday, mustSlot(t, "10:15", "10:45"))
	if got := rejectionReason(t, err); got != RejectedSlotConflict {
		t.Errorf("no-show should block: reason = %s", got)
	}
}

func TestCheckSlotDailyCapacity(t *testing.T) {
	cfg := baseConfig() // capacity 10

	doctorID := uuid.New()
	existing := make([]entity.Appointment, 0, 10)
	starts := []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30", "12:00", "12:30", "14:00", "14:30"}
	ends := []string{"09:30", "10:00", "10:30", "11:00", "11:30", "12:00", "12:30", "13:00", "14:30", "15:00"}
	for i := range starts {
		existing = append(existing, appt(doctorID, monday, starts[i], ends[i], entity.AppointmentScheduled))
	}

	err := CheckSlot(cfg, existing, monday, mustSlot(t, "15:00", "15:30"))
	if got := rejectionReason(t, err); got != RejectedDailyCapacityExceeded {
		t.Errorf("10 of 10 booked: reason = %s, want %s", got, RejectedDailyCapacityExceeded)
	}

	// Cancelling one of the ten opens the day again.
	existing[0].Status = entity.AppointmentCancelled
	if err := CheckSlot(cfg, existing, monday, mustSlot(t, "15:00", "15:30")); err != nil {
		t.Errorf("9 of 10 booked: slot should be available, got %v", err)
	}
}

func TestCheckSlotAcceptedSlotsNeverOverlap(t *testing.T) {
	// Any two distinct slots the checker accepts against the same snapshot
	// plus each other must be non-overlapping.
	cfg := baseConfig()
	doctorID := uuid.New()

	var accepted []entity.Appointment
	candidates := []TimeRange{
		mustSlot(t, "09:00", "09:30"),
		mustSlot(t, "09:15", "09:45"), // overlaps the first, must be refused
		mustSlot(t, "09:30", "10:00"),
		mustSlot(t, "09:45", "10:15"), // overlaps the third
		mustSlot(t, "10:00", "10:30"),
	}
	for _, c := range candidates {
		if err := CheckSlot(cfg, accepted, monday, c); err == nil {
			accepted = append(accepted, appt(doctorID, monday, c.Start.String(), c.End.String(), entity.AppointmentScheduled))
		}
	}

	if len(accepted) != 3 {
		t.Fatalf("accepted %d slots, want 3", len(accepted))
	}
	for i := range accepted {
		for j := i + 1; j < len(accepted); j++ {
			a, _ := ParseTimeRange(accepted[i].StartTime, accepted[i].EndTime)
			b, _ := ParseTimeRange(accepted[j].StartTime, accepted[j].EndTime)
			if a.Overlaps(b) {
				t.Errorf("accepted slots %v and %v overlap", a, b)
			}
		}
	}
}

func TestCheckSlotToleratesCorruptExistingRows(t *testing.T) {
	// Pre-existing rows with unparseable times must not crash the checker;
	// they still count toward daily capacity.
	cfg := baseConfig()
	cfg.MaxPatientsPerDay = 2
	doctorID := uuid.New()

	corrupt := appt(doctorID, monday, "garbage", "also-garbage", entity.AppointmentScheduled)
	good := appt(doctorID, monday, "09:00", "09:30", entity.AppointmentScheduled)
	existing := []entity.Appointment{corrupt, good}

	err := CheckSlot(cfg, existing, monday, mustSlot(t, "10:00", "10:30"))
	if got := rejectionReason(t, err); got != RejectedDailyCapacityExceeded {
		t.Errorf("corrupt row should count toward capacity: got %v", err)
	}
}
