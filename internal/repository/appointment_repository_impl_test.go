package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestDoctorDayLockKeyDeterministic(t *testing.T) {
	doctorID := uuid.MustParse("5f1c9c31-7a22-4b3e-9d2a-111111111111")
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	if doctorDayLockKey(doctorID, day) != doctorDayLockKey(doctorID, day) {
		t.Error("same doctor/day must map to the same lock key")
	}

	// Different clock times on the same calendar day contend for the same
	// lock, otherwise two bookings could pass the availability check in
	// parallel.
	noon := time.Date(2026, 9, 1, 12, 30, 0, 0, time.UTC)
	if doctorDayLockKey(doctorID, day) != doctorDayLockKey(doctorID, noon) {
		t.Error("lock key must depend on the calendar day only")
	}
}

func TestDoctorDayLockKeyDistinct(t *testing.T) {
	doctorA := uuid.MustParse("5f1c9c31-7a22-4b3e-9d2a-111111111111")
	doctorB := uuid.MustParse("5f1c9c31-7a22-4b3e-9d2a-222222222222")
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	nextDay := day.AddDate(0, 0, 1)

	if doctorDayLockKey(doctorA, day) == doctorDayLockKey(doctorB, day) {
		t.Error("different doctors on the same day must not share a lock key")
	}
	if doctorDayLockKey(doctorA, day) == doctorDayLockKey(doctorA, nextDay) {
		t.Error("the same doctor on different days must not share a lock key")
	}
}
