package entity

import "testing"

func TestAppointmentIsTerminal(t *testing.T) {
	tests := []struct {
		status AppointmentStatus
		want   bool
	}{
		{AppointmentScheduled, false},
		{AppointmentInProgress, false},
		{AppointmentCompleted, true},
		{AppointmentCancelled, true},
		{AppointmentNoShow, true},
	}

	for _, tt := range tests {
		a := Appointment{Status: tt.status}
		if got := a.IsTerminal(); got != tt.want {
			t.Errorf("IsTerminal(%s) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestAppointmentBlocks(t *testing.T) {
	// Only cancelled appointments free their slot. No-shows keep blocking
	// so the day's history stays visible in the queue.
	for _, status := range []AppointmentStatus{
		AppointmentScheduled,
		AppointmentInProgress,
		AppointmentCompleted,
		AppointmentNoShow,
	} {
		a := Appointment{Status: status}
		if !a.Blocks() {
			t.Errorf("Blocks(%s) = false, want true", status)
		}
	}

	a := Appointment{Status: AppointmentCancelled}
	if a.Blocks() {
		t.Error("Blocks(cancelled) = true, want false")
	}
}
