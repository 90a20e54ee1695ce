package scheduling

import (
	"errors"
	"testing"
	"time"

	"github.com/akhileshroy86/healthcare-backend/internal/domain/entity"

	"github.com/google/uuid"
)

func TestCanTransitionMatrix(t *testing.T) {
	all := []entity.AppointmentStatus{
		entity.AppointmentScheduled,
		entity.AppointmentInProgress,
		entity.AppointmentCompleted,
		entity.AppointmentCancelled,
		entity.AppointmentNoShow,
	}

	allowed := map[entity.AppointmentStatus]map[entity.AppointmentStatus]bool{
		entity.AppointmentScheduled: {
			entity.AppointmentInProgress: true,
			entity.AppointmentCancelled:  true,
			entity.AppointmentNoShow:     true,
		},
		entity.AppointmentInProgress: {
			entity.AppointmentCompleted: true,
			entity.AppointmentCancelled: true,
		},
	}

	for _, from := range all {
		for _, to := range all {
			err := CanTransition(from, to)
			if allowed[from][to] {
				if err != nil {
					t.Errorf("%s -> %s should be allowed: %v", from, to, err)
				}
				continue
			}
			var te *TransitionError
			if !errors.As(err, &te) {
				t.Errorf("%s -> %s: expected *TransitionError, got %v", from, to, err)
				continue
			}
			if te.From != from || te.To != to {
				t.Errorf("%s -> %s: error carries %s -> %s", from, to, te.From, te.To)
			}
		}
	}
}

func TestTerminalStatesAreFlagged(t *testing.T) {
	terminals := []entity.AppointmentStatus{
		entity.AppointmentCompleted,
		entity.AppointmentCancelled,
		entity.AppointmentNoShow,
	}

	for _, from := range terminals {
		err := CanTransition(from, entity.AppointmentScheduled)
		var te *TransitionError
		if !errors.As(err, &te) {
			t.Fatalf("%s -> scheduled: expected *TransitionError, got %v", from, err)
		}
		if !te.Terminal {
			t.Errorf("%s -> scheduled: error should be flagged terminal", from)
		}
	}

	// Non-terminal violations are not flagged terminal.
	err := CanTransition(entity.AppointmentScheduled, entity.AppointmentCompleted)
	var te *TransitionError
	if !errors.As(err, &te) {
		t.Fatalf("scheduled -> completed: expected *TransitionError, got %v", err)
	}
	if te.Terminal {
		t.Error("scheduled -> completed: should not be flagged terminal")
	}
}

func TestApplyTransitionRecordsStart(t *testing.T) {
	a := entity.Appointment{ID: uuid.New(), Status: entity.AppointmentScheduled}
	now := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)

	if err := ApplyTransition(&a, entity.AppointmentInProgress, now); err != nil {
		t.Fatalf("scheduled -> in_progress: %v", err)
	}
	if a.StartedAt == nil || !a.StartedAt.Equal(now) {
		t.Errorf("StartedAt = %v, want %v", a.StartedAt, now)
	}

	if err := ApplyTransition(&a, entity.AppointmentCompleted, now.Add(20*time.Minute)); err != nil {
		t.Fatalf("in_progress -> completed: %v", err)
	}
	if a.Status != entity.AppointmentCompleted {
		t.Errorf("status = %s, want completed", a.Status)
	}
}

func TestApplyTransitionRejectsWithoutMutating(t *testing.T) {
	a := entity.Appointment{ID: uuid.New(), Status: entity.AppointmentCompleted}

	err := ApplyTransition(&a, entity.AppointmentScheduled, time.Now())
	if err == nil {
		t.Fatal("completed -> scheduled should fail")
	}
	if a.Status != entity.AppointmentCompleted {
		t.Errorf("rejected transition mutated status to %s", a.Status)
	}
	if a.StartedAt != nil {
		t.Error("rejected transition set StartedAt")
	}
}

func TestApplyTransitionMidConsultCancel(t *testing.T) {
	// Patient leaves mid-consult: abnormal but allowed.
	a := entity.Appointment{ID: uuid.New(), Status: entity.AppointmentInProgress}
	if err := ApplyTransition(&a, entity.AppointmentCancelled, time.Now()); err != nil {
		t.Fatalf("in_progress -> cancelled: %v", err)
	}
}
