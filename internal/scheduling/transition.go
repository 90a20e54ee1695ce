package scheduling

import (
	"fmt"
	"time"

	"github.com/akhileshroy86/healthcare-backend/internal/domain/entity"
)

// TransitionError reports an illegal appointment status change.
type TransitionError struct {
	From entity.AppointmentStatus
	To   entity.AppointmentStatus
	// Terminal is true when the source status permits no transitions at all.
	Terminal bool
}

func (e *TransitionError) Error() string {
	if e.Terminal {
		return fmt.Sprintf("appointment status %q is terminal, cannot move to %q", e.From, e.To)
	}
	return fmt.Sprintf("invalid appointment status transition %q -> %q", e.From, e.To)
}

// validTransitions is the appointment status state machine:
//
//	scheduled   -> in_progress | cancelled | no_show
//	in_progress -> completed | cancelled
//
// completed, cancelled and no_show are terminal.
var validTransitions = map[entity.AppointmentStatus][]entity.AppointmentStatus{
	entity.AppointmentScheduled: {
		entity.AppointmentInProgress,
		entity.AppointmentCancelled,
		entity.AppointmentNoShow,
	},
	entity.AppointmentInProgress: {
		entity.AppointmentCompleted,
		entity.AppointmentCancelled,
	},
}

// CanTransition validates a status change against the state machine.
func CanTransition(from, to entity.AppointmentStatus) error {
	allowed, ok := validTransitions[from]
	if !ok {
		return &TransitionError{From: from, To: to, Terminal: true}
	}
	for _, s := range allowed {
		if s == to {
			return nil
		}
	}
	return &TransitionError{From: from, To: to}
}

// ApplyTransition validates and applies a status change in memory. Entering
// in_progress records the consultation start, which feeds the elapsed-time
// wait refinement in ComputeQueue. Queue positions are not touched: they are
// recomputed from scratch on the next read.
func ApplyTransition(appt *entity.Appointment, to entity.AppointmentStatus, asOf time.Time) error {
	if err := CanTransition(appt.Status, to); err != nil {
		return err
	}
	appt.Status = to
	if to == entity.AppointmentInProgress && appt.StartedAt == nil {
		started := asOf
		appt.StartedAt = &started
	}
	return nil
}
