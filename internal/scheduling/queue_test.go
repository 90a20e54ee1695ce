package scheduling

import (
	"reflect"
	"testing"
	"time"

	"github.com/akhileshroy86/healthcare-backend/internal/domain/entity"

	"github.com/google/uuid"
)

func apptAt(doctorID uuid.UUID, start, end string, status entity.AppointmentStatus, createdAt time.Time) entity.Appointment {
	a := appt(doctorID, monday, start, end, status)
	a.CreatedAt = createdAt
	return a
}

func TestComputeQueueScenario(t *testing.T) {
	// 09:00 completed, 09:30 in progress, 10:00 scheduled:
	// positions 1,2,3; current position 2; wait at position 3 is one slot.
	cfg := baseConfig()
	doctorID := uuid.New()
	created := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	appointments := []entity.Appointment{
		apptAt(doctorID, "09:00", "09:30", entity.AppointmentCompleted, created),
		apptAt(doctorID, "09:30", "10:00", entity.AppointmentInProgress, created.Add(time.Minute)),
		apptAt(doctorID, "10:00", "10:30", entity.AppointmentScheduled, created.Add(2*time.Minute)),
	}

	q := ComputeQueue(cfg, appointments, doctorID, monday, monday.Add(9*time.Hour+45*time.Minute))

	if len(q.Entries) != 3 {
		t.Fatalf("len(Entries) = %d, want 3", len(q.Entries))
	}
	for i, e := range q.Entries {
		if e.Position != i+1 {
			t.Errorf("entry %d: position = %d, want %d", i, e.Position, i+1)
		}
	}
	if q.CurrentPosition != 2 {
		t.Errorf("CurrentPosition = %d, want 2", q.CurrentPosition)
	}
	// No StartedAt recorded, so no elapsed-time refinement applies.
	if q.Entries[2].EstimatedWaitMinutes != 30 {
		t.Errorf("wait at position 3 = %d, want 30", q.Entries[2].EstimatedWaitMinutes)
	}
	if q.Entries[0].EstimatedWaitMinutes != 0 || q.Entries[1].EstimatedWaitMinutes != 0 {
		t.Errorf("completed/current entries should have zero wait, got %d and %d",
			q.Entries[0].EstimatedWaitMinutes, q.Entries[1].EstimatedWaitMinutes)
	}
}

func TestComputeQueueElapsedTimeRefinement(t *testing.T) {
	cfg := baseConfig()
	doctorID := uuid.New()
	created := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	startedAt := monday.Add(9*time.Hour + 30*time.Minute)
	inProgress := apptAt(doctorID, "09:30", "10:00", entity.AppointmentInProgress, created)
	inProgress.StartedAt = &startedAt

	appointments := []entity.Appointment{
		inProgress,
		apptAt(doctorID, "10:00", "10:30", entity.AppointmentScheduled, created.Add(time.Minute)),
		apptAt(doctorID, "10:30", "11:00", entity.AppointmentScheduled, created.Add(2*time.Minute)),
	}

	// 10 minutes into the current consultation.
	q := ComputeQueue(cfg, appointments, doctorID, monday, startedAt.Add(10*time.Minute))
	if got := q.Entries[1].EstimatedWaitMinutes; got != 20 {
		t.Errorf("position 2 wait = %d, want 20", got)
	}
	if got := q.Entries[2].EstimatedWaitMinutes; got != 50 {
		t.Errorf("position 3 wait = %d, want 50", got)
	}

	// A consultation running over its slot floors the next wait at zero.
	q = ComputeQueue(cfg, appointments, doctorID, monday, startedAt.Add(90*time.Minute))
	if got := q.Entries[1].EstimatedWaitMinutes; got != 0 {
		t.Errorf("overrun: position 2 wait = %d, want 0", got)
	}
}

func TestComputeQueueWaitMonotonic(t *testing.T) {
	cfg := baseConfig()
	doctorID := uuid.New()
	created := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	var appointments []entity.Appointment
	starts := []string{"09:00", "09:30", "10:00", "10:30", "11:00"}
	ends := []string{"09:30", "10:00", "10:30", "11:00", "11:30"}
	for i := range starts {
		appointments = append(appointments,
			apptAt(doctorID, starts[i], ends[i], entity.AppointmentScheduled, created.Add(time.Duration(i)*time.Minute)))
	}

	q := ComputeQueue(cfg, appointments, doctorID, monday, monday)
	for i := 1; i < len(q.Entries); i++ {
		if q.Entries[i].EstimatedWaitMinutes < q.Entries[i-1].EstimatedWaitMinutes {
			t.Errorf("wait not monotonic: position %d has %d, position %d has %d",
				i, q.Entries[i-1].EstimatedWaitMinutes, i+1, q.Entries[i].EstimatedWaitMinutes)
		}
	}
}

func TestComputeQueueFIFOTieBreak(t *testing.T) {
	// Two walk-ins sharing the 10:00 nominal slot: first created wins the
	// earlier position.
	cfg := baseConfig()
	doctorID := uuid.New()
	created := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	first := apptAt(doctorID, "10:00", "10:30", entity.AppointmentScheduled, created)
	second := apptAt(doctorID, "10:00", "10:30", entity.AppointmentScheduled, created.Add(time.Hour))

	// Feed them in reverse creation order; the queue must reorder by creation.
	q := ComputeQueue(cfg, []entity.Appointment{second, first}, doctorID, monday, monday)
	if q.Entries[0].AppointmentID != first.ID {
		t.Errorf("position 1 = %s, want first-created %s", q.Entries[0].AppointmentID, first.ID)
	}
	if q.Entries[1].AppointmentID != second.ID {
		t.Errorf("position 2 = %s, want second-created %s", q.Entries[1].AppointmentID, second.ID)
	}
}

func TestComputeQueueExcludesCancelledAndNoShow(t *testing.T) {
	cfg := baseConfig()
	doctorID := uuid.New()
	created := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	a := apptAt(doctorID, "09:00", "09:30", entity.AppointmentScheduled, created)
	b := apptAt(doctorID, "09:30", "10:00", entity.AppointmentCancelled, created.Add(time.Minute))
	c := apptAt(doctorID, "10:00", "10:30", entity.AppointmentNoShow, created.Add(2*time.Minute))
	d := apptAt(doctorID, "10:30", "11:00", entity.AppointmentScheduled, created.Add(3*time.Minute))

	q := ComputeQueue(cfg, []entity.Appointment{a, b, c, d}, doctorID, monday, monday)

	if len(q.Entries) != 2 {
		t.Fatalf("len(Entries) = %d, want 2", len(q.Entries))
	}
	// Cancellation removes entries without perturbing relative order, and
	// positions stay a contiguous 1..N.
	if q.Entries[0].AppointmentID != a.ID || q.Entries[1].AppointmentID != d.ID {
		t.Errorf("unexpected order: %s, %s", q.Entries[0].AppointmentID, q.Entries[1].AppointmentID)
	}
	if q.Entries[0].Position != 1 || q.Entries[1].Position != 2 {
		t.Errorf("positions = %d, %d; want 1, 2", q.Entries[0].Position, q.Entries[1].Position)
	}
}

func TestComputeQueuePositionsContiguous(t *testing.T) {
	cfg := baseConfig()
	doctorID := uuid.New()
	created := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	statuses := []entity.AppointmentStatus{
		entity.AppointmentCompleted,
		entity.AppointmentScheduled,
		entity.AppointmentCancelled,
		entity.AppointmentInProgress,
		entity.AppointmentScheduled,
		entity.AppointmentNoShow,
	}
	var appointments []entity.Appointment
	for i, st := range statuses {
		start := TimeOfDay(9*60 + i*30)
		end := start + 30
		appointments = append(appointments,
			apptAt(doctorID, start.String(), end.String(), st, created.Add(time.Duration(i)*time.Minute)))
	}

	q := ComputeQueue(cfg, appointments, doctorID, monday, monday)
	seen := map[int]bool{}
	for _, e := range q.Entries {
		if seen[e.Position] {
			t.Errorf("duplicate position %d", e.Position)
		}
		seen[e.Position] = true
	}
	for p := 1; p <= len(q.Entries); p++ {
		if !seen[p] {
			t.Errorf("missing position %d", p)
		}
	}
}

func TestComputeQueueAllCompleted(t *testing.T) {
	cfg := baseConfig()
	doctorID := uuid.New()
	created := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	appointments := []entity.Appointment{
		apptAt(doctorID, "09:00", "09:30", entity.AppointmentCompleted, created),
		apptAt(doctorID, "09:30", "10:00", entity.AppointmentCompleted, created.Add(time.Minute)),
	}

	q := ComputeQueue(cfg, appointments, doctorID, monday, monday)
	if q.CurrentPosition != 3 {
		t.Errorf("finished day: CurrentPosition = %d, want len+1 = 3", q.CurrentPosition)
	}
}

func TestComputeQueueIgnoresOtherDates(t *testing.T) {
	cfg := baseConfig()
	doctorID := uuid.New()
	created := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	today := apptAt(doctorID, "09:00", "09:30", entity.AppointmentScheduled, created)
	tomorrow := appt(doctorID, monday.AddDate(0, 0, 1), "09:00", "09:30", entity.AppointmentScheduled)
	tomorrow.CreatedAt = created

	q := ComputeQueue(cfg, []entity.Appointment{today, tomorrow}, doctorID, monday, monday)
	if len(q.Entries) != 1 || q.Entries[0].AppointmentID != today.ID {
		t.Errorf("queue should contain only the target date's appointments")
	}
}

func TestComputeQueueDeterministic(t *testing.T) {
	cfg := baseConfig()
	doctorID := uuid.New()
	created := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	asOf := monday.Add(10 * time.Hour)

	appointments := []entity.Appointment{
		apptAt(doctorID, "09:30", "10:00", entity.AppointmentScheduled, created.Add(time.Minute)),
		apptAt(doctorID, "09:00", "09:30", entity.AppointmentInProgress, created),
		apptAt(doctorID, "10:00", "10:30", entity.AppointmentScheduled, created.Add(2*time.Minute)),
	}

	first := ComputeQueue(cfg, appointments, doctorID, monday, asOf)
	second := ComputeQueue(cfg, appointments, doctorID, monday, asOf)
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different queues")
	}
}
