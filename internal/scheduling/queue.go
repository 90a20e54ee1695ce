package scheduling

import (
	"sort"
	"time"

	"github.com/akhileshroy86/healthcare-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// QueueEntry is one appointment's place in a doctor's daily queue.
type QueueEntry struct {
	AppointmentID        uuid.UUID
	PatientID            uuid.UUID
	Position             int // 1-based
	Status               entity.AppointmentStatus
	Start                TimeOfDay
	End                  TimeOfDay
	EstimatedWaitMinutes int
}

// Queue is the derived ordering of a doctor's day. It is never persisted;
// call ComputeQueue on a fresh snapshot whenever it is needed.
type Queue struct {
	DoctorID uuid.UUID
	Date     time.Time
	Entries  []QueueEntry
	// CurrentPosition is the 1-based rank of the first appointment still
	// waiting or in progress. len(Entries)+1 means the day is finished.
	CurrentPosition int
}

// ComputeQueue derives the ordered queue for a doctor/date from a snapshot of
// appointments. Cancelled and no-show appointments are excluded from
// positional numbering; completed ones keep their position so the day's
// history stays contiguous.
//
// Ordering: ascending start time, ties broken by creation order (first
// created wins the earlier position, FIFO for walk-ins sharing a nominal
// slot), then by id for full determinism.
//
// Wait estimation: position offset from CurrentPosition times the consultation
// duration. If the current appointment is in progress and its start was
// recorded, the elapsed minutes as of asOf are subtracted, floored at zero.
func ComputeQueue(cfg *entity.ScheduleConfig, appointments []entity.Appointment, doctorID uuid.UUID, date time.Time, asOf time.Time) Queue {
	type member struct {
		appt  *entity.Appointment
		start TimeOfDay
	}

	y, m, d := date.Date()
	members := make([]member, 0, len(appointments))
	for i := range appointments {
		appt := &appointments[i]
		ay, am, ad := appt.Date.Date()
		if ay != y || am != m || ad != d {
			continue
		}
		switch appt.Status {
		case entity.AppointmentScheduled, entity.AppointmentInProgress, entity.AppointmentCompleted:
		default:
			continue
		}
		start, err := ParseTimeOfDay(appt.StartTime)
		if err != nil {
			// Corrupt rows sort to the front rather than vanishing from
			// the queue view.
			start = 0
		}
		members = append(members, member{appt: appt, start: start})
	}

	sort.SliceStable(members, func(i, j int) bool {
		if members[i].start != members[j].start {
			return members[i].start < members[j].start
		}
		if !members[i].appt.CreatedAt.Equal(members[j].appt.CreatedAt) {
			return members[i].appt.CreatedAt.Before(members[j].appt.CreatedAt)
		}
		return members[i].appt.ID.String() < members[j].appt.ID.String()
	})

	queue := Queue{
		DoctorID:        doctorID,
		Date:            date,
		Entries:         make([]QueueEntry, len(members)),
		CurrentPosition: len(members) + 1,
	}

	for i, mb := range members {
		pos := i + 1
		if queue.CurrentPosition == len(members)+1 && mb.appt.Status != entity.AppointmentCompleted {
			queue.CurrentPosition = pos
		}
		end, err := ParseTimeOfDay(mb.appt.EndTime)
		if err != nil {
			end = mb.start
		}
		queue.Entries[i] = QueueEntry{
			AppointmentID: mb.appt.ID,
			PatientID:     mb.appt.PatientID,
			Position:      pos,
			Status:        mb.appt.Status,
			Start:         mb.start,
			End:           end,
		}
	}

	// Minutes already spent on the current consultation, capped at one
	// full slot so later waits never go negative.
	elapsed := 0
	if queue.CurrentPosition <= len(members) {
		current := members[queue.CurrentPosition-1].appt
		if current.Status == entity.AppointmentInProgress && current.StartedAt != nil {
			elapsed = int(asOf.Sub(*current.StartedAt).Minutes())
			if elapsed < 0 {
				elapsed = 0
			}
			if elapsed > cfg.ConsultationDuration {
				elapsed = cfg.ConsultationDuration
			}
		}
	}

	for i := range queue.Entries {
		offset := queue.Entries[i].Position - queue.CurrentPosition
		if offset <= 0 {
			continue
		}
		wait := offset*cfg.ConsultationDuration - elapsed
		if wait < 0 {
			wait = 0
		}
		queue.Entries[i].EstimatedWaitMinutes = wait
	}

	return queue
}
