package converter

import (
	"github.com/akhileshroy86/healthcare-backend/internal/delivery/dto"
	"github.com/akhileshroy86/healthcare-backend/internal/scheduling"

	"github.com/google/uuid"
)

// QueueToResponse converts a derived queue to QueueResponse DTO.
// patientNames maps patient IDs to display names; entries without a
// mapping keep an empty name.
func QueueToResponse(queue *scheduling.Queue, patientNames map[uuid.UUID]string) *dto.QueueResponse {
	if queue == nil {
		return nil
	}

	entries := make([]dto.QueueEntryResponse, len(queue.Entries))
	for i, entry := range queue.Entries {
		entries[i] = dto.QueueEntryResponse{
			AppointmentID:        entry.AppointmentID,
			PatientID:            entry.PatientID,
			PatientName:          patientNames[entry.PatientID],
			Position:             entry.Position,
			Status:               string(entry.Status),
			StartTime:            entry.Start.String(),
			EndTime:              entry.End.String(),
			EstimatedWaitMinutes: entry.EstimatedWaitMinutes,
		}
	}

	return &dto.QueueResponse{
		DoctorID:        queue.DoctorID,
		Date:            queue.Date.Format("2006-01-02"),
		CurrentPosition: queue.CurrentPosition,
		Entries:         entries,
		Total:           len(entries),
	}
}
