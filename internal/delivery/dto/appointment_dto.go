package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	DoctorID  uuid.UUID `json:"doctor_id" validate:"required"`
	Date      string    `json:"date" validate:"required"`       // Format: YYYY-MM-DD
	StartTime string    `json:"start_time" validate:"required"` // Format: HH:MM
	Reason    string    `json:"reason" validate:"omitempty,max=500"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled in_progress completed cancelled no_show"`
}

// Response DTOs

type AppointmentResponse struct {
	ID        uuid.UUID        `json:"id"`
	DoctorID  uuid.UUID        `json:"doctor_id"`
	Doctor    *DoctorResponse  `json:"doctor,omitempty"`
	PatientID uuid.UUID        `json:"patient_id"`
	Patient   *PatientResponse `json:"patient,omitempty"`
	Date      string           `json:"date"`
	StartTime string           `json:"start_time"`
	EndTime   string           `json:"end_time"`
	Status    string           `json:"status"`
	Reason    string           `json:"reason,omitempty"`
	StartedAt *time.Time       `json:"started_at,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// SlotRejectionResponse explains why a requested slot was refused.
type SlotRejectionResponse struct {
	Reason        string `json:"reason"`
	ConflictsWith string `json:"conflicts_with,omitempty"`
}
