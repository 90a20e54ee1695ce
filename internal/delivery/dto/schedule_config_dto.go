package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateScheduleConfigRequest struct {
	DoctorID             uuid.UUID `json:"doctor_id" validate:"required"`
	AvailableDays        []string  `json:"available_days" validate:"required,min=1,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	StartTime            string    `json:"start_time" validate:"required"` // Format: HH:MM
	EndTime              string    `json:"end_time" validate:"required"`   // Format: HH:MM
	LunchStart           *string   `json:"lunch_start" validate:"omitempty"`
	LunchEnd             *string   `json:"lunch_end" validate:"omitempty"`
	ConsultationDuration int       `json:"consultation_duration" validate:"required,min=1"`
	MaxPatientsPerDay    int       `json:"max_patients_per_day" validate:"required,min=1"`
}

// Response DTOs

type ScheduleConfigResponse struct {
	ID                   int             `json:"id"`
	DoctorID             uuid.UUID       `json:"doctor_id"`
	Doctor               *DoctorResponse `json:"doctor,omitempty"`
	AvailableDays        []string        `json:"available_days"`
	StartTime            string          `json:"start_time"`
	EndTime              string          `json:"end_time"`
	LunchStart           *string         `json:"lunch_start,omitempty"`
	LunchEnd             *string         `json:"lunch_end,omitempty"`
	ConsultationDuration int             `json:"consultation_duration"`
	MaxPatientsPerDay    int             `json:"max_patients_per_day"`
	CreatedAt            time.Time       `json:"created_at"`
}

type ScheduleConfigListResponse struct {
	Configs []ScheduleConfigResponse `json:"configs"`
	Total   int                      `json:"total"`
}
