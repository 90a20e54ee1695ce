package dto

import (
	"github.com/google/uuid"
)

// Response DTOs

type QueueEntryResponse struct {
	AppointmentID        uuid.UUID `json:"appointment_id"`
	PatientID            uuid.UUID `json:"patient_id"`
	PatientName          string    `json:"patient_name,omitempty"`
	Position             int       `json:"position"`
	Status               string    `json:"status"`
	StartTime            string    `json:"start_time"`
	EndTime              string    `json:"end_time"`
	EstimatedWaitMinutes int       `json:"estimated_wait_minutes"`
}

type QueueResponse struct {
	DoctorID        uuid.UUID            `json:"doctor_id"`
	Date            string               `json:"date"`
	CurrentPosition int                  `json:"current_position"`
	Entries         []QueueEntryResponse `json:"entries"`
	Total           int                  `json:"total"`
}
