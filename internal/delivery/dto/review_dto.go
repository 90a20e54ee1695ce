package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateReviewRequest struct {
	DoctorID uuid.UUID `json:"doctor_id" validate:"required"`
	Rating   int       `json:"rating" validate:"required,min=1,max=5"`
	Comment  string    `json:"comment" validate:"omitempty,max=1000"`
}

// Response DTOs

type ReviewResponse struct {
	ID          uuid.UUID `json:"id"`
	DoctorID    uuid.UUID `json:"doctor_id"`
	PatientID   uuid.UUID `json:"patient_id"`
	PatientName string    `json:"patient_name,omitempty"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ReviewListResponse struct {
	Reviews       []ReviewResponse `json:"reviews"`
	AverageRating float64          `json:"average_rating"`
	Total         int              `json:"total"`
}
