package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type RecordPaymentRequest struct {
	AppointmentID uuid.UUID       `json:"appointment_id" validate:"required"`
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	Method        string          `json:"method" validate:"required,oneof=cash card upi"`
	Reference     string          `json:"reference" validate:"omitempty,max=100"`
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending paid refunded failed"`
}

// Response DTOs

type PaymentResponse struct {
	ID            uuid.UUID       `json:"id"`
	AppointmentID uuid.UUID       `json:"appointment_id"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	Status        string          `json:"status"`
	Reference     string          `json:"reference,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
	Total    int               `json:"total"`
}
