package converter

import (
	"github.com/akhileshroy86/healthcare-backend/internal/delivery/dto"
	"github.com/akhileshroy86/healthcare-backend/internal/domain/entity"
)

// PaymentToResponse converts a Payment entity to PaymentResponse DTO
func PaymentToResponse(payment *entity.Payment) *dto.PaymentResponse {
	if payment == nil {
		return nil
	}

	return &dto.PaymentResponse{
		ID:            payment.ID,
		AppointmentID: payment.AppointmentID,
		Amount:        payment.Amount,
		Method:        payment.Method,
		Status:        string(payment.Status),
		Reference:     payment.Reference,
		CreatedAt:     payment.CreatedAt,
		UpdatedAt:     payment.UpdatedAt,
	}
}

// PaymentsToResponses converts a slice of Payment entities to slice of PaymentResponse DTOs
func PaymentsToResponses(payments []entity.Payment) []dto.PaymentResponse {
	responses := make([]dto.PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = *PaymentToResponse(&payments[i])
	}
	return responses
}
