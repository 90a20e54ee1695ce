package converter

import (
	"github.com/akhileshroy86/healthcare-backend/internal/delivery/dto"
	"github.com/akhileshroy86/healthcare-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:        appointment.ID,
		DoctorID:  appointment.DoctorID,
		PatientID: appointment.PatientID,
		Date:      appointment.Date.Format("2006-01-02"),
		StartTime: appointment.StartTime,
		EndTime:   appointment.EndTime,
		Status:    string(appointment.Status),
		Reason:    appointment.Reason,
		StartedAt: appointment.StartedAt,
		CreatedAt: appointment.CreatedAt,
		UpdatedAt: appointment.UpdatedAt,
	}

	// Include doctor and patient info if preloaded
	if appointment.Doctor.UserID != uuid.Nil {
		response.Doctor = DoctorProfileToResponse(&appointment.Doctor)
	}
	if appointment.Patient.UserID != uuid.Nil {
		response.Patient = PatientProfileToResponse(&appointment.Patient)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
