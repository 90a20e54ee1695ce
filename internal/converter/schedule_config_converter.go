package converter

import (
	"github.com/akhileshroy86/healthcare-backend/internal/delivery/dto"
	"github.com/akhileshroy86/healthcare-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// ScheduleConfigToResponse converts a ScheduleConfig entity to ScheduleConfigResponse DTO
func ScheduleConfigToResponse(config *entity.ScheduleConfig) *dto.ScheduleConfigResponse {
	if config == nil {
		return nil
	}

	response := &dto.ScheduleConfigResponse{
		ID:                   config.ID,
		DoctorID:             config.DoctorID,
		AvailableDays:        config.DayNames(),
		StartTime:            config.StartTime,
		EndTime:              config.EndTime,
		LunchStart:           config.LunchStart,
		LunchEnd:             config.LunchEnd,
		ConsultationDuration: config.ConsultationDuration,
		MaxPatientsPerDay:    config.MaxPatientsPerDay,
		CreatedAt:            config.CreatedAt,
	}

	// Include doctor info if preloaded
	if config.Doctor.UserID != uuid.Nil {
		response.Doctor = DoctorProfileToResponse(&config.Doctor)
	}

	return response
}

// ScheduleConfigsToResponses converts a slice of ScheduleConfig entities to slice of ScheduleConfigResponse DTOs
func ScheduleConfigsToResponses(configs []entity.ScheduleConfig) []dto.ScheduleConfigResponse {
	responses := make([]dto.ScheduleConfigResponse, len(configs))
	for i := range configs {
		responses[i] = *ScheduleConfigToResponse(&configs[i])
	}
	return responses
}
