package converter

import (
	"github.com/akhileshroy86/healthcare-backend/internal/delivery/dto"
	"github.com/akhileshroy86/healthcare-backend/internal/domain/entity"
)

// DoctorProfileToResponse converts a DoctorProfile entity to DoctorResponse DTO
func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.DoctorResponse {
	if profile == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:                 profile.UserID,
		Email:              profile.User.Email,
		FullName:           profile.User.FullName,
		RegistrationNumber: profile.RegistrationNumber,
		Specialization:     profile.Specialization,
		Biography:          profile.Biography,
		ConsultationFee:    profile.ConsultationFee,
		IsActive:           profile.User.IsActive,
	}
}

// DoctorProfilesToResponses converts a slice of DoctorProfile entities to slice of DoctorResponse DTOs
func DoctorProfilesToResponses(profiles []entity.DoctorProfile) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(profiles))
	for i := range profiles {
		responses[i] = *DoctorProfileToResponse(&profiles[i])
	}
	return responses
}
