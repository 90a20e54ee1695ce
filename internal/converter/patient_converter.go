package converter

import (
	"github.com/akhileshroy86/healthcare-backend/internal/delivery/dto"
	"github.com/akhileshroy86/healthcare-backend/internal/domain/entity"
)

// PatientProfileToResponse converts a PatientProfile entity to PatientResponse DTO
func PatientProfileToResponse(profile *entity.PatientProfile) *dto.PatientResponse {
	if profile == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:          profile.UserID,
		Email:       profile.User.Email,
		FullName:    profile.User.FullName,
		PhoneNumber: profile.PhoneNumber,
		DateOfBirth: profile.DateOfBirth.Format("2006-01-02"),
		Gender:      profile.Gender,
		Address:     profile.Address,
		IsActive:    profile.User.IsActive,
		CreatedAt:   profile.User.CreatedAt,
		UpdatedAt:   profile.User.UpdatedAt,
	}
}
