package converter

import (
	"github.com/akhileshroy86/healthcare-backend/internal/delivery/dto"
	"github.com/akhileshroy86/healthcare-backend/internal/domain/entity"
)

// ReviewToResponse converts a Review entity to ReviewResponse DTO
func ReviewToResponse(review *entity.Review) *dto.ReviewResponse {
	if review == nil {
		return nil
	}

	return &dto.ReviewResponse{
		ID:          review.ID,
		DoctorID:    review.DoctorID,
		PatientID:   review.PatientID,
		PatientName: review.Patient.User.FullName,
		Rating:      review.Rating,
		Comment:     review.Comment,
		CreatedAt:   review.CreatedAt,
	}
}

// ReviewsToResponses converts a slice of Review entities to slice of ReviewResponse DTOs
func ReviewsToResponses(reviews []entity.Review) []dto.ReviewResponse {
	responses := make([]dto.ReviewResponse, len(reviews))
	for i := range reviews {
		responses[i] = *ReviewToResponse(&reviews[i])
	}
	return responses
}
