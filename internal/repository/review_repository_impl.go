package repository

import (
	"errors"

	"github.com/akhileshroy86/healthcare-backend/internal/domain/entity"
	domainRepo "github.com/akhileshroy86/healthcare-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type reviewRepository struct{}

func NewReviewRepository() domainRepo.ReviewRepository {
	return &reviewRepository{}
}

func (r *reviewRepository) Create(db *gorm.DB, review *entity.Review) error {
	return db.Create(review).Error
}

func (r *reviewRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Review, error) {
	var reviews []entity.Review
	err := db.Preload("Patient.User").
		Where("doctor_id = ?", doctorID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) FindByDoctorAndPatient(db *gorm.DB, doctorID, patientID uuid.UUID) (*entity.Review, error) {
	var review entity.Review
	err := db.Where("doctor_id = ? AND patient_id = ?", doctorID, patientID).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) AverageRatingByDoctor(db *gorm.DB, doctorID uuid.UUID) (float64, error) {
	var avg float64
	err := db.Model(&entity.Review{}).
		Select("COALESCE(AVG(rating), 0)").
		Where("doctor_id = ?", doctorID).
		Scan(&avg).Error
	return avg, err
}
