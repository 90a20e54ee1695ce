package repository

import (
	"github.com/akhileshroy86/healthcare-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(db *gorm.DB, review *entity.Review) error
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Review, error)
	FindByDoctorAndPatient(db *gorm.DB, doctorID, patientID uuid.UUID) (*entity.Review, error)
	AverageRatingByDoctor(db *gorm.DB, doctorID uuid.UUID) (float64, error)
}
