package repository

import (
	"github.com/akhileshroy86/healthcare-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScheduleConfigRepository interface {
	Create(db *gorm.DB, config *entity.ScheduleConfig) error
	FindByID(db *gorm.DB, id int) (*entity.ScheduleConfig, error)
	// FindLatestByDoctorID returns the authoritative (most recently created)
	// config for a doctor, or nil when none exists.
	FindLatestByDoctorID(db *gorm.DB, doctorID uuid.UUID) (*entity.ScheduleConfig, error)
	FindAllByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.ScheduleConfig, error)
	FindAll(db *gorm.DB) ([]entity.ScheduleConfig, error)
}
