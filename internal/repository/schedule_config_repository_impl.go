package repository

import (
	"errors"

	"github.com/akhileshroy86/healthcare-backend/internal/domain/entity"
	domainRepo "github.com/akhileshroy86/healthcare-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type scheduleConfigRepository struct{}

func NewScheduleConfigRepository() domainRepo.ScheduleConfigRepository {
	return &scheduleConfigRepository{}
}

func (r *scheduleConfigRepository) Create(db *gorm.DB, config *entity.ScheduleConfig) error {
	return db.Create(config).Error
}

func (r *scheduleConfigRepository) FindByID(db *gorm.DB, id int) (*entity.ScheduleConfig, error) {
	var config entity.ScheduleConfig
	err := db.Preload("Doctor.User").Where("id = ?", id).First(&config).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &config, nil
}

// FindLatestByDoctorID returns the most recent config row for the doctor.
// Configs are append-only; older rows are kept as history.
func (r *scheduleConfigRepository) FindLatestByDoctorID(db *gorm.DB, doctorID uuid.UUID) (*entity.ScheduleConfig, error) {
	var config entity.ScheduleConfig
	err := db.Where("doctor_id = ?", doctorID).
		Order("created_at DESC, id DESC").
		First(&config).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &config, nil
}

func (r *scheduleConfigRepository) FindAllByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.ScheduleConfig, error) {
	var configs []entity.ScheduleConfig
	err := db.Where("doctor_id = ?", doctorID).
		Order("created_at DESC, id DESC").
		Find(&configs).Error
	if err != nil {
		return nil, err
	}
	return configs, nil
}

func (r *scheduleConfigRepository) FindAll(db *gorm.DB) ([]entity.ScheduleConfig, error) {
	var configs []entity.ScheduleConfig
	err := db.Preload("Doctor").Preload("Doctor.User").
		Order("doctor_id ASC, created_at DESC").
		Find(&configs).Error
	if err != nil {
		return nil, err
	}
	return configs, nil
}
