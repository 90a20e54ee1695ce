package repository

import (
	"github.com/akhileshroy86/healthcare-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(db *gorm.DB, payment *entity.Payment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Payment, error)
	FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) ([]entity.Payment, error)
	Update(db *gorm.DB, payment *entity.Payment) error
}
