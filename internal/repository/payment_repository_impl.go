package repository

import (
	"errors"

	"github.com/akhileshroy86/healthcare-backend/internal/domain/entity"
	domainRepo "github.com/akhileshroy86/healthcare-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type paymentRepository struct{}

func NewPaymentRepository() domainRepo.PaymentRepository {
	return &paymentRepository{}
}

func (r *paymentRepository) Create(db *gorm.DB, payment *entity.Payment) error {
	return db.Create(payment).Error
}

func (r *paymentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Payment, error) {
	var payment entity.Payment
	err := db.Preload("Appointment").Where("id = ?", id).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := db.Where("appointment_id = ?", appointmentID).
		Order("created_at ASC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) Update(db *gorm.DB, payment *entity.Payment) error {
	return db.Omit("Appointment").Save(payment).Error
}
