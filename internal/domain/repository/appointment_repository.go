package repository

import (
	"time"

	"github.com/akhileshroy86/healthcare-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	// FindByDoctorAndDate returns that doctor/day's appointments in creation
	// order, all statuses included; callers filter.
	FindByDoctorAndDate(db *gorm.DB, doctorID uuid.UUID, date time.Time) ([]entity.Appointment, error)
	// LockDoctorDay takes a transaction-scoped advisory lock on the
	// doctor/day pair. Booking transactions must acquire it before reading
	// their snapshot: it is what keeps two concurrent bookings from both
	// passing the availability check, including on a day with no committed
	// rows yet.
	LockDoctorDay(db *gorm.DB, doctorID uuid.UUID, date time.Time) error
	// FindBlockingForUpdate returns the doctor/day's non-cancelled
	// appointments with the rows locked. Must run inside a transaction,
	// after LockDoctorDay.
	FindBlockingForUpdate(db *gorm.DB, doctorID uuid.UUID, date time.Time) ([]entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	FindByFilter(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	CountCompletedByDoctorAndPatient(db *gorm.DB, doctorID, patientID uuid.UUID) (int64, error)
}
