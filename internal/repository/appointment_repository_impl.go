package repository

import (
	"errors"
	"hash/fnv"
	"time"

	"github.com/akhileshroy86/healthcare-backend/internal/domain/entity"
	domainRepo "github.com/akhileshroy86/healthcare-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Doctor.User").Preload("Patient.User").
		Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByDoctorAndDate(db *gorm.DB, doctorID uuid.UUID, date time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Patient.User").
		Where("doctor_id = ? AND date = ?", doctorID, date.Format("2006-01-02")).
		Order("created_at ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// doctorDayLockKey derives the advisory lock key for a doctor/day pair.
// The date is truncated to the calendar day so every formatting of the
// same day maps to the same key.
func doctorDayLockKey(doctorID uuid.UUID, date time.Time) int64 {
	h := fnv.New64a()
	h.Write(doctorID[:])
	h.Write([]byte(date.Format("2006-01-02")))
	return int64(h.Sum64())
}

// LockDoctorDay takes a transaction-scoped advisory lock on the doctor/day
// pair. Row locks alone cannot serialize bookings on a day with no
// conflicting committed rows (there is nothing to lock), so every booking
// must acquire this lock before reading its snapshot. The lock releases
// on commit or rollback.
func (r *appointmentRepository) LockDoctorDay(db *gorm.DB, doctorID uuid.UUID, date time.Time) error {
	return db.Exec("SELECT pg_advisory_xact_lock(?)", doctorDayLockKey(doctorID, date)).Error
}

// FindBlockingForUpdate returns the doctor/day's non-cancelled rows with
// row locks held for the duration of the surrounding transaction. Callers
// must hold the doctor/day advisory lock (LockDoctorDay) first: the row
// locks only cover rows that already exist.
func (r *appointmentRepository) FindBlockingForUpdate(db *gorm.DB, doctorID uuid.UUID, date time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("doctor_id = ? AND date = ? AND status != ?",
			doctorID, date.Format("2006-01-02"), entity.AppointmentCancelled).
		Order("created_at ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Doctor.User").
		Where("patient_id = ?", patientID).
		Order("date DESC, start_time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByFilter(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	query := db.Preload("Doctor.User").Preload("Patient.User")

	if filter != nil {
		if filter.DoctorID != uuid.Nil {
			query = query.Where("doctor_id = ?", filter.DoctorID)
		}
		if filter.PatientID != uuid.Nil {
			query = query.Where("patient_id = ?", filter.PatientID)
		}
		if filter.Date != "" {
			query = query.Where("date = ?", filter.Date)
		}
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
	}

	var appointments []entity.Appointment
	err := query.Order("date ASC, start_time ASC, created_at ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Doctor", "Patient").Save(appointment).Error
}

func (r *appointmentRepository) CountCompletedByDoctorAndPatient(db *gorm.DB, doctorID, patientID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("doctor_id = ? AND patient_id = ? AND status = ?",
			doctorID, patientID, entity.AppointmentCompleted).
		Count(&count).Error
	return count, err
}
