package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentScheduled  AppointmentStatus = "scheduled"
	AppointmentInProgress AppointmentStatus = "in_progress"
	AppointmentCompleted  AppointmentStatus = "completed"
	AppointmentCancelled  AppointmentStatus = "cancelled"
	AppointmentNoShow     AppointmentStatus = "no_show"
)

// Appointment represents a booked consultation slot.
//
// Queue position and estimated wait are NOT stored here: they are derived on
// every read from status + time range by the scheduling package, so the status
// column stays the single source of truth.
type Appointment struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID  uuid.UUID         `gorm:"type:uuid;not null;index:idx_appointments_doctor_date" json:"doctor_id"`
	PatientID uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	Date      time.Time         `gorm:"type:date;not null;index:idx_appointments_doctor_date" json:"date"`
	StartTime string            `gorm:"type:varchar(5);not null" json:"start_time"` // HH:MM, 24h
	EndTime   string            `gorm:"type:varchar(5);not null" json:"end_time"`
	Status    AppointmentStatus `gorm:"type:appointment_status;not null;default:'scheduled';index" json:"status"`
	Reason    string            `gorm:"type:text" json:"reason,omitempty"`
	StartedAt *time.Time        `json:"started_at,omitempty"` // set when the consultation begins
	CreatedAt time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor  DoctorProfile  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsCancelled checks if the appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentCancelled
}

// IsTerminal reports whether no further status transition is permitted.
func (a *Appointment) IsTerminal() bool {
	switch a.Status {
	case AppointmentCompleted, AppointmentCancelled, AppointmentNoShow:
		return true
	}
	return false
}

// Blocks reports whether the appointment's time range blocks new bookings.
// Anything not cancelled holds its slot, including no-shows.
func (a *Appointment) Blocks() bool {
	return a.Status != AppointmentCancelled
}

// AppointmentFilter is a domain-level filter for querying appointments.
// Used by repository layer to avoid coupling with delivery DTOs.
type AppointmentFilter struct {
	DoctorID  uuid.UUID
	PatientID uuid.UUID
	Date      string // Format: YYYY-MM-DD
	Status    AppointmentStatus
}
