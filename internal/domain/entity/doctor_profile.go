package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DoctorProfile represents doctor-specific profile data
type DoctorProfile struct {
	UserID             uuid.UUID       `gorm:"type:uuid;primaryKey" json:"user_id"`
	RegistrationNumber string          `gorm:"column:registration_number;type:varchar(50);uniqueIndex;not null" json:"registration_number"`
	Specialization     string          `gorm:"type:varchar(100);not null;index" json:"specialization"`
	Biography          string          `gorm:"type:text" json:"biography,omitempty"`
	ConsultationFee    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"consultation_fee"`

	// Relationships
	User            User             `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ScheduleConfigs []ScheduleConfig `gorm:"foreignKey:DoctorID" json:"schedule_configs,omitempty"`
	Appointments    []Appointment    `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
