package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a patient's rating of a doctor. One review per patient/doctor pair,
// enforced by a unique index.
type Review struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_doctor_patient" json:"doctor_id"`
	PatientID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_doctor_patient" json:"patient_id"`
	Rating    int       `gorm:"not null" json:"rating"` // 1..5
	Comment   string    `gorm:"type:text" json:"comment,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor  DoctorProfile  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Review) TableName() string {
	return "reviews"
}
