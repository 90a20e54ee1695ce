package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ScheduleConfig is a doctor's weekly availability configuration.
// Rows are never deleted: the most recent row per doctor is authoritative,
// older rows stay behind as history (see ScheduleConfigRepository.FindLatestByDoctorID).
type ScheduleConfig struct {
	ID                   int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID             uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	AvailableDays        string    `gorm:"type:varchar(100);not null" json:"available_days"` // CSV of lowercase weekday names
	StartTime            string    `gorm:"type:varchar(5);not null" json:"start_time"`       // HH:MM, 24h
	EndTime              string    `gorm:"type:varchar(5);not null" json:"end_time"`
	LunchStart           *string   `gorm:"type:varchar(5)" json:"lunch_start,omitempty"`
	LunchEnd             *string   `gorm:"type:varchar(5)" json:"lunch_end,omitempty"`
	ConsultationDuration int       `gorm:"not null" json:"consultation_duration"` // minutes
	MaxPatientsPerDay    int       `gorm:"not null" json:"max_patients_per_day"`
	CreatedAt            time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor DoctorProfile `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (ScheduleConfig) TableName() string {
	return "schedule_configs"
}

// DayNames returns the configured weekday names, trimmed and lowercased.
// Normalization happens here, at the storage boundary, so business logic
// never has to care how the CSV was written.
func (c *ScheduleConfig) DayNames() []string {
	if c.AvailableDays == "" {
		return nil
	}
	parts := strings.Split(c.AvailableDays, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			names = append(names, p)
		}
	}
	return names
}

// HasLunchBreak reports whether both lunch bounds are set.
func (c *ScheduleConfig) HasLunchBreak() bool {
	return c.LunchStart != nil && c.LunchEnd != nil
}
