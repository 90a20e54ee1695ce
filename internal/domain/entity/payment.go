package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the status of a payment record
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
	PaymentFailed   PaymentStatus = "failed"
)

// PaymentMethod constants. Gateway protocol details live outside this system;
// the method is recorded as plain data.
const (
	PaymentMethodCash = "cash"
	PaymentMethodCard = "card"
	PaymentMethodUPI  = "upi"
)

// Payment is a payment record attached to an appointment.
type Payment struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AppointmentID uuid.UUID       `gorm:"type:uuid;not null;index" json:"appointment_id"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Method        string          `gorm:"type:varchar(20);not null" json:"method"`
	Status        PaymentStatus   `gorm:"type:payment_status;not null;default:'pending';index" json:"status"`
	Reference     string          `gorm:"type:varchar(100)" json:"reference,omitempty"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}

// CanTransitionTo reports whether the payment status may move to next.
// pending -> paid | failed, paid -> refunded. Refunded and failed are final.
func (p *Payment) CanTransitionTo(next PaymentStatus) bool {
	switch p.Status {
	case PaymentPending:
		return next == PaymentPaid || next == PaymentFailed
	case PaymentPaid:
		return next == PaymentRefunded
	}
	return false
}
