package usecase

import (
	"context"
	"errors"

	"github.com/akhileshroy86/healthcare-backend/internal/converter"
	"github.com/akhileshroy86/healthcare-backend/internal/delivery/dto"
	"github.com/akhileshroy86/healthcare-backend/internal/delivery/http/middleware"
	"github.com/akhileshroy86/healthcare-backend/internal/domain/entity"
	"github.com/akhileshroy86/healthcare-backend/internal/domain/repository"
	"github.com/akhileshroy86/healthcare-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPaymentNotFound          = errors.New("payment not found")
	ErrInvalidPaymentTransition = errors.New("invalid payment status transition")
	ErrInvalidPaymentAmount     = errors.New("payment amount must be positive")
)

type PaymentUsecase interface {
	RecordPayment(ctx context.Context, req *dto.RecordPaymentRequest) (*dto.PaymentResponse, error)
	UpdatePaymentStatus(ctx context.Context, paymentID uuid.UUID, req *dto.UpdatePaymentStatusRequest) (*dto.PaymentResponse, error)
	GetPaymentsByAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.PaymentListResponse, error)
}

type paymentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	paymentRepo     repository.PaymentRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewPaymentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	paymentRepo repository.PaymentRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) PaymentUsecase {
	return &paymentUsecase{
		db:              db,
		log:             log,
		paymentRepo:     paymentRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

// RecordPayment attaches a pending payment record to an appointment. Actual
// gateway settlement happens elsewhere; this system only tracks the record
// and its status.
func (u *paymentUsecase) RecordPayment(ctx context.Context, req *dto.RecordPaymentRequest) (*dto.PaymentResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrInvalidPaymentAmount
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	payment := &entity.Payment{
		AppointmentID: req.AppointmentID,
		Amount:        req.Amount,
		Method:        req.Method,
		Status:        entity.PaymentPending,
		Reference:     req.Reference,
	}

	if err := u.paymentRepo.Create(tx, payment); err != nil {
		u.log.Warnf("Failed to create payment: %+v", err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionPaymentRecord, "payment", payment.ID.String(), converter.PaymentToResponse(payment)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PaymentToResponse(payment), nil
}

func (u *paymentUsecase) UpdatePaymentStatus(ctx context.Context, paymentID uuid.UUID, req *dto.UpdatePaymentStatusRequest) (*dto.PaymentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	payment, err := u.paymentRepo.FindByID(tx, paymentID)
	if err != nil {
		u.log.Warnf("Failed to find payment: %+v", err)
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}

	next := entity.PaymentStatus(req.Status)
	if !payment.CanTransitionTo(next) {
		return nil, ErrInvalidPaymentTransition
	}

	oldValue := converter.PaymentToResponse(payment)
	payment.Status = next

	if err := u.paymentRepo.Update(tx, payment); err != nil {
		u.log.Warnf("Failed to update payment: %+v", err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionPaymentStatus, "payment", payment.ID.String(), oldValue, converter.PaymentToResponse(payment)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PaymentToResponse(payment), nil
}

func (u *paymentUsecase) GetPaymentsByAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.PaymentListResponse, error) {
	payments, err := u.paymentRepo.FindByAppointmentID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find payments: %+v", err)
		return nil, err
	}

	return &dto.PaymentListResponse{
		Payments: converter.PaymentsToResponses(payments),
		Total:    len(payments),
	}, nil
}
