package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/akhileshroy86/healthcare-backend/internal/converter"
	"github.com/akhileshroy86/healthcare-backend/internal/delivery/dto"
	"github.com/akhileshroy86/healthcare-backend/internal/delivery/http/middleware"
	"github.com/akhileshroy86/healthcare-backend/internal/domain/entity"
	"github.com/akhileshroy86/healthcare-backend/internal/domain/repository"
	"github.com/akhileshroy86/healthcare-backend/internal/scheduling"
	"github.com/akhileshroy86/healthcare-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAppointmentNotOwned = errors.New("appointment does not belong to you")
	ErrNoScheduleConfig    = errors.New("doctor has no schedule configuration")
	ErrAppointmentPast     = errors.New("cannot book an appointment in the past")
	ErrInvalidStatus       = errors.New("invalid appointment status")
)

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetAppointments(ctx context.Context, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error)
	GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, appointmentID uuid.UUID) error
	UpdateStatus(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	configRepo      repository.ScheduleConfigRepository
	doctorRepo      repository.DoctorProfileRepository
	auditService    service.AuditService
	queueNotifier   *service.QueueNotifier
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	configRepo repository.ScheduleConfigRepository,
	doctorRepo repository.DoctorProfileRepository,
	auditService service.AuditService,
	queueNotifier *service.QueueNotifier,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		configRepo:      configRepo,
		doctorRepo:      doctorRepo,
		auditService:    auditService,
		queueNotifier:   queueNotifier,
	}
}

// BookAppointment validates the requested slot against the doctor's active
// configuration and books it.
//
// Flow:
// 1. Resolve doctor and active schedule config
// 2. Derive the slot's end time from the consultation duration
// 3. Open a transaction and take the doctor/day advisory lock
// 4. Re-check the slot against a snapshot read under that lock
// 5. Insert and commit
//
// The advisory lock in step 3 serializes bookings per doctor/day: the
// second of two racing patients blocks until the winner commits, then
// reads a snapshot that already contains the winner and gets a conflict
// rejection. Row locks alone would not cover the empty-day case, where
// there is no row to lock.
func (u *appointmentUsecase) BookAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	patientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if date.Before(today) {
		return nil, ErrAppointmentPast
	}

	start, err := scheduling.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return nil, err
	}

	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	config, err := u.configRepo.FindLatestByDoctorID(u.db.WithContext(ctx), req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find schedule config: %+v", err)
		return nil, err
	}
	if config == nil {
		return nil, ErrNoScheduleConfig
	}

	slot := scheduling.TimeRange{
		Start: start,
		End:   start + scheduling.TimeOfDay(config.ConsultationDuration),
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Serialize with other bookings for this doctor/day, then validate
	// against a snapshot read under the lock
	if err := u.appointmentRepo.LockDoctorDay(tx, req.DoctorID, date); err != nil {
		u.log.Warnf("Failed to lock doctor day %s/%s: %+v", req.DoctorID, req.Date, err)
		return nil, err
	}

	existing, err := u.appointmentRepo.FindBlockingForUpdate(tx, req.DoctorID, date)
	if err != nil {
		u.log.Warnf("Failed to lock appointments for doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}

	if err := scheduling.CheckSlot(config, existing, date, slot); err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		DoctorID:  req.DoctorID,
		PatientID: patientID,
		Date:      date,
		StartTime: slot.Start.String(),
		EndTime:   slot.End.String(),
		Status:    entity.AppointmentScheduled,
		Reason:    req.Reason,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &patientID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), converter.AppointmentToResponse(appointment)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.notifyQueueChange(ctx, config, appointment, service.QueueTriggerBooked)

	return converter.AppointmentToResponse(appointment), nil
}

// GetMyAppointments returns all appointments for the logged-in patient
func (u *appointmentUsecase) GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	patientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %s: %+v", patientID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetAppointments(ctx context.Context, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByFilter(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

// CancelAppointment cancels the logged-in patient's own appointment. The
// freed slot becomes bookable again immediately; remaining queue positions
// renumber on the next read.
func (u *appointmentUsecase) CancelAppointment(ctx context.Context, appointmentID uuid.UUID) error {
	patientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	if appointment.PatientID != patientID {
		return ErrAppointmentNotOwned
	}

	oldValue := converter.AppointmentToResponse(appointment)

	if err := scheduling.ApplyTransition(appointment, entity.AppointmentCancelled, time.Now()); err != nil {
		return err
	}

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &patientID, entity.AuditActionAppointmentStatus, "appointment", appointment.ID.String(), oldValue, converter.AppointmentToResponse(appointment)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.notifyQueueChange(ctx, nil, appointment, service.QueueTriggerCancelled)

	return nil
}

// UpdateStatus moves an appointment through its lifecycle. Doctors may only
// update their own appointments; staff and admins may update any.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}
	roleID, _ := middleware.GetRoleIDFromContext(ctx)

	next := entity.AppointmentStatus(req.Status)
	switch next {
	case entity.AppointmentScheduled, entity.AppointmentInProgress, entity.AppointmentCompleted,
		entity.AppointmentCancelled, entity.AppointmentNoShow:
	default:
		return nil, ErrInvalidStatus
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if roleID == entity.RoleIDDoctor && appointment.DoctorID != userID {
		return nil, ErrAppointmentNotOwned
	}

	oldValue := converter.AppointmentToResponse(appointment)

	if err := scheduling.ApplyTransition(appointment, next, time.Now()); err != nil {
		return nil, err
	}

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionAppointmentStatus, "appointment", appointment.ID.String(), oldValue, converter.AppointmentToResponse(appointment)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	trigger := service.QueueTriggerStatus
	if next == entity.AppointmentCancelled {
		trigger = service.QueueTriggerCancelled
	}
	u.notifyQueueChange(ctx, nil, appointment, trigger)

	return converter.AppointmentToResponse(appointment), nil
}

// notifyQueueChange publishes a best-effort queue event after a committed
// change. Failures are logged, never surfaced: the booking or status change
// already succeeded.
func (u *appointmentUsecase) notifyQueueChange(ctx context.Context, config *entity.ScheduleConfig, appointment *entity.Appointment, trigger string) {
	if u.queueNotifier == nil {
		return
	}

	if config == nil {
		var err error
		config, err = u.configRepo.FindLatestByDoctorID(u.db.WithContext(ctx), appointment.DoctorID)
		if err != nil || config == nil {
			u.log.Warnf("Skipping queue notification, no config for doctor %s: %+v", appointment.DoctorID, err)
			return
		}
	}

	appointments, err := u.appointmentRepo.FindByDoctorAndDate(u.db.WithContext(ctx), appointment.DoctorID, appointment.Date)
	if err != nil {
		u.log.Warnf("Skipping queue notification, snapshot failed for doctor %s: %+v", appointment.DoctorID, err)
		return
	}

	queue := scheduling.ComputeQueue(config, appointments, appointment.DoctorID, appointment.Date, time.Now())

	event := service.QueueChangedEvent{
		DoctorID:        appointment.DoctorID,
		Date:            appointment.Date.Format("2006-01-02"),
		AppointmentID:   appointment.ID,
		Trigger:         trigger,
		CurrentPosition: queue.CurrentPosition,
		QueueLength:     len(queue.Entries),
	}

	if err := u.queueNotifier.Publish(ctx, event); err != nil {
		u.log.Warnf("Failed to publish queue change: %+v", err)
	}
}
