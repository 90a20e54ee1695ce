package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akhileshroy86/healthcare-backend/internal/converter"
	"github.com/akhileshroy86/healthcare-backend/internal/delivery/dto"
	"github.com/akhileshroy86/healthcare-backend/internal/domain/repository"
	"github.com/akhileshroy86/healthcare-backend/internal/scheduling"
	"github.com/akhileshroy86/healthcare-backend/internal/service"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrStoreUnavailable marks a failure to read the appointment store. The
// queue view must never be served from guesses, so callers surface this
// instead of degrading to stale or empty data.
var ErrStoreUnavailable = errors.New("appointment store unavailable")

type QueueUsecase interface {
	GetQueue(ctx context.Context, doctorID uuid.UUID, date string) (*dto.QueueResponse, error)
	GetQueueSnapshot(ctx context.Context, doctorID uuid.UUID, date string) (*service.QueueChangedEvent, error)
	SubscribeQueue(ctx context.Context, doctorID uuid.UUID, date string) (*redis.PubSub, error)
}

type queueUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	configRepo      repository.ScheduleConfigRepository
	doctorRepo      repository.DoctorProfileRepository
	queueNotifier   *service.QueueNotifier
}

func NewQueueUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	configRepo repository.ScheduleConfigRepository,
	doctorRepo repository.DoctorProfileRepository,
	queueNotifier *service.QueueNotifier,
) QueueUsecase {
	return &queueUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		configRepo:      configRepo,
		doctorRepo:      doctorRepo,
		queueNotifier:   queueNotifier,
	}
}

// GetQueue derives the doctor's queue for a date from a fresh snapshot of
// appointment rows. Nothing positional is read from storage: order, current
// position and wait estimates are computed on every call.
func (u *queueUsecase) GetQueue(ctx context.Context, doctorID uuid.UUID, date string) (*dto.QueueResponse, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	config, err := u.configRepo.FindLatestByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find schedule config: %+v", err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if config == nil {
		return nil, ErrNoScheduleConfig
	}

	appointments, err := u.appointmentRepo.FindByDoctorAndDate(u.db.WithContext(ctx), doctorID, day)
	if err != nil {
		u.log.Warnf("Failed to find appointments for doctor %s: %+v", doctorID, err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	queue := scheduling.ComputeQueue(config, appointments, doctorID, day, time.Now())

	// Resolve patient display names from the preloaded rows
	patientNames := make(map[uuid.UUID]string, len(appointments))
	for i := range appointments {
		if name := appointments[i].Patient.User.FullName; name != "" {
			patientNames[appointments[i].PatientID] = name
		}
	}

	return converter.QueueToResponse(&queue, patientNames), nil
}

// GetQueueSnapshot returns the last published queue-change event for a
// doctor/date, for display boards that only need the headline numbers.
// Returns nil when nothing has been published for that day yet.
func (u *queueUsecase) GetQueueSnapshot(ctx context.Context, doctorID uuid.UUID, date string) (*service.QueueChangedEvent, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrInvalidDateFormat
	}

	event, err := u.queueNotifier.LastSnapshot(ctx, doctorID, date)
	if err != nil {
		u.log.Warnf("Failed to read queue snapshot for doctor %s: %+v", doctorID, err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return event, nil
}

// SubscribeQueue opens a pub/sub subscription on the doctor/date queue
// channel. The caller owns the subscription and must Close it.
func (u *queueUsecase) SubscribeQueue(ctx context.Context, doctorID uuid.UUID, date string) (*redis.PubSub, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrInvalidDateFormat
	}
	return u.queueNotifier.Subscribe(ctx, doctorID, date), nil
}
