package usecase

import (
	"context"
	"errors"
	"strings"

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

var ErrScheduleConfigNotFound = errors.New("schedule config not found")

type ScheduleConfigUsecase interface {
	CreateConfig(ctx context.Context, req *dto.CreateScheduleConfigRequest) (*dto.ScheduleConfigResponse, error)
	GetActiveConfig(ctx context.Context, doctorID uuid.UUID) (*dto.ScheduleConfigResponse, error)
	GetConfigHistory(ctx context.Context, doctorID uuid.UUID) (*dto.ScheduleConfigListResponse, error)
	GetAllConfigs(ctx context.Context) (*dto.ScheduleConfigListResponse, error)
}

type scheduleConfigUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	configRepo        repository.ScheduleConfigRepository
	doctorProfileRepo repository.DoctorProfileRepository
	auditService      service.AuditService
}

func NewScheduleConfigUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	configRepo repository.ScheduleConfigRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	auditService service.AuditService,
) ScheduleConfigUsecase {
	return &scheduleConfigUsecase{
		db:                db,
		log:               log,
		configRepo:        configRepo,
		doctorProfileRepo: doctorProfileRepo,
		auditService:      auditService,
	}
}

// CreateConfig stores a new availability configuration for a doctor. Configs
// are append-only: the new row supersedes the previous one for all future
// availability checks, while appointments booked under older configs keep
// their reserved times.
func (u *scheduleConfigUsecase) CreateConfig(ctx context.Context, req *dto.CreateScheduleConfigRequest) (*dto.ScheduleConfigResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorProfileRepo.FindByUserID(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	config := &entity.ScheduleConfig{
		DoctorID:             req.DoctorID,
		AvailableDays:        strings.Join(req.AvailableDays, ","),
		StartTime:            req.StartTime,
		EndTime:              req.EndTime,
		LunchStart:           req.LunchStart,
		LunchEnd:             req.LunchEnd,
		ConsultationDuration: req.ConsultationDuration,
		MaxPatientsPerDay:    req.MaxPatientsPerDay,
	}

	// Reject inconsistent configs before they can poison availability checks
	if err := scheduling.ValidateConfig(config); err != nil {
		return nil, err
	}

	// Distinguish first config from a superseding one for the audit trail
	previous, err := u.configRepo.FindLatestByDoctorID(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find previous schedule config: %+v", err)
		return nil, err
	}

	if err := u.configRepo.Create(tx, config); err != nil {
		u.log.Warnf("Failed to create schedule config: %+v", err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	action := entity.AuditActionScheduleCfgCreate
	if previous != nil {
		action = entity.AuditActionScheduleCfgUpdate
	}
	if err := u.auditService.LogUpdate(ctx, tx, &userID, action, "schedule_config", req.DoctorID.String(), converter.ScheduleConfigToResponse(previous), converter.ScheduleConfigToResponse(config)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ScheduleConfigToResponse(config), nil
}

func (u *scheduleConfigUsecase) GetActiveConfig(ctx context.Context, doctorID uuid.UUID) (*dto.ScheduleConfigResponse, error) {
	config, err := u.configRepo.FindLatestByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find schedule config: %+v", err)
		return nil, err
	}
	if config == nil {
		return nil, ErrScheduleConfigNotFound
	}

	return converter.ScheduleConfigToResponse(config), nil
}

func (u *scheduleConfigUsecase) GetConfigHistory(ctx context.Context, doctorID uuid.UUID) (*dto.ScheduleConfigListResponse, error) {
	configs, err := u.configRepo.FindAllByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find schedule configs: %+v", err)
		return nil, err
	}

	responses := converter.ScheduleConfigsToResponses(configs)

	return &dto.ScheduleConfigListResponse{
		Configs: responses,
		Total:   len(responses),
	}, nil
}

func (u *scheduleConfigUsecase) GetAllConfigs(ctx context.Context) (*dto.ScheduleConfigListResponse, error) {
	configs, err := u.configRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all schedule configs: %+v", err)
		return nil, err
	}

	responses := converter.ScheduleConfigsToResponses(configs)

	return &dto.ScheduleConfigListResponse{
		Configs: responses,
		Total:   len(responses),
	}, nil
}
