package usecase

import (
	"context"
	"errors"

	"github.com/akhileshroy86/healthcare-backend/internal/converter"
	"github.com/akhileshroy86/healthcare-backend/internal/delivery/dto"
	"github.com/akhileshroy86/healthcare-backend/internal/domain/entity"
	"github.com/akhileshroy86/healthcare-backend/internal/domain/repository"
	"github.com/akhileshroy86/healthcare-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrPatientNotFound = errors.New("patient not found")

type PatientProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.PatientResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdatePatientProfileRequest) (*dto.PatientResponse, error)
}

type patientProfileUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	patientProfileRepo repository.PatientProfileRepository
	auditService       service.AuditService
}

func NewPatientProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientProfileRepo repository.PatientProfileRepository,
	auditService service.AuditService,
) PatientProfileUsecase {
	return &patientProfileUsecase{
		db:                 db,
		log:                log,
		patientProfileRepo: patientProfileRepo,
		auditService:       auditService,
	}
}

func (u *patientProfileUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.PatientResponse, error) {
	profile, err := u.patientProfileRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientProfileToResponse(profile), nil
}

func (u *patientProfileUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdatePatientProfileRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.patientProfileRepo.FindByUserID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrPatientNotFound
	}

	// Capture old value for audit
	oldValue := converter.PatientProfileToResponse(profile)

	if req.FullName != "" {
		profile.User.FullName = req.FullName
	}
	if req.PhoneNumber != "" {
		profile.PhoneNumber = req.PhoneNumber
	}
	if req.Address != "" {
		profile.Address = req.Address
	}

	if err := u.patientProfileRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update patient profile: %+v", err)
		return nil, err
	}

	newValue := converter.PatientProfileToResponse(profile)
	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionProfileUpdate, "patient_profile", userID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientProfileToResponse(profile), nil
}
