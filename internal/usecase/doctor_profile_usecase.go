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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound     = errors.New("doctor not found")
	ErrDoctorEmailExists  = errors.New("email already exists")
	ErrDoctorRegNoExists  = errors.New("registration number already exists")
	ErrDoctorRoleNotFound = errors.New("role not found")
)

type DoctorProfileUsecase interface {
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	UpdateDoctor(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, doctorID uuid.UUID) error
}

type doctorProfileUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	userRepo          repository.UserRepository
	doctorProfileRepo repository.DoctorProfileRepository
	reviewRepo        repository.ReviewRepository
	auditService      service.AuditService
}

func NewDoctorProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	reviewRepo repository.ReviewRepository,
	auditService service.AuditService,
) DoctorProfileUsecase {
	return &doctorProfileUsecase{
		db:                db,
		log:               log,
		userRepo:          userRepo,
		doctorProfileRepo: doctorProfileRepo,
		reviewRepo:        reviewRepo,
		auditService:      auditService,
	}
}

func (u *doctorProfileUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	// Create user with doctor profile in single insert using GORM association
	doctorProfile := &entity.DoctorProfile{
		RegistrationNumber: req.RegistrationNumber,
		Specialization:     req.Specialization,
		Biography:          req.Biography,
		ConsultationFee:    req.ConsultationFee,
		User: entity.User{
			Email:    req.Email,
			Password: string(hashedPassword),
			FullName: req.FullName,
			RoleID:   entity.RoleIDDoctor,
		},
	}
	if err := u.doctorProfileRepo.Create(tx, doctorProfile); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		if isDuplicateKeyError(err, "email") {
			return nil, ErrDoctorEmailExists
		}
		if isDuplicateKeyError(err, "registration_number") {
			return nil, ErrDoctorRegNoExists
		}
		if isForeignKeyError(err, "role") {
			return nil, ErrDoctorRoleNotFound
		}
		return nil, err
	}

	// Audit log - create doctor
	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionDoctorCreate, "doctor_profile", doctorProfile.UserID.String(), converter.DoctorProfileToResponse(doctorProfile)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
		// Don't fail the transaction for audit log errors
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorProfileToResponse(doctorProfile), nil
}

func (u *doctorProfileUsecase) GetDoctor(ctx context.Context, userID uuid.UUID) (*dto.DoctorResponse, error) {
	profile, err := u.doctorProfileRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	response := converter.DoctorProfileToResponse(profile)

	rating, err := u.reviewRepo.AverageRatingByDoctor(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to compute average rating for doctor %s: %+v", userID, err)
	} else {
		response.AverageRating = rating
	}

	return response, nil
}

func (u *doctorProfileUsecase) GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	profiles, err := u.doctorProfileRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all doctor profiles: %+v", err)
		return nil, err
	}

	doctors := converter.DoctorProfilesToResponses(profiles)

	for i := range doctors {
		rating, err := u.reviewRepo.AverageRatingByDoctor(u.db.WithContext(ctx), doctors[i].ID)
		if err != nil {
			u.log.Warnf("Failed to compute average rating for doctor %s: %+v", doctors[i].ID, err)
			continue
		}
		doctors[i].AverageRating = rating
	}

	return &dto.DoctorListResponse{
		Doctors: doctors,
		Total:   len(doctors),
	}, nil
}

func (u *doctorProfileUsecase) UpdateDoctor(ctx context.Context, userID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.doctorProfileRepo.FindByUserID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	// Capture old value for audit
	oldValue := converter.DoctorProfileToResponse(profile)

	if req.Email != "" {
		profile.User.Email = req.Email
	}
	if req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		profile.User.Password = string(hashedPassword)
	}
	if req.FullName != "" {
		profile.User.FullName = req.FullName
	}
	if req.IsActive != nil {
		profile.User.IsActive = req.IsActive
	}
	if req.RegistrationNumber != "" {
		profile.RegistrationNumber = req.RegistrationNumber
	}
	if req.Specialization != "" {
		profile.Specialization = req.Specialization
	}
	if req.Biography != "" {
		profile.Biography = req.Biography
	}
	if req.ConsultationFee != nil {
		profile.ConsultationFee = *req.ConsultationFee
	}

	if err := u.doctorProfileRepo.Update(tx, profile); err != nil {
		if isDuplicateKeyError(err, "registration_number") {
			return nil, ErrDoctorRegNoExists
		}
		if isDuplicateKeyError(err, "email") {
			return nil, ErrDoctorEmailExists
		}
		u.log.Warnf("Failed to update doctor profile: %+v", err)
		return nil, err
	}

	// Audit log - update doctor
	newValue := converter.DoctorProfileToResponse(profile)
	ctxUserID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, &ctxUserID, entity.AuditActionDoctorUpdate, "doctor_profile", userID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorProfileToResponse(profile), nil
}

func (u *doctorProfileUsecase) DeleteDoctor(ctx context.Context, userID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Get doctor profile for audit log before delete
	profile, err := u.doctorProfileRepo.FindByUserID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return err
	}
	if profile == nil {
		return ErrDoctorNotFound
	}
	oldValue := converter.DoctorProfileToResponse(profile)

	affectedRows, err := u.userRepo.Delete(tx, userID)
	if err != nil {
		u.log.Warnf("Failed delete doctor: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrDoctorNotFound
	}

	// Audit log - delete doctor
	ctxUserID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, tx, &ctxUserID, entity.AuditActionDoctorDelete, "doctor_profile", userID.String(), oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
