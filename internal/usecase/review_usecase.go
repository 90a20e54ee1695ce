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
	ErrReviewAlreadyExists  = errors.New("you have already reviewed this doctor")
	ErrReviewWithoutVisit   = errors.New("reviews require a completed appointment with the doctor")
	ErrReviewDoctorNotFound = errors.New("doctor not found")
)

type ReviewUsecase interface {
	CreateReview(ctx context.Context, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	GetDoctorReviews(ctx context.Context, doctorID uuid.UUID) (*dto.ReviewListResponse, error)
}

type reviewUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	reviewRepo      repository.ReviewRepository
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorProfileRepository
	auditService    service.AuditService
}

func NewReviewUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	reviewRepo repository.ReviewRepository,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorProfileRepository,
	auditService service.AuditService,
) ReviewUsecase {
	return &reviewUsecase{
		db:              db,
		log:             log,
		reviewRepo:      reviewRepo,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		auditService:    auditService,
	}
}

// CreateReview records a patient's rating of a doctor. A review requires at
// least one completed appointment between the pair, and each pair gets at
// most one review.
func (u *reviewUsecase) CreateReview(ctx context.Context, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	patientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByUserID(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrReviewDoctorNotFound
	}

	completed, err := u.appointmentRepo.CountCompletedByDoctorAndPatient(tx, req.DoctorID, patientID)
	if err != nil {
		u.log.Warnf("Failed to count completed appointments: %+v", err)
		return nil, err
	}
	if completed == 0 {
		return nil, ErrReviewWithoutVisit
	}

	existing, err := u.reviewRepo.FindByDoctorAndPatient(tx, req.DoctorID, patientID)
	if err != nil {
		u.log.Warnf("Failed to check existing review: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrReviewAlreadyExists
	}

	review := &entity.Review{
		DoctorID:  req.DoctorID,
		PatientID: patientID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	if err := u.reviewRepo.Create(tx, review); err != nil {
		// The unique index backs up the existence check under concurrency
		if isDuplicateKeyError(err, "doctor_patient") {
			return nil, ErrReviewAlreadyExists
		}
		u.log.Warnf("Failed to create review: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &patientID, entity.AuditActionReviewCreate, "review", review.ID.String(), converter.ReviewToResponse(review)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ReviewToResponse(review), nil
}

func (u *reviewUsecase) GetDoctorReviews(ctx context.Context, doctorID uuid.UUID) (*dto.ReviewListResponse, error) {
	reviews, err := u.reviewRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find reviews: %+v", err)
		return nil, err
	}

	average, err := u.reviewRepo.AverageRatingByDoctor(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to compute average rating: %+v", err)
		return nil, err
	}

	return &dto.ReviewListResponse{
		Reviews:       converter.ReviewsToResponses(reviews),
		AverageRating: average,
		Total:         len(reviews),
	}, nil
}
