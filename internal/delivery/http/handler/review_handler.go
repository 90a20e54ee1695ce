package handler

import (
	"encoding/json"
	"net/http"

	"github.com/akhileshroy86/healthcare-backend/internal/delivery/dto"
	"github.com/akhileshroy86/healthcare-backend/internal/usecase"
	"github.com/akhileshroy86/healthcare-backend/pkg/response"
	"github.com/akhileshroy86/healthcare-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ReviewHandler struct {
	reviewUsecase usecase.ReviewUsecase
	validator     *validator.CustomValidator
}

func NewReviewHandler(reviewUsecase usecase.ReviewUsecase, validator *validator.CustomValidator) *ReviewHandler {
	return &ReviewHandler{
		reviewUsecase: reviewUsecase,
		validator:     validator,
	}
}

func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	review, err := h.reviewUsecase.CreateReview(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrReviewDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrReviewWithoutVisit:
			response.Forbidden(w, "Reviews require a completed appointment with the doctor")
		case usecase.ErrReviewAlreadyExists:
			response.Error(w, http.StatusConflict, "You have already reviewed this doctor", nil)
		default:
			response.InternalServerError(w, "Failed to create review")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Review created successfully", review)
}

func (h *ReviewHandler) GetDoctorReviews(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	reviews, err := h.reviewUsecase.GetDoctorReviews(r.Context(), doctorID)
	if err != nil {
		response.InternalServerError(w, "Failed to get reviews")
		return
	}

	response.Success(w, http.StatusOK, "Reviews retrieved successfully", reviews)
}
