package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/akhileshroy86/healthcare-backend/internal/delivery/dto"
	"github.com/akhileshroy86/healthcare-backend/internal/scheduling"
	"github.com/akhileshroy86/healthcare-backend/internal/usecase"
	"github.com/akhileshroy86/healthcare-backend/pkg/response"
	"github.com/akhileshroy86/healthcare-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ScheduleConfigHandler struct {
	configUsecase usecase.ScheduleConfigUsecase
	validator     *validator.CustomValidator
}

func NewScheduleConfigHandler(configUsecase usecase.ScheduleConfigUsecase, validator *validator.CustomValidator) *ScheduleConfigHandler {
	return &ScheduleConfigHandler{
		configUsecase: configUsecase,
		validator:     validator,
	}
}

func (h *ScheduleConfigHandler) CreateConfig(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateScheduleConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	config, err := h.configUsecase.CreateConfig(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		case isConfigValidationError(err):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create schedule config")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Schedule config created successfully", config)
}

func (h *ScheduleConfigHandler) GetActiveConfig(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	config, err := h.configUsecase.GetActiveConfig(r.Context(), doctorID)
	if err != nil {
		switch err {
		case usecase.ErrScheduleConfigNotFound:
			response.NotFound(w, "Schedule config not found")
		default:
			response.InternalServerError(w, "Failed to get schedule config")
		}
		return
	}

	response.Success(w, http.StatusOK, "Schedule config retrieved successfully", config)
}

func (h *ScheduleConfigHandler) GetConfigHistory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	configs, err := h.configUsecase.GetConfigHistory(r.Context(), doctorID)
	if err != nil {
		response.InternalServerError(w, "Failed to get schedule config history")
		return
	}

	response.Success(w, http.StatusOK, "Schedule config history retrieved successfully", configs)
}

func (h *ScheduleConfigHandler) GetAllConfigs(w http.ResponseWriter, r *http.Request) {
	configs, err := h.configUsecase.GetAllConfigs(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get schedule configs")
		return
	}

	response.Success(w, http.StatusOK, "Schedule configs retrieved successfully", configs)
}

// isConfigValidationError reports whether err is one of the schedule config
// consistency rules, all of which map to a 400 with the rule's message.
func isConfigValidationError(err error) bool {
	for _, target := range []error{
		scheduling.ErrNoAvailableDays,
		scheduling.ErrWindowInverted,
		scheduling.ErrLunchInverted,
		scheduling.ErrLunchOutsideHours,
		scheduling.ErrLunchHalfSet,
		scheduling.ErrInvalidDuration,
		scheduling.ErrInvalidCapacity,
		scheduling.ErrWindowTooShort,
		scheduling.ErrInvalidTimeOfDay,
		scheduling.ErrInvalidWeekday,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
