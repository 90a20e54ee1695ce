package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/akhileshroy86/healthcare-backend/internal/delivery/dto"
	"github.com/akhileshroy86/healthcare-backend/internal/domain/entity"
	"github.com/akhileshroy86/healthcare-backend/internal/scheduling"
	"github.com/akhileshroy86/healthcare-backend/internal/usecase"
	"github.com/akhileshroy86/healthcare-backend/pkg/response"
	"github.com/akhileshroy86/healthcare-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.BookAppointment(r.Context(), &req)
	if err != nil {
		var rejection *scheduling.SlotRejection
		switch {
		case errors.As(err, &rejection):
			body := dto.SlotRejectionResponse{Reason: string(rejection.Reason)}
			if rejection.ConflictsWith != uuid.Nil {
				body.ConflictsWith = rejection.ConflictsWith.String()
			}
			response.Error(w, http.StatusConflict, "Requested slot is not available", body)
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		case errors.Is(err, usecase.ErrNoScheduleConfig):
			response.Error(w, http.StatusConflict, "Doctor has no schedule configuration", nil)
		case errors.Is(err, usecase.ErrAppointmentPast):
			response.Error(w, http.StatusBadRequest, "Cannot book an appointment in the past", nil)
		case errors.Is(err, usecase.ErrInvalidDateFormat), errors.Is(err, scheduling.ErrInvalidTimeOfDay):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to book appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", appointment)
}

func (h *AppointmentHandler) GetMyAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetMyAppointments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) GetAppointments(w http.ResponseWriter, r *http.Request) {
	filter := &entity.AppointmentFilter{
		Date:   r.URL.Query().Get("date"),
		Status: entity.AppointmentStatus(r.URL.Query().Get("status")),
	}

	if raw := r.URL.Query().Get("doctor_id"); raw != "" {
		doctorID, err := uuid.Parse(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
			return
		}
		filter.DoctorID = doctorID
	}
	if raw := r.URL.Query().Get("patient_id"); raw != "" {
		patientID, err := uuid.Parse(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
			return
		}
		filter.PatientID = patientID
	}

	appointments, err := h.appointmentUsecase.GetAppointments(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointment, err := h.appointmentUsecase.GetAppointment(r.Context(), appointmentID)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to get appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	err = h.appointmentUsecase.CancelAppointment(r.Context(), appointmentID)
	if err != nil {
		var transition *scheduling.TransitionError
		switch {
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			response.NotFound(w, "Appointment not found")
		case errors.Is(err, usecase.ErrAppointmentNotOwned):
			response.Forbidden(w, "Appointment does not belong to you")
		case errors.As(err, &transition):
			response.Error(w, http.StatusConflict, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to cancel appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", nil)
}

func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.UpdateStatus(r.Context(), appointmentID, &req)
	if err != nil {
		var transition *scheduling.TransitionError
		switch {
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			response.NotFound(w, "Appointment not found")
		case errors.Is(err, usecase.ErrAppointmentNotOwned):
			response.Forbidden(w, "Appointment does not belong to you")
		case errors.Is(err, usecase.ErrInvalidStatus):
			response.Error(w, http.StatusBadRequest, "Invalid appointment status", nil)
		case errors.As(err, &transition):
			response.Error(w, http.StatusConflict, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update appointment status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment status updated successfully", appointment)
}
