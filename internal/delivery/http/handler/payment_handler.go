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

type PaymentHandler struct {
	paymentUsecase usecase.PaymentUsecase
	validator      *validator.CustomValidator
}

func NewPaymentHandler(paymentUsecase usecase.PaymentUsecase, validator *validator.CustomValidator) *PaymentHandler {
	return &PaymentHandler{
		paymentUsecase: paymentUsecase,
		validator:      validator,
	}
}

func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	payment, err := h.paymentUsecase.RecordPayment(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrInvalidPaymentAmount:
			response.Error(w, http.StatusBadRequest, "Payment amount must be positive", nil)
		default:
			response.InternalServerError(w, "Failed to record payment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Payment recorded successfully", payment)
}

func (h *PaymentHandler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	paymentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid payment ID", nil)
		return
	}

	var req dto.UpdatePaymentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	payment, err := h.paymentUsecase.UpdatePaymentStatus(r.Context(), paymentID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPaymentNotFound:
			response.NotFound(w, "Payment not found")
		case usecase.ErrInvalidPaymentTransition:
			response.Error(w, http.StatusConflict, "Invalid payment status transition", nil)
		default:
			response.InternalServerError(w, "Failed to update payment status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Payment status updated successfully", payment)
}

func (h *PaymentHandler) GetPaymentsByAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["appointmentId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	payments, err := h.paymentUsecase.GetPaymentsByAppointment(r.Context(), appointmentID)
	if err != nil {
		response.InternalServerError(w, "Failed to get payments")
		return
	}

	response.Success(w, http.StatusOK, "Payments retrieved successfully", payments)
}
