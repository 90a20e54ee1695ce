package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/akhileshroy86/healthcare-backend/internal/usecase"
	"github.com/akhileshroy86/healthcare-backend/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type QueueHandler struct {
	queueUsecase usecase.QueueUsecase
}

func NewQueueHandler(queueUsecase usecase.QueueUsecase) *QueueHandler {
	return &QueueHandler{
		queueUsecase: queueUsecase,
	}
}

// GetQueue returns the derived queue for a doctor on a date. The date query
// parameter defaults to today.
func (h *QueueHandler) GetQueue(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	queue, err := h.queueUsecase.GetQueue(r.Context(), doctorID, date)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		case errors.Is(err, usecase.ErrNoScheduleConfig):
			response.Error(w, http.StatusConflict, "Doctor has no schedule configuration", nil)
		case errors.Is(err, usecase.ErrInvalidDateFormat):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, usecase.ErrStoreUnavailable):
			response.ServiceUnavailable(w, "Queue is temporarily unavailable")
		default:
			response.InternalServerError(w, "Failed to get queue")
		}
		return
	}

	response.Success(w, http.StatusOK, "Queue retrieved successfully", queue)
}

// GetQueueSnapshot returns the last published queue-change event for a
// doctor/date. Display boards poll this instead of recomputing the full
// queue on every refresh.
func (h *QueueHandler) GetQueueSnapshot(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	event, err := h.queueUsecase.GetQueueSnapshot(r.Context(), doctorID, date)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDateFormat):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, usecase.ErrStoreUnavailable):
			response.ServiceUnavailable(w, "Queue snapshot is temporarily unavailable")
		default:
			response.InternalServerError(w, "Failed to get queue snapshot")
		}
		return
	}
	if event == nil {
		response.NotFound(w, "No queue activity for this doctor and date")
		return
	}

	response.Success(w, http.StatusOK, "Queue snapshot retrieved successfully", event)
}

// StreamQueue streams queue-change events for a doctor/date as server-sent
// events until the client disconnects.
func (h *QueueHandler) StreamQueue(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming not supported")
		return
	}

	sub, err := h.queueUsecase.SubscribeQueue(r.Context(), doctorID, date)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDateFormat):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to subscribe to queue events")
		}
		return
	}
	defer sub.Close()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	events := sub.Channel()
	for {
		select {
		case <-r.Context().Done():
			return
		case msg, open := <-events:
			if !open {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg.Payload)
			flusher.Flush()
		}
	}
}
