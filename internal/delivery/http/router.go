package http

import (
	"net/http"

	"github.com/akhileshroy86/healthcare-backend/internal/delivery/http/handler"
	"github.com/akhileshroy86/healthcare-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                *mux.Router
	authHandler           *handler.AuthHandler
	doctorHandler         *handler.DoctorHandler
	patientHandler        *handler.PatientHandler
	scheduleConfigHandler *handler.ScheduleConfigHandler
	appointmentHandler    *handler.AppointmentHandler
	queueHandler          *handler.QueueHandler
	paymentHandler        *handler.PaymentHandler
	reviewHandler         *handler.ReviewHandler
	auditLogHandler       *handler.AuditLogHandler
	authMiddleware        *middleware.AuthMiddleware
	corsMiddleware        *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	scheduleConfigHandler *handler.ScheduleConfigHandler,
	appointmentHandler *handler.AppointmentHandler,
	queueHandler *handler.QueueHandler,
	paymentHandler *handler.PaymentHandler,
	reviewHandler *handler.ReviewHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                mux.NewRouter(),
		authHandler:           authHandler,
		doctorHandler:         doctorHandler,
		patientHandler:        patientHandler,
		scheduleConfigHandler: scheduleConfigHandler,
		appointmentHandler:    appointmentHandler,
		queueHandler:          queueHandler,
		paymentHandler:        paymentHandler,
		reviewHandler:         reviewHandler,
		auditLogHandler:       auditLogHandler,
		authMiddleware:        authMiddleware,
		corsMiddleware:        corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/register/doctor", r.authHandler.RegisterDoctor).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Public browsing: doctors, their reviews and active schedules
	api.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{doctorId}/reviews", r.reviewHandler.GetDoctorReviews).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{doctorId}/schedule-config", r.scheduleConfigHandler.GetActiveConfig).Methods(http.MethodGet)

	// Patient routes (protected - patient only)
	patient := api.PathPrefix("/patient").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.Use(middleware.RequirePatient)
	patient.HandleFunc("/profile", r.patientHandler.GetMyProfile).Methods(http.MethodGet)
	patient.HandleFunc("/profile", r.patientHandler.UpdateMyProfile).Methods(http.MethodPut)
	patient.HandleFunc("/appointments", r.appointmentHandler.BookAppointment).Methods(http.MethodPost)
	patient.HandleFunc("/appointments", r.appointmentHandler.GetMyAppointments).Methods(http.MethodGet)
	patient.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.CancelAppointment).Methods(http.MethodPost)
	patient.HandleFunc("/reviews", r.reviewHandler.CreateReview).Methods(http.MethodPost)

	// Staff routes (protected - staff, doctor or admin): queue views and
	// appointment lifecycle at the front desk
	staff := api.PathPrefix("/staff").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)
	staff.Use(middleware.RequireStaff)
	staff.HandleFunc("/doctors/{doctorId}/queue", r.queueHandler.GetQueue).Methods(http.MethodGet)
	staff.HandleFunc("/doctors/{doctorId}/queue/snapshot", r.queueHandler.GetQueueSnapshot).Methods(http.MethodGet)
	staff.HandleFunc("/doctors/{doctorId}/queue/events", r.queueHandler.StreamQueue).Methods(http.MethodGet)
	staff.HandleFunc("/appointments", r.appointmentHandler.GetAppointments).Methods(http.MethodGet)
	staff.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	staff.HandleFunc("/appointments/{id}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPatch)

	// Payment routes (protected - admin or staff): doctors do not handle money
	payments := api.PathPrefix("/payments").Subrouter()
	payments.Use(r.authMiddleware.Authenticate)
	payments.Use(middleware.RequireAdminOrStaff)
	payments.HandleFunc("", r.paymentHandler.RecordPayment).Methods(http.MethodPost)
	payments.HandleFunc("/{id}/status", r.paymentHandler.UpdatePaymentStatus).Methods(http.MethodPatch)
	payments.HandleFunc("/appointment/{appointmentId}", r.paymentHandler.GetPaymentsByAppointment).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Doctor management (admin)
	admin.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)

	// Schedule config management (admin)
	admin.HandleFunc("/schedule-configs", r.scheduleConfigHandler.CreateConfig).Methods(http.MethodPost)
	admin.HandleFunc("/schedule-configs", r.scheduleConfigHandler.GetAllConfigs).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/{doctorId}/schedule-configs", r.scheduleConfigHandler.GetConfigHistory).Methods(http.MethodGet)

	// Audit trail (admin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
