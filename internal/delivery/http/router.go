package http

import (
	"net/http"

	"hospital-management-api/internal/delivery/http/handler"
	"hospital-management-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	userHandler        *handler.UserHandler
	patientHandler     *handler.PatientHandler
	doctorHandler      *handler.DoctorHandler
	appointmentHandler *handler.AppointmentHandler
	billingHandler     *handler.BillingHandler
	statsHandler       *handler.StatsHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
	loggingMiddleware  *middleware.LoggingMiddleware
	metricsMiddleware  *middleware.MetricsMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	appointmentHandler *handler.AppointmentHandler,
	billingHandler *handler.BillingHandler,
	statsHandler *handler.StatsHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	metricsMiddleware *middleware.MetricsMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		userHandler:        userHandler,
		patientHandler:     patientHandler,
		doctorHandler:      doctorHandler,
		appointmentHandler: appointmentHandler,
		billingHandler:     billingHandler,
		statsHandler:       statsHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
		loggingMiddleware:  loggingMiddleware,
		metricsMiddleware:  metricsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// User management (admin only)
	users := api.PathPrefix("/users").Subrouter()
	users.Use(r.authMiddleware.Authenticate)
	users.Use(middleware.RequireAdmin)
	users.HandleFunc("", r.userHandler.GetAll).Methods(http.MethodGet)
	users.HandleFunc("", r.userHandler.Create).Methods(http.MethodPost)
	users.HandleFunc("/{id}", r.userHandler.GetByID).Methods(http.MethodGet)
	users.HandleFunc("/{id}", r.userHandler.Update).Methods(http.MethodPut)
	users.HandleFunc("/{id}", r.userHandler.Delete).Methods(http.MethodDelete)

	// Patient management
	patients := api.PathPrefix("/patients").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)
	patients.HandleFunc("", r.patientHandler.GetAll).Methods(http.MethodGet)
	patients.HandleFunc("", r.patientHandler.Create).Methods(http.MethodPost)
	patients.HandleFunc("/{id}", r.patientHandler.GetByID).Methods(http.MethodGet)
	patients.HandleFunc("/{id}", r.patientHandler.Update).Methods(http.MethodPut)
	patients.HandleFunc("/{id}", r.patientHandler.Delete).Methods(http.MethodDelete)

	// Doctor management
	doctors := api.PathPrefix("/doctors").Subrouter()
	doctors.Use(r.authMiddleware.Authenticate)
	doctors.HandleFunc("", r.doctorHandler.GetAll).Methods(http.MethodGet)
	doctors.HandleFunc("", r.doctorHandler.Create).Methods(http.MethodPost)
	doctors.HandleFunc("/{id}", r.doctorHandler.GetByID).Methods(http.MethodGet)
	doctors.HandleFunc("/{id}", r.doctorHandler.Update).Methods(http.MethodPut)
	doctors.HandleFunc("/{id}", r.doctorHandler.Delete).Methods(http.MethodDelete)

	// Appointment management. Filter routes are registered before the {id}
	// routes so "date" is never matched as an appointment id.
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.HandleFunc("", r.appointmentHandler.GetAll).Methods(http.MethodGet)
	appointments.HandleFunc("", r.appointmentHandler.Create).Methods(http.MethodPost)
	appointments.HandleFunc("/date/{date}", r.appointmentHandler.GetByDate).Methods(http.MethodGet)
	appointments.HandleFunc("/doctor/{doctorId}", r.appointmentHandler.GetByDoctor).Methods(http.MethodGet)
	appointments.HandleFunc("/patient/{patientId}", r.appointmentHandler.GetByPatient).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.GetByID).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.Update).Methods(http.MethodPut)
	appointments.HandleFunc("/{id}", r.appointmentHandler.Delete).Methods(http.MethodDelete)

	// Billing
	billing := api.PathPrefix("/billing").Subrouter()
	billing.Use(r.authMiddleware.Authenticate)
	billing.HandleFunc("", r.billingHandler.GetAll).Methods(http.MethodGet)
	billing.HandleFunc("", r.billingHandler.Create).Methods(http.MethodPost)
	billing.HandleFunc("/patient/{patientId}", r.billingHandler.GetByPatient).Methods(http.MethodGet)
	billing.HandleFunc("/{id}", r.billingHandler.GetByID).Methods(http.MethodGet)
	billing.HandleFunc("/{id}", r.billingHandler.Update).Methods(http.MethodPut)
	billing.HandleFunc("/{id}", r.billingHandler.Delete).Methods(http.MethodDelete)

	// Dashboard stats
	stats := api.PathPrefix("/stats").Subrouter()
	stats.Use(r.authMiddleware.Authenticate)
	stats.HandleFunc("/dashboard", r.statsHandler.GetDashboardStats).Methods(http.MethodGet)

	// Prometheus metrics
	r.router.Handle("/metrics", r.metricsMiddleware.Handler()).Methods(http.MethodGet)

	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.metricsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
