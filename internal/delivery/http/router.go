package http

import (
	"net/http"

	"ime-admin-service/internal/delivery/http/handler"
	"ime-admin-service/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	examinerHandler     *handler.ExaminerHandler
	onboardingHandler   *handler.OnboardingHandler
	availabilityHandler *handler.AvailabilityHandler
	roleHandler         *handler.RoleHandler
	secureLinkHandler   *handler.SecureLinkHandler
	documentHandler     *handler.DocumentHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	examinerHandler *handler.ExaminerHandler,
	onboardingHandler *handler.OnboardingHandler,
	availabilityHandler *handler.AvailabilityHandler,
	roleHandler *handler.RoleHandler,
	secureLinkHandler *handler.SecureLinkHandler,
	documentHandler *handler.DocumentHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		examinerHandler:     examinerHandler,
		onboardingHandler:   onboardingHandler,
		availabilityHandler: availabilityHandler,
		roleHandler:         roleHandler,
		secureLinkHandler:   secureLinkHandler,
		documentHandler:     documentHandler,
		auditLogHandler:     auditLogHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Booking link verification (public, token-authenticated)
	api.HandleFunc("/booking/verify", r.secureLinkHandler.ConsumeSecureLink).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Examiner self-service routes (examiner or admin)
	examiner := api.PathPrefix("/examiners").Subrouter()
	examiner.Use(r.authMiddleware.Authenticate)
	examiner.Use(middleware.RequireAdminOrExaminer)
	examiner.HandleFunc("/{id}/onboarding", r.onboardingHandler.GetProgress).Methods(http.MethodGet)
	examiner.HandleFunc("/{id}/onboarding/steps", r.onboardingHandler.CompleteStep).Methods(http.MethodPost)
	examiner.HandleFunc("/{id}/onboarding/steps/{stepId}", r.onboardingHandler.UncompleteStep).Methods(http.MethodDelete)
	examiner.HandleFunc("/{id}/availability/weekly", r.availabilityHandler.SaveWeeklyHours).Methods(http.MethodPut)
	examiner.HandleFunc("/{id}/availability/weekly", r.availabilityHandler.GetWeeklyHours).Methods(http.MethodGet)
	examiner.HandleFunc("/{id}/availability/overrides", r.availabilityHandler.SaveOverrideHours).Methods(http.MethodPut)
	examiner.HandleFunc("/{id}/availability/overrides", r.availabilityHandler.GetOverrideHours).Methods(http.MethodGet)
	examiner.HandleFunc("/{id}/availability/overrides/{date}", r.availabilityHandler.DeleteOverrideHours).Methods(http.MethodDelete)
	examiner.HandleFunc("/{id}/documents", r.documentHandler.UploadDocument).Methods(http.MethodPost)
	examiner.HandleFunc("/{id}/documents", r.documentHandler.ListDocuments).Methods(http.MethodGet)
	examiner.HandleFunc("/{id}/documents/{documentId}/url", r.documentHandler.GetDownloadURL).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Examiner management (admin)
	admin.HandleFunc("/examiners", r.examinerHandler.CreateExaminer).Methods(http.MethodPost)
	admin.HandleFunc("/examiners", r.examinerHandler.GetAllExaminers).Methods(http.MethodGet)
	admin.HandleFunc("/examiners/{id}", r.examinerHandler.GetExaminer).Methods(http.MethodGet)
	admin.HandleFunc("/examiners/{id}/approve", r.examinerHandler.ApproveExaminer).Methods(http.MethodPost)
	admin.HandleFunc("/examiners/{id}/reject", r.examinerHandler.RejectExaminer).Methods(http.MethodPost)
	admin.HandleFunc("/examiners/{id}/suspend", r.examinerHandler.SuspendExaminer).Methods(http.MethodPost)
	admin.HandleFunc("/examiners/{id}/reactivate", r.examinerHandler.ReactivateExaminer).Methods(http.MethodPost)
	admin.HandleFunc("/examiners/{id}/toggle-status", r.examinerHandler.ToggleExaminerStatus).Methods(http.MethodPost)
	admin.HandleFunc("/examiners/{id}/resend-approval", r.examinerHandler.ResendApprovalEmail).Methods(http.MethodPost)
	admin.HandleFunc("/examiners/{id}/request-info", r.examinerHandler.RequestInfo).Methods(http.MethodPost)

	// Secure link issuing (admin)
	admin.HandleFunc("/secure-links", r.secureLinkHandler.CreateSecureLink).Methods(http.MethodPost)

	// Organization management (admin)
	admin.HandleFunc("/organizations/{orgId}/managers", r.roleHandler.ListManagers).Methods(http.MethodGet)
	admin.HandleFunc("/organizations/{orgId}/invitations", r.roleHandler.InviteManager).Methods(http.MethodPost)

	// Role management (super admin only)
	superAdmin := api.PathPrefix("/admin").Subrouter()
	superAdmin.Use(r.authMiddleware.Authenticate)
	superAdmin.Use(middleware.RequireSuperAdmin)
	superAdmin.HandleFunc("/roles/assign", r.roleHandler.AssignRole).Methods(http.MethodPost)
	superAdmin.HandleFunc("/roles/grants", r.roleHandler.GrantRoleException).Methods(http.MethodPost)

	// Audit trail (super admin only)
	superAdmin.HandleFunc("/audit-logs", r.auditLogHandler.ListAuditLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
