package api

import (
	"net/http"

	"github.com/user/audit-scope/internal/adapter/api/handler"
)

// NewRouter creates and configures the main HTTP router for the audit API.
func NewRouter(auditHandler *handler.AuditHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/records", auditHandler.ListRecords)
	mux.HandleFunc("GET /api/v1/statistics", auditHandler.Statistics)
	mux.HandleFunc("GET /api/v1/risks", auditHandler.Risks)
	mux.HandleFunc("GET /api/v1/users/{browserId}", auditHandler.UserProfile)
	mux.HandleFunc("GET /api/v1/dashboard", auditHandler.Dashboard)

	// Health check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return mux
}
