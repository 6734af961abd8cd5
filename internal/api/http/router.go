package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

type RouterDeps struct {
	Auth       *AuthHandler
	Chapters   *ChapterHandler
	Membership *MembershipHandler
	Activities *ActivityHandler
	Admin      *AdminHandler
	Wallet     *WalletHandler
	Evidence   *EvidenceHandler
	Middleware *AuthMiddleware
}

// NewRouter wires every handler onto /api/v1. The route surface maps
// 1:1 onto the service operations.
func NewRouter(deps RouterDeps) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// Auth
	api.HandleFunc("/auth/register", deps.Auth.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", deps.Auth.Login).Methods(http.MethodPost)

	// Public chapter reads
	api.HandleFunc("/chapters", deps.Chapters.List).Methods(http.MethodGet)
	api.HandleFunc("/chapters/{idOrSlug}", deps.Chapters.Get).Methods(http.MethodGet)
	api.HandleFunc("/chapters/{id}/activities", deps.Activities.List).Methods(http.MethodGet)

	// Authenticated member/organizer operations
	authed := api.NewRoute().Subrouter()
	authed.Use(deps.Middleware.Require)
	authed.HandleFunc("/chapters", deps.Chapters.Create).Methods(http.MethodPost)
	authed.HandleFunc("/chapters/{id}/dashboard", deps.Chapters.Dashboard).Methods(http.MethodGet)
	authed.HandleFunc("/chapters/{id}/join", deps.Membership.RequestToJoin).Methods(http.MethodPost)
	authed.HandleFunc("/chapters/{id}/requests", deps.Membership.ListRequests).Methods(http.MethodGet)
	authed.HandleFunc("/join-requests/{id}/decision", deps.Membership.DecideJoin).Methods(http.MethodPost)
	authed.HandleFunc("/chapters/{id}/activities", deps.Activities.Record).Methods(http.MethodPost)
	authed.HandleFunc("/chapters/{id}/upgrade", deps.Chapters.RequestUpgrade).Methods(http.MethodPost)
	authed.HandleFunc("/chapters/{id}/upgrade", deps.Chapters.GetPendingUpgrade).Methods(http.MethodGet)
	authed.HandleFunc("/wallet", deps.Wallet.Get).Methods(http.MethodGet)
	authed.HandleFunc("/wallet/transactions", deps.Wallet.ListTransactions).Methods(http.MethodGet)
	authed.HandleFunc("/wallet/debit", deps.Wallet.Debit).Methods(http.MethodPost)
	authed.HandleFunc("/evidence/upload-url", deps.Evidence.CreateUploadURL).Methods(http.MethodPost)

	// Mock presigned endpoints; the URL itself is the credential.
	api.HandleFunc("/evidence/upload/{token}", deps.Evidence.HandleUpload).Methods(http.MethodPut)
	api.HandleFunc("/evidence/download", deps.Evidence.HandleDownload).Methods(http.MethodGet)

	// Admin review queue
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(deps.Middleware.RequireAdmin)
	admin.HandleFunc("/queue", deps.Admin.GetQueue).Methods(http.MethodGet)
	admin.HandleFunc("/chapters/{id}/decision", deps.Admin.DecideChapter).Methods(http.MethodPost)
	admin.HandleFunc("/upgrades/{id}/decision", deps.Admin.DecideUpgrade).Methods(http.MethodPost)
	admin.HandleFunc("/audit-logs", deps.Admin.ListAuditLog).Methods(http.MethodGet)

	return r
}
