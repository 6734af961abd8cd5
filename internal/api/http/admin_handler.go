package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"scef-chapters-backend/internal/domain"
	"scef-chapters-backend/internal/service"
)

type AdminHandler struct {
	adminSvc   service.AdminService
	chapterSvc service.ChapterService
	upgradeSvc service.UpgradeService
}

func NewAdminHandler(adminSvc service.AdminService, chapterSvc service.ChapterService, upgradeSvc service.UpgradeService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc, chapterSvc: chapterSvc, upgradeSvc: upgradeSvc}
}

func (h *AdminHandler) GetQueue(w http.ResponseWriter, r *http.Request) {
	kind := domain.QueueKind(r.URL.Query().Get("kind"))
	items, err := h.adminSvc.GetQueue(r.Context(), kind)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *AdminHandler) DecideChapter(w http.ResponseWriter, r *http.Request) {
	var req decisionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	claims, _ := ClaimsFromContext(r.Context())
	ch, err := h.chapterSvc.DecideCreation(r.Context(), mux.Vars(r)["id"], req.Decision, claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ch)
}

func (h *AdminHandler) DecideUpgrade(w http.ResponseWriter, r *http.Request) {
	var req decisionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	claims, _ := ClaimsFromContext(r.Context())
	upgrade, err := h.upgradeSvc.DecideUpgrade(r.Context(), mux.Vars(r)["id"], req.Decision, claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, upgrade)
}

func (h *AdminHandler) ListAuditLog(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	entries, err := h.adminSvc.ListAuditLog(r.Context(), int32(limit))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
