package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"scef-chapters-backend/internal/domain"
	"scef-chapters-backend/internal/service"
)

type MembershipHandler struct {
	membershipSvc service.MembershipService
}

func NewMembershipHandler(membershipSvc service.MembershipService) *MembershipHandler {
	return &MembershipHandler{membershipSvc: membershipSvc}
}

type joinRequest struct {
	Interests         []string                 `json:"interests"`
	ParticipationRole domain.ParticipationRole `json:"participation_role"`
}

func (h *MembershipHandler) RequestToJoin(w http.ResponseWriter, r *http.Request) {
	var req joinRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ParticipationRole == "" {
		req.ParticipationRole = domain.ParticipationRoleMember
	}
	claims, _ := ClaimsFromContext(r.Context())
	jr, err := h.membershipSvc.RequestToJoin(r.Context(), mux.Vars(r)["id"], claims.UserID, req.Interests, req.ParticipationRole)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, jr)
}

type decisionRequest struct {
	Decision service.Decision `json:"decision"`
}

func (h *MembershipHandler) DecideJoin(w http.ResponseWriter, r *http.Request) {
	var req decisionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	claims, _ := ClaimsFromContext(r.Context())
	jr, err := h.membershipSvc.DecideJoin(r.Context(), mux.Vars(r)["id"], req.Decision, claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, jr)
}

func (h *MembershipHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	status := domain.JoinRequestStatus(r.URL.Query().Get("status"))
	reqs, err := h.membershipSvc.ListRequests(r.Context(), mux.Vars(r)["id"], status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reqs)
}
