package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"scef-chapters-backend/internal/service"
)

type ActivityHandler struct {
	activitySvc service.ActivityService
}

func NewActivityHandler(activitySvc service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activitySvc: activitySvc}
}

type recordActivityRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	ProofURL    *string `json:"proof_url,omitempty"`
}

func (h *ActivityHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req recordActivityRequest
	if !decodeBody(w, r, &req) {
		return
	}
	act, err := h.activitySvc.RecordActivity(r.Context(), mux.Vars(r)["id"], req.Title, req.Description, req.Date, req.Category, req.ProofURL)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, act)
}

func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	acts, err := h.activitySvc.ListActivities(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, acts)
}
