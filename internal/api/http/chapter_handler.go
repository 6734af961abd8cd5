package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"scef-chapters-backend/internal/domain"
	"scef-chapters-backend/internal/repository"
	"scef-chapters-backend/internal/service"
)

type ChapterHandler struct {
	chapterSvc service.ChapterService
	upgradeSvc service.UpgradeService
}

func NewChapterHandler(chapterSvc service.ChapterService, upgradeSvc service.UpgradeService) *ChapterHandler {
	return &ChapterHandler{chapterSvc: chapterSvc, upgradeSvc: upgradeSvc}
}

type createChapterRequest struct {
	Name        string   `json:"name"`
	Country     string   `json:"country"`
	State       string   `json:"state"`
	City        string   `json:"city"`
	Focus       []string `json:"focus"`
	KickoffPlan string   `json:"kickoff_plan"`
}

func (h *ChapterHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createChapterRequest
	if !decodeBody(w, r, &req) {
		return
	}
	claims, _ := ClaimsFromContext(r.Context())
	ch, err := h.chapterSvc.CreateChapter(r.Context(), service.CreateChapterInput{
		Name:        req.Name,
		Country:     req.Country,
		State:       req.State,
		City:        req.City,
		Focus:       req.Focus,
		KickoffPlan: req.KickoffPlan,
		CreatedBy:   claims.UserID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ch)
}

type listChaptersResponse struct {
	Chapters []domain.Chapter `json:"chapters"`
	Total    int32            `json:"total"`
}

func (h *ChapterHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("page_size"))
	chapters, total, err := h.chapterSvc.ListChapters(r.Context(), repository.ChapterFilter{
		Tier:     domain.ChapterTier(q.Get("tier")),
		Search:   q.Get("search"),
		Page:     int32(page),
		PageSize: int32(pageSize),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listChaptersResponse{Chapters: chapters, Total: total})
}

func (h *ChapterHandler) Get(w http.ResponseWriter, r *http.Request) {
	ch, err := h.chapterSvc.GetChapter(r.Context(), mux.Vars(r)["idOrSlug"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ch)
}

func (h *ChapterHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dash, err := h.chapterSvc.GetDashboard(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dash)
}

type requestUpgradeRequest struct {
	TargetTier domain.ChapterTier     `json:"target_tier"`
	Evidence   domain.UpgradeEvidence `json:"evidence"`
}

func (h *ChapterHandler) RequestUpgrade(w http.ResponseWriter, r *http.Request) {
	var req requestUpgradeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	upgrade, err := h.upgradeSvc.RequestUpgrade(r.Context(), mux.Vars(r)["id"], req.TargetTier, req.Evidence)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, upgrade)
}

func (h *ChapterHandler) GetPendingUpgrade(w http.ResponseWriter, r *http.Request) {
	upgrade, err := h.upgradeSvc.GetPendingUpgrade(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	if upgrade == nil {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	writeJSON(w, http.StatusOK, upgrade)
}
