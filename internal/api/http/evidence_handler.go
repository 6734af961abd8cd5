package http

import (
	"io"
	"net/http"
	"time"

	"scef-chapters-backend/internal/storage"
)

const evidenceURLExpiry = 15 * time.Minute

// EvidenceHandler issues upload/download URLs for evidence files and
// backs the mock presigned endpoints.
type EvidenceHandler struct {
	store storage.EvidenceStorage
}

func NewEvidenceHandler(store storage.EvidenceStorage) *EvidenceHandler {
	return &EvidenceHandler{store: store}
}

type uploadURLRequest struct {
	ChapterID   string `json:"chapter_id"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
}

type uploadURLResponse struct {
	Key         string `json:"key"`
	UploadURL   string `json:"upload_url"`
	DownloadURL string `json:"download_url"`
}

func (h *EvidenceHandler) CreateUploadURL(w http.ResponseWriter, r *http.Request) {
	var req uploadURLRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ChapterID == "" || req.Filename == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "chapter_id and filename are required"})
		return
	}

	key := storage.NewEvidenceKey(req.ChapterID, req.Filename)
	uploadURL, err := h.store.GenerateUploadURL(r.Context(), key, req.ContentType, evidenceURLExpiry)
	if err != nil {
		writeError(w, err)
		return
	}
	downloadURL, err := h.store.GenerateDownloadURL(r.Context(), key, evidenceURLExpiry)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, uploadURLResponse{Key: key, UploadURL: uploadURL, DownloadURL: downloadURL})
}

// HandleUpload accepts the PUT to a mock presigned upload URL.
func (h *EvidenceHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "Missing key parameter", http.StatusBadRequest)
		return
	}
	if err := h.store.SaveFile(key, r.Body); err != nil {
		http.Error(w, "Failed to save file", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// HandleDownload serves a stored evidence file.
func (h *EvidenceHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "Missing key parameter", http.StatusBadRequest)
		return
	}
	file, err := h.store.ReadFile(key)
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	io.Copy(w, file)
}
