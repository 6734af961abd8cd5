package http

import (
	"net/http"

	"scef-chapters-backend/internal/domain"
	"scef-chapters-backend/internal/service"
)

type WalletHandler struct {
	walletSvc service.WalletService
}

func NewWalletHandler(walletSvc service.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

func (h *WalletHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	wallet, err := h.walletSvc.GetWallet(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wallet)
}

func (h *WalletHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	txns, err := h.walletSvc.ListTransactions(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, txns)
}

type debitRequest struct {
	Type   domain.TransactionType `json:"type"`
	Target string                 `json:"target"`
}

func (h *WalletHandler) Debit(w http.ResponseWriter, r *http.Request) {
	var req debitRequest
	if !decodeBody(w, r, &req) {
		return
	}
	claims, _ := ClaimsFromContext(r.Context())
	txn, err := h.walletSvc.DebitAGC(r.Context(), claims.UserID, req.Type, req.Target)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, txn)
}
