package handler

import (
	"net/http"

	"github.com/mangapulse/economy-engine/internal/gacha"
)

type GachaHandler struct {
	service gacha.Service
}

func NewGachaHandler(service gacha.Service) *GachaHandler {
	return &GachaHandler{service: service}
}

type OpenPackRequest struct {
	AccountID string `json:"account_id" validate:"required,uuid"`
	PackType  string `json:"pack_type" validate:"required,max=64"`
}

// HandleOpenPack opens one pack for the account and returns the pulled cards
func (h *GachaHandler) HandleOpenPack(w http.ResponseWriter, r *http.Request) {
	var req OpenPackRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Open pack"); err != nil {
		return
	}

	result, err := h.service.OpenPack(r.Context(), req.AccountID, req.PackType)
	if err != nil {
		respondServiceError(w, r, ErrMsgOpenPackFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
