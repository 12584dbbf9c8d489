package handler

import (
	"net/http"

	"github.com/mangapulse/economy-engine/internal/domain"
	"github.com/mangapulse/economy-engine/internal/droprate"
)

type DropRateHandler struct {
	service droprate.Service
}

func NewDropRateHandler(service droprate.Service) *DropRateHandler {
	return &DropRateHandler{service: service}
}

// RatesResponse carries the effective drop table for a pack type
type RatesResponse struct {
	PackType string           `json:"pack_type"`
	Rates    domain.DropTable `json:"rates"`
}

// HandleGetRates returns the effective drop-rate table for a pack type.
// An unconfigured pack type yields the built-in default table.
func (h *DropRateHandler) HandleGetRates(w http.ResponseWriter, r *http.Request) {
	packType, ok := GetQueryParam(r, w, "pack_type")
	if !ok {
		return
	}

	rates, err := h.service.GetRates(r.Context(), packType)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetRatesFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, RatesResponse{PackType: packType, Rates: rates})
}

type SetRatesRequest struct {
	PackType string           `json:"pack_type" validate:"required,max=64"`
	Rates    domain.DropTable `json:"rates" validate:"required"`
}

// HandleSetRates replaces the drop-rate table for a pack type. The table must
// cover valid tiers only and sum to 100 within tolerance; anything else is
// rejected whole and the previous table stays in effect.
func (h *DropRateHandler) HandleSetRates(w http.ResponseWriter, r *http.Request) {
	var req SetRatesRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set drop rates"); err != nil {
		return
	}

	if err := h.service.SetRates(r.Context(), req.PackType, req.Rates); err != nil {
		respondServiceError(w, r, ErrMsgSetRatesFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgRatesUpdatedSuccess})
}
