package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/mangapulse/economy-engine/internal/domain"
	"github.com/mangapulse/economy-engine/internal/market"
)

type MarketHandler struct {
	service market.Service
}

func NewMarketHandler(service market.Service) *MarketHandler {
	return &MarketHandler{service: service}
}

type CreateListingRequest struct {
	SellerID   string `json:"seller_id" validate:"required,uuid"`
	InstanceID string `json:"instance_id" validate:"required,uuid"`
	Price      int64  `json:"price" validate:"required,gt=0"`
}

// HandleCreateListing puts an owned card up for sale
func (h *MarketHandler) HandleCreateListing(w http.ResponseWriter, r *http.Request) {
	var req CreateListingRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create listing"); err != nil {
		return
	}

	listing, err := h.service.CreateListing(r.Context(), req.SellerID, req.InstanceID, req.Price)
	if err != nil {
		respondServiceError(w, r, ErrMsgCreateListingFailed, err)
		return
	}

	respondJSON(w, http.StatusCreated, listing)
}

type CancelListingRequest struct {
	SellerID  string `json:"seller_id" validate:"required,uuid"`
	ListingID string `json:"listing_id" validate:"required,uuid"`
}

// HandleCancelListing takes the seller's own listing off the market
func (h *MarketHandler) HandleCancelListing(w http.ResponseWriter, r *http.Request) {
	var req CancelListingRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Cancel listing"); err != nil {
		return
	}

	if err := h.service.CancelListing(r.Context(), req.SellerID, req.ListingID); err != nil {
		respondServiceError(w, r, ErrMsgCancelListingFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgListingCancelledSuccess})
}

// HandleGetListing returns one listing by ID
func (h *MarketHandler) HandleGetListing(w http.ResponseWriter, r *http.Request) {
	listingIDStr, ok := GetQueryParam(r, w, "id")
	if !ok {
		return
	}
	if _, err := uuid.Parse(listingIDStr); err != nil {
		http.Error(w, ErrMsgInvalidListingID, http.StatusBadRequest)
		return
	}

	listing, err := h.service.GetListing(r.Context(), listingIDStr)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetListingFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, listing)
}

// ListingsResponse is a page of active listings
type ListingsResponse struct {
	Listings []domain.Listing `json:"listings"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}

// HandleListListings returns a page of active listings, newest first
func (h *MarketHandler) HandleListListings(w http.ResponseWriter, r *http.Request) {
	limitStr := GetOptionalQueryParam(r, "limit", "50")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 0 {
		http.Error(w, ErrMsgInvalidLimit, http.StatusBadRequest)
		return
	}

	offsetStr := GetOptionalQueryParam(r, "offset", "0")
	offset, err := strconv.Atoi(offsetStr)
	if err != nil || offset < 0 {
		http.Error(w, ErrMsgInvalidOffset, http.StatusBadRequest)
		return
	}

	listings, err := h.service.ListActiveListings(r.Context(), limit, offset)
	if err != nil {
		respondServiceError(w, r, ErrMsgListListingsFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, ListingsResponse{Listings: listings, Limit: limit, Offset: offset})
}

type PurchaseRequest struct {
	BuyerID   string `json:"buyer_id" validate:"required,uuid"`
	ListingID string `json:"listing_id" validate:"required,uuid"`
}

// HandlePurchase buys an active listing for the buyer
func (h *MarketHandler) HandlePurchase(w http.ResponseWriter, r *http.Request) {
	var req PurchaseRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Purchase listing"); err != nil {
		return
	}

	result, err := h.service.PurchaseListing(r.Context(), req.BuyerID, req.ListingID)
	if err != nil {
		respondServiceError(w, r, ErrMsgPurchaseFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
