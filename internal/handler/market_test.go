package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mangapulse/economy-engine/internal/domain"
	"github.com/mangapulse/economy-engine/internal/market"
)

const (
	testSellerUUID   = "11111111-1111-1111-1111-111111111111"
	testBuyerUUID    = "22222222-2222-2222-2222-222222222222"
	testInstanceUUID = "33333333-3333-3333-3333-333333333333"
	testListingUUID  = "44444444-4444-4444-4444-444444444444"
)

func testListing() *domain.Listing {
	return &domain.Listing{
		ID:         testListingUUID,
		InstanceID: testInstanceUUID,
		SellerID:   testSellerUUID,
		Price:      1200,
		Status:     domain.ListingActive,
	}
}

func TestHandleCreateListing(t *testing.T) {
	tests := []struct {
		name           string
		reqBody        interface{}
		setupMocks     func(*MockMarketService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Success",
			reqBody: CreateListingRequest{SellerID: testSellerUUID, InstanceID: testInstanceUUID, Price: 1200},
			setupMocks: func(ms *MockMarketService) {
				ms.On("CreateListing", mock.Anything, testSellerUUID, testInstanceUUID, int64(1200)).Return(testListing(), nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"status":"ACTIVE"`,
		},
		{
			name:           "Zero price fails validation",
			reqBody:        CreateListingRequest{SellerID: testSellerUUID, InstanceID: testInstanceUUID, Price: 0},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
		{
			name:    "Already listed",
			reqBody: CreateListingRequest{SellerID: testSellerUUID, InstanceID: testInstanceUUID, Price: 1200},
			setupMocks: func(ms *MockMarketService) {
				ms.On("CreateListing", mock.Anything, testSellerUUID, testInstanceUUID, int64(1200)).Return(nil, domain.ErrAlreadyListed)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgAlreadyListedError,
		},
		{
			name:    "Not owner",
			reqBody: CreateListingRequest{SellerID: testBuyerUUID, InstanceID: testInstanceUUID, Price: 1200},
			setupMocks: func(ms *MockMarketService) {
				ms.On("CreateListing", mock.Anything, testBuyerUUID, testInstanceUUID, int64(1200)).Return(nil, domain.ErrNotOwner)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   ErrMsgNotOwnerError,
		},
		{
			name:    "Locked instance",
			reqBody: CreateListingRequest{SellerID: testSellerUUID, InstanceID: testInstanceUUID, Price: 1200},
			setupMocks: func(ms *MockMarketService) {
				ms.On("CreateListing", mock.Anything, testSellerUUID, testInstanceUUID, int64(1200)).Return(nil, domain.ErrInstanceLocked)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInstanceLockedError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockMarketService)
			if tt.setupMocks != nil {
				tt.setupMocks(mockSvc)
			}
			handler := NewMarketHandler(mockSvc)

			body, _ := json.Marshal(tt.reqBody)
			req := httptest.NewRequest("POST", "/market/listing", bytes.NewBuffer(body))
			rec := httptest.NewRecorder()

			handler.HandleCreateListing(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestHandleCancelListing(t *testing.T) {
	tests := []struct {
		name           string
		reqBody        CancelListingRequest
		setupMocks     func(*MockMarketService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Success",
			reqBody: CancelListingRequest{SellerID: testSellerUUID, ListingID: testListingUUID},
			setupMocks: func(ms *MockMarketService) {
				ms.On("CancelListing", mock.Anything, testSellerUUID, testListingUUID).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   MsgListingCancelledSuccess,
		},
		{
			name:    "Not active",
			reqBody: CancelListingRequest{SellerID: testSellerUUID, ListingID: testListingUUID},
			setupMocks: func(ms *MockMarketService) {
				ms.On("CancelListing", mock.Anything, testSellerUUID, testListingUUID).Return(domain.ErrListingNotActive)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgListingNotActiveError,
		},
		{
			name:    "Not found",
			reqBody: CancelListingRequest{SellerID: testSellerUUID, ListingID: testListingUUID},
			setupMocks: func(ms *MockMarketService) {
				ms.On("CancelListing", mock.Anything, testSellerUUID, testListingUUID).Return(domain.ErrListingNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgListingNotFoundError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockMarketService)
			if tt.setupMocks != nil {
				tt.setupMocks(mockSvc)
			}
			handler := NewMarketHandler(mockSvc)

			body, _ := json.Marshal(tt.reqBody)
			req := httptest.NewRequest("POST", "/market/listing/cancel", bytes.NewBuffer(body))
			rec := httptest.NewRecorder()

			handler.HandleCancelListing(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestHandleGetListing(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockMarketService)
		mockSvc.On("GetListing", mock.Anything, testListingUUID).Return(testListing(), nil)
		handler := NewMarketHandler(mockSvc)

		req := httptest.NewRequest("GET", "/market/listing?id="+testListingUUID, nil)
		rec := httptest.NewRecorder()

		handler.HandleGetListing(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), testListingUUID)
	})

	t.Run("Missing ID", func(t *testing.T) {
		handler := NewMarketHandler(new(MockMarketService))

		req := httptest.NewRequest("GET", "/market/listing", nil)
		rec := httptest.NewRecorder()

		handler.HandleGetListing(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		handler := NewMarketHandler(new(MockMarketService))

		req := httptest.NewRequest("GET", "/market/listing?id=not-a-uuid", nil)
		rec := httptest.NewRecorder()

		handler.HandleGetListing(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgInvalidListingID)
	})

	t.Run("Not found", func(t *testing.T) {
		mockSvc := new(MockMarketService)
		mockSvc.On("GetListing", mock.Anything, testListingUUID).Return(nil, domain.ErrListingNotFound)
		handler := NewMarketHandler(mockSvc)

		req := httptest.NewRequest("GET", "/market/listing?id="+testListingUUID, nil)
		rec := httptest.NewRecorder()

		handler.HandleGetListing(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandleListListings(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		mockSvc := new(MockMarketService)
		mockSvc.On("ListActiveListings", mock.Anything, 50, 0).Return([]domain.Listing{*testListing()}, nil)
		handler := NewMarketHandler(mockSvc)

		req := httptest.NewRequest("GET", "/market/listings", nil)
		rec := httptest.NewRecorder()

		handler.HandleListListings(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), testListingUUID)
	})

	t.Run("Invalid limit", func(t *testing.T) {
		handler := NewMarketHandler(new(MockMarketService))

		req := httptest.NewRequest("GET", "/market/listings?limit=abc", nil)
		rec := httptest.NewRecorder()

		handler.HandleListListings(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgInvalidLimit)
	})
}

func TestHandlePurchase(t *testing.T) {
	tests := []struct {
		name           string
		reqBody        PurchaseRequest
		setupMocks     func(*MockMarketService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Success",
			reqBody: PurchaseRequest{BuyerID: testBuyerUUID, ListingID: testListingUUID},
			setupMocks: func(ms *MockMarketService) {
				ms.On("PurchaseListing", mock.Anything, testBuyerUUID, testListingUUID).Return(&market.PurchaseResult{
					Instance:   &domain.OwnedInstance{ID: testInstanceUUID, AccountID: testBuyerUUID},
					Price:      1200,
					NewBalance: 3800,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"new_balance":3800`,
		},
		{
			name:    "Insufficient funds",
			reqBody: PurchaseRequest{BuyerID: testBuyerUUID, ListingID: testListingUUID},
			setupMocks: func(ms *MockMarketService) {
				ms.On("PurchaseListing", mock.Anything, testBuyerUUID, testListingUUID).Return(nil, domain.ErrInsufficientFunds)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgNotEnoughRubiesError,
		},
		{
			name:    "Self purchase",
			reqBody: PurchaseRequest{BuyerID: testSellerUUID, ListingID: testListingUUID},
			setupMocks: func(ms *MockMarketService) {
				ms.On("PurchaseListing", mock.Anything, testSellerUUID, testListingUUID).Return(nil, domain.ErrSelfPurchase)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgSelfPurchaseError,
		},
		{
			name:    "Listing closed",
			reqBody: PurchaseRequest{BuyerID: testBuyerUUID, ListingID: testListingUUID},
			setupMocks: func(ms *MockMarketService) {
				ms.On("PurchaseListing", mock.Anything, testBuyerUUID, testListingUUID).Return(nil, domain.ErrListingNotActive)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgListingNotActiveError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockMarketService)
			if tt.setupMocks != nil {
				tt.setupMocks(mockSvc)
			}
			handler := NewMarketHandler(mockSvc)

			body, _ := json.Marshal(tt.reqBody)
			req := httptest.NewRequest("POST", "/market/purchase", bytes.NewBuffer(body))
			rec := httptest.NewRecorder()

			handler.HandlePurchase(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
		})
	}
}
