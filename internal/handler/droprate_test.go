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
)

func TestHandleGetRates(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		setupMocks     func(*MockDropRateService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			url:  "/droprates?pack_type=standard",
			setupMocks: func(ms *MockDropRateService) {
				ms.On("GetRates", mock.Anything, "standard").Return(domain.DropTable{
					domain.RarityCommon: 60,
					domain.RarityRare:   25,
					domain.RaritySR:     10,
					domain.RaritySSR:    4,
					domain.RarityUR:     1,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"COMMON":60`,
		},
		{
			name:           "Missing pack_type",
			url:            "/droprates",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Missing pack_type query parameter",
		},
		{
			name: "Service Error",
			url:  "/droprates?pack_type=standard",
			setupMocks: func(ms *MockDropRateService) {
				ms.On("GetRates", mock.Anything, "standard").Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrMsgGenericServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockDropRateService)
			if tt.setupMocks != nil {
				tt.setupMocks(mockSvc)
			}
			handler := NewDropRateHandler(mockSvc)

			req := httptest.NewRequest("GET", tt.url, nil)
			rec := httptest.NewRecorder()

			handler.HandleGetRates(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestHandleSetRates(t *testing.T) {
	validRates := domain.DropTable{
		domain.RarityCommon: 50,
		domain.RarityRare:   30,
		domain.RaritySR:     12,
		domain.RaritySSR:    6,
		domain.RarityUR:     2,
	}

	tests := []struct {
		name           string
		reqBody        interface{}
		setupMocks     func(*MockDropRateService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Success",
			reqBody: SetRatesRequest{PackType: "standard", Rates: validRates},
			setupMocks: func(ms *MockDropRateService) {
				ms.On("SetRates", mock.Anything, "standard", validRates).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   MsgRatesUpdatedSuccess,
		},
		{
			name:           "Invalid JSON",
			reqBody:        "invalid json",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name:           "Missing pack type",
			reqBody:        SetRatesRequest{Rates: validRates},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
		{
			name:    "Bad sum rejected",
			reqBody: SetRatesRequest{PackType: "standard", Rates: validRates},
			setupMocks: func(ms *MockDropRateService) {
				ms.On("SetRates", mock.Anything, "standard", validRates).Return(domain.ErrInvalidDropRates)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidDropRatesError,
		},
		{
			name:    "Unknown pack type",
			reqBody: SetRatesRequest{PackType: "standard", Rates: validRates},
			setupMocks: func(ms *MockDropRateService) {
				ms.On("SetRates", mock.Anything, "standard", validRates).Return(domain.ErrPackTypeNotConfigured)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgPackNotConfiguredError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockDropRateService)
			if tt.setupMocks != nil {
				tt.setupMocks(mockSvc)
			}
			handler := NewDropRateHandler(mockSvc)

			var body []byte
			if s, ok := tt.reqBody.(string); ok {
				body = []byte(s)
			} else {
				body, _ = json.Marshal(tt.reqBody)
			}

			req := httptest.NewRequest("PUT", "/droprates", bytes.NewBuffer(body))
			rec := httptest.NewRecorder()

			handler.HandleSetRates(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
		})
	}
}
