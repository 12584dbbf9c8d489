package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mangapulse/economy-engine/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "sentinel error",
			err:            domain.ErrInsufficientFunds,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    ErrMsgNotEnoughRubiesError,
		},
		{
			name:           "wrapped once",
			err:            fmt.Errorf("%w: listing x", domain.ErrListingNotActive),
			expectedStatus: http.StatusConflict,
			expectedMsg:    ErrMsgListingNotActiveError,
		},
		{
			name:           "wrapped twice",
			err:            fmt.Errorf("purchase failed: %w", fmt.Errorf("%w: instance y", domain.ErrNotOwner)),
			expectedStatus: http.StatusForbidden,
			expectedMsg:    ErrMsgNotOwnerError,
		},
		{
			name:           "unknown error",
			err:            errors.New("connection reset"),
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    ErrMsgGenericServerError,
		},
		{
			name:           "nil error",
			err:            nil,
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    ErrMsgUnknownError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedMsg, msg)
		})
	}
}
