package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidListingID  = "Invalid listing ID"
	ErrMsgInvalidLimit      = "Invalid limit parameter"
	ErrMsgInvalidOffset     = "Invalid offset parameter"

	// Drop rate error messages
	ErrMsgGetRatesFailed = "Failed to get drop rates"
	ErrMsgSetRatesFailed = "Failed to update drop rates"

	// Pack error messages
	ErrMsgOpenPackFailed = "Failed to open pack"

	// Marketplace error messages
	ErrMsgCreateListingFailed = "Failed to create listing"
	ErrMsgCancelListingFailed = "Failed to cancel listing"
	ErrMsgGetListingFailed    = "Failed to get listing"
	ErrMsgListListingsFailed  = "Failed to list listings"
	ErrMsgPurchaseFailed      = "Failed to purchase listing"
)

// Success messages for API responses
const (
	MsgRatesUpdatedSuccess     = "Drop rates updated successfully"
	MsgListingCancelledSuccess = "Listing cancelled successfully"
)
