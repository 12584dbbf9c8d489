package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Configuration errors
	ErrMsgInvalidDropRates      = "drop rates must sum to 100"
	ErrMsgNoTemplatesForRarity  = "no item templates for rarity"
	ErrMsgPackTypeNotConfigured = "pack type not configured"

	// Account errors
	ErrMsgAccountNotFound   = "account not found"
	ErrMsgInsufficientFunds = "insufficient funds"

	// Instance errors
	ErrMsgInstanceNotFound = "instance not found"
	ErrMsgInstanceLocked   = "instance is locked"
	ErrMsgNotOwner         = "not the owner"

	// Listing errors
	ErrMsgListingNotFound  = "listing not found"
	ErrMsgAlreadyListed    = "instance already has an active listing"
	ErrMsgListingNotActive = "listing is not active"
	ErrMsgSelfPurchase     = "cannot purchase own listing"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Database/System errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the engine.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for
// additional context.
var (
	// Configuration errors
	ErrInvalidDropRates      = errors.New(ErrMsgInvalidDropRates)
	ErrNoTemplatesForRarity  = errors.New(ErrMsgNoTemplatesForRarity)
	ErrPackTypeNotConfigured = errors.New(ErrMsgPackTypeNotConfigured)

	// Account errors
	ErrAccountNotFound   = errors.New(ErrMsgAccountNotFound)
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// Instance errors
	ErrInstanceNotFound = errors.New(ErrMsgInstanceNotFound)
	ErrInstanceLocked   = errors.New(ErrMsgInstanceLocked)
	ErrNotOwner         = errors.New(ErrMsgNotOwner)

	// Listing errors
	ErrListingNotFound  = errors.New(ErrMsgListingNotFound)
	ErrAlreadyListed    = errors.New(ErrMsgAlreadyListed)
	ErrListingNotActive = errors.New(ErrMsgListingNotActive)
	ErrSelfPurchase     = errors.New(ErrMsgSelfPurchase)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
