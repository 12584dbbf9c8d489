// Package market implements the player-to-player marketplace: fixed-price
// listings of owned instances, cancellation, and atomic purchases that move
// both the instance and the rubies.
package market

import (
	"context"
	"fmt"

	"github.com/mangapulse/economy-engine/internal/domain"
	"github.com/mangapulse/economy-engine/internal/logger"
	"github.com/mangapulse/economy-engine/internal/metrics"
	"github.com/mangapulse/economy-engine/internal/repository"
)

// PurchaseResult contains the outcome of a successful purchase
type PurchaseResult struct {
	Instance   *domain.OwnedInstance `json:"instance"`
	Price      int64                 `json:"price"`
	NewBalance int64                 `json:"new_balance"`
}

// Service defines the interface for marketplace operations
type Service interface {
	CreateListing(ctx context.Context, sellerID, instanceID string, price int64) (*domain.Listing, error)
	CancelListing(ctx context.Context, sellerID, listingID string) error
	GetListing(ctx context.Context, listingID string) (*domain.Listing, error)
	ListActiveListings(ctx context.Context, limit, offset int) ([]domain.Listing, error)
	PurchaseListing(ctx context.Context, buyerID, listingID string) (*PurchaseResult, error)
}

type service struct {
	repo repository.Market
}

// NewService creates a new market service
func NewService(repo repository.Market) Service {
	return &service{repo: repo}
}

// CreateListing puts an instance up for sale at a fixed price. The seller
// must own the instance and the instance must not be locked; the checks here
// give precise errors, but the insert itself re-verifies ownership and lock
// state at the store, so a purchase landing between the read and the insert
// cannot produce a listing the seller no longer backs. A second ACTIVE
// listing for the same instance is rejected the same way no matter how the
// requests interleave.
func (s *service) CreateListing(ctx context.Context, sellerID, instanceID string, price int64) (*domain.Listing, error) {
	log := logger.FromContext(ctx)
	log.Info("CreateListing called", "seller_id", sellerID, "instance_id", instanceID, "price", price)

	if price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", domain.ErrInvalidInput)
	}

	inst, err := s.repo.GetInstance(ctx, instanceID)
	if err != nil {
		log.Error("Failed to get instance", "error", err)
		return nil, fmt.Errorf("failed to get instance: %w", err)
	}
	if inst == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInstanceNotFound, instanceID)
	}
	if inst.AccountID != sellerID {
		return nil, fmt.Errorf("%w: instance %s", domain.ErrNotOwner, instanceID)
	}
	if inst.Locked {
		return nil, fmt.Errorf("%w: %s", domain.ErrInstanceLocked, instanceID)
	}

	listing, err := s.repo.CreateListing(ctx, sellerID, instanceID, price)
	if err != nil {
		log.Error("Failed to create listing", "error", err)
		return nil, err
	}

	metrics.ListingsCreated.Inc()
	log.Info("Listing created", "listing_id", listing.ID, "seller_id", sellerID, "price", price)
	return listing, nil
}

// CancelListing takes a listing off the market. Only the seller may cancel,
// and only while the listing is still ACTIVE. A listing that a purchase
// closed between the read and the update is reported as no longer active.
func (s *service) CancelListing(ctx context.Context, sellerID, listingID string) error {
	log := logger.FromContext(ctx)
	log.Info("CancelListing called", "seller_id", sellerID, "listing_id", listingID)

	listing, err := s.repo.GetListing(ctx, listingID)
	if err != nil {
		log.Error("Failed to get listing", "error", err)
		return fmt.Errorf("failed to get listing: %w", err)
	}
	if listing == nil {
		return fmt.Errorf("%w: %s", domain.ErrListingNotFound, listingID)
	}
	if listing.SellerID != sellerID {
		return fmt.Errorf("%w: listing %s", domain.ErrNotOwner, listingID)
	}
	if listing.Status != domain.ListingActive {
		return fmt.Errorf("%w: status %s", domain.ErrListingNotActive, listing.Status)
	}

	cancelled, err := s.repo.MarkListingCancelled(ctx, listingID)
	if err != nil {
		log.Error("Failed to cancel listing", "error", err)
		return fmt.Errorf("failed to cancel listing: %w", err)
	}
	if !cancelled {
		// Lost the race against a purchase.
		return fmt.Errorf("%w: %s", domain.ErrListingNotActive, listingID)
	}

	log.Info("Listing cancelled", "listing_id", listingID)
	return nil
}

// GetListing returns one listing with its instance and template metadata
func (s *service) GetListing(ctx context.Context, listingID string) (*domain.Listing, error) {
	listing, err := s.repo.GetListing(ctx, listingID)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to get listing", "error", err)
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	if listing == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrListingNotFound, listingID)
	}
	return listing, nil
}

// ListActiveListings returns a page of ACTIVE listings, newest first
func (s *service) ListActiveListings(ctx context.Context, limit, offset int) ([]domain.Listing, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	listings, err := s.repo.ListActiveListings(ctx, limit, offset)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to list listings", "error", err)
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}
	return listings, nil
}

// PurchaseListing buys an ACTIVE listing for the buyer. The instance
// transfer, the listing close, both balance changes, and both ledger entries
// happen in one transaction. The conditional ACTIVE -> SOLD update decides
// the winner when two buyers race; the loser's transaction rolls back whole.
func (s *service) PurchaseListing(ctx context.Context, buyerID, listingID string) (*PurchaseResult, error) {
	log := logger.FromContext(ctx)
	log.Info("PurchaseListing called", "buyer_id", buyerID, "listing_id", listingID)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	listing, err := tx.GetListing(ctx, listingID)
	if err != nil {
		log.Error("Failed to get listing", "error", err)
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	if listing == nil {
		log.Warn("Purchase attempted on missing listing", "listing_id", listingID)
		return nil, fmt.Errorf("%w: %s", domain.ErrListingNotActive, listingID)
	}
	if listing.Status != domain.ListingActive {
		return nil, fmt.Errorf("%w: status %s", domain.ErrListingNotActive, listing.Status)
	}
	if listing.SellerID == buyerID {
		return nil, fmt.Errorf("%w: listing %s", domain.ErrSelfPurchase, listingID)
	}

	// Lock both account rows in id order so two crossing purchases cannot
	// deadlock on each other's balance rows.
	firstID, secondID := buyerID, listing.SellerID
	if secondID < firstID {
		firstID, secondID = secondID, firstID
	}
	firstBalance, err := tx.LockBalance(ctx, firstID)
	if err != nil {
		log.Error("Failed to lock balance", "account_id", firstID, "error", err)
		return nil, err
	}
	secondBalance, err := tx.LockBalance(ctx, secondID)
	if err != nil {
		log.Error("Failed to lock balance", "account_id", secondID, "error", err)
		return nil, err
	}
	balance := firstBalance
	if buyerID == secondID {
		balance = secondBalance
	}
	if balance < listing.Price {
		return nil, fmt.Errorf("%w: balance %d, price %d", domain.ErrInsufficientFunds, balance, listing.Price)
	}

	sold, err := tx.MarkListingSold(ctx, listingID)
	if err != nil {
		log.Error("Failed to mark listing sold", "error", err)
		return nil, fmt.Errorf("failed to mark listing sold: %w", err)
	}
	if !sold {
		// Another buyer closed the listing first.
		return nil, fmt.Errorf("%w: %s", domain.ErrListingNotActive, listingID)
	}

	transferred, err := tx.TransferInstance(ctx, listing.InstanceID, listing.SellerID, buyerID)
	if err != nil {
		log.Error("Failed to transfer instance", "error", err)
		return nil, fmt.Errorf("failed to transfer instance: %w", err)
	}
	if !transferred {
		// The seller parted with the instance after listing it.
		log.Warn("Listing seller no longer owns instance",
			"listing_id", listingID, "instance_id", listing.InstanceID)
		return nil, fmt.Errorf("%w: %s", domain.ErrListingNotActive, listingID)
	}

	newBalance, err := tx.DebitBalance(ctx, buyerID, listing.Price)
	if err != nil {
		log.Error("Failed to debit buyer", "error", err)
		return nil, err
	}
	if err := tx.CreditBalance(ctx, listing.SellerID, listing.Price); err != nil {
		log.Error("Failed to credit seller", "error", err)
		return nil, err
	}

	err = tx.AppendLedgerEntry(ctx, domain.LedgerEntry{
		AccountID:   buyerID,
		Amount:      -listing.Price,
		Type:        domain.EntryMarketPurchase,
		Description: fmt.Sprintf(marketPurchaseDescription, listingID),
	})
	if err != nil {
		log.Error("Failed to append buyer ledger entry", "error", err)
		return nil, err
	}
	err = tx.AppendLedgerEntry(ctx, domain.LedgerEntry{
		AccountID:   listing.SellerID,
		Amount:      listing.Price,
		Type:        domain.EntryMarketSale,
		Description: fmt.Sprintf(marketSaleDescription, listingID),
	})
	if err != nil {
		log.Error("Failed to append seller ledger entry", "error", err)
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", "error", err)
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.PurchasesCompleted.Inc()
	metrics.RubiesTraded.Add(float64(listing.Price))

	log.Info("Purchase completed", "listing_id", listingID, "buyer_id", buyerID,
		"seller_id", listing.SellerID, "price", listing.Price, "new_balance", newBalance)

	instance := listing.Instance
	if instance != nil {
		instance.AccountID = buyerID
	}
	return &PurchaseResult{
		Instance:   instance,
		Price:      listing.Price,
		NewBalance: newBalance,
	}, nil
}
