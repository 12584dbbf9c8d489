package repository

import (
	"context"

	"github.com/mangapulse/economy-engine/internal/domain"
)

// Market defines the interface for marketplace persistence
type Market interface {
	GetInstance(ctx context.Context, instanceID string) (*domain.OwnedInstance, error)

	// CreateListing inserts an ACTIVE listing. The insert itself carries
	// the ownership and lock predicates, so a transfer or lock that lands
	// between the caller's read and the insert cannot produce a listing
	// the seller no longer backs. A concurrent ACTIVE listing for the same
	// instance is rejected by the storage layer's partial unique index and
	// surfaced as domain.ErrAlreadyListed.
	CreateListing(ctx context.Context, sellerID, instanceID string, price int64) (*domain.Listing, error)

	GetListing(ctx context.Context, listingID string) (*domain.Listing, error)
	ListActiveListings(ctx context.Context, limit, offset int) ([]domain.Listing, error)

	// MarkListingCancelled transitions ACTIVE -> CANCELLED. Returns false if
	// the listing was no longer ACTIVE at commit time.
	MarkListingCancelled(ctx context.Context, listingID string) (bool, error)

	BeginTx(ctx context.Context) (MarketTx, error)
}

// MarketTx defines the interface for the atomic purchase unit
type MarketTx interface {
	Tx
	BalanceTx
	GetListing(ctx context.Context, listingID string) (*domain.Listing, error)

	// MarkListingSold transitions ACTIVE -> SOLD. The conditional update is
	// what guarantees at most one buyer wins under concurrent purchases;
	// false means another purchase already closed the listing.
	MarkListingSold(ctx context.Context, listingID string) (bool, error)

	// TransferInstance reassigns the instance to toAccountID only while
	// fromAccountID still owns it. False means ownership changed after the
	// listing was created and the purchase must abort.
	TransferInstance(ctx context.Context, instanceID, fromAccountID, toAccountID string) (bool, error)
}
