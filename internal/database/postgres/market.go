package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mangapulse/economy-engine/internal/domain"
	"github.com/mangapulse/economy-engine/internal/repository"
)

// activeListingConstraint is the partial unique index enforcing at most one
// ACTIVE listing per instance.
const activeListingConstraint = "listings_active_instance_idx"

// MarketRepository implements the marketplace repository for PostgreSQL
type MarketRepository struct {
	db *pgxpool.Pool
}

// NewMarketRepository creates a new MarketRepository
func NewMarketRepository(db *pgxpool.Pool) *MarketRepository {
	return &MarketRepository{db: db}
}

// MarketTx implements repository.MarketTx
type MarketTx struct {
	tx pgx.Tx
}

// BeginTx starts a new transaction
func (r *MarketRepository) BeginTx(ctx context.Context) (repository.MarketTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &MarketTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *MarketTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *MarketTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// GetInstance retrieves an owned instance with its template metadata, or nil
// if it does not exist
func (r *MarketRepository) GetInstance(ctx context.Context, instanceID string) (*domain.OwnedInstance, error) {
	query := `
		SELECT i.instance_id, i.template_id, i.account_id, i.locked, i.acquired_at,
		       t.template_id, t.name, t.rarity, t.collection, t.image_url, t.created_at
		FROM owned_instances i
		JOIN item_templates t ON t.template_id = i.template_id
		WHERE i.instance_id = $1
	`

	var inst domain.OwnedInstance
	var tmpl domain.ItemTemplate
	err := r.db.QueryRow(ctx, query, instanceID).Scan(
		&inst.ID,
		&inst.TemplateID,
		&inst.AccountID,
		&inst.Locked,
		&inst.AcquiredAt,
		&tmpl.ID,
		&tmpl.Name,
		&tmpl.Rarity,
		&tmpl.Collection,
		&tmpl.ImageURL,
		&tmpl.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get instance: %w", err)
	}

	inst.Template = &tmpl
	return &inst, nil
}

// CreateListing inserts an ACTIVE listing. The INSERT ... SELECT carries the
// ownership and lock predicates so a purchase that moves the instance between
// the caller's read and this insert cannot leave a listing the seller does
// not back. The partial unique index on (instance_id) WHERE status = 'ACTIVE'
// closes the double-listing race; a violation surfaces as
// domain.ErrAlreadyListed.
func (r *MarketRepository) CreateListing(ctx context.Context, sellerID, instanceID string, price int64) (*domain.Listing, error) {
	query := `
		INSERT INTO listings (instance_id, seller_id, price, status)
		SELECT i.instance_id, $2, $3, 'ACTIVE'
		FROM owned_instances i
		WHERE i.instance_id = $1 AND i.account_id = $2 AND NOT i.locked
		RETURNING listing_id, instance_id, seller_id, price, status, created_at
	`

	var l domain.Listing
	err := r.db.QueryRow(ctx, query, instanceID, sellerID, price).Scan(
		&l.ID,
		&l.InstanceID,
		&l.SellerID,
		&l.Price,
		&l.Status,
		&l.CreatedAt,
	)
	if isUniqueViolation(err, activeListingConstraint) {
		return nil, fmt.Errorf("%w: instance %s", domain.ErrAlreadyListed, instanceID)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, r.classifyListingDenial(ctx, sellerID, instanceID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}
	return &l, nil
}

// classifyListingDenial re-reads the instance to report which predicate the
// conditional insert missed.
func (r *MarketRepository) classifyListingDenial(ctx context.Context, sellerID, instanceID string) error {
	inst, err := r.GetInstance(ctx, instanceID)
	if err != nil {
		return err
	}
	switch {
	case inst == nil:
		return fmt.Errorf("%w: %s", domain.ErrInstanceNotFound, instanceID)
	case inst.AccountID != sellerID:
		return fmt.Errorf("%w: instance %s", domain.ErrNotOwner, instanceID)
	default:
		return fmt.Errorf("%w: %s", domain.ErrInstanceLocked, instanceID)
	}
}

// GetListing retrieves a listing, or nil if it does not exist
func (r *MarketRepository) GetListing(ctx context.Context, listingID string) (*domain.Listing, error) {
	return getListing(ctx, r.db, listingID)
}

// getListing is shared with the purchase transaction.
func getListing(ctx context.Context, db dbtx, listingID string) (*domain.Listing, error) {
	query := `
		SELECT l.listing_id, l.instance_id, l.seller_id, l.price, l.status, l.created_at, l.closed_at,
		       i.instance_id, i.template_id, i.account_id, i.locked, i.acquired_at,
		       t.template_id, t.name, t.rarity, t.collection, t.image_url, t.created_at
		FROM listings l
		JOIN owned_instances i ON i.instance_id = l.instance_id
		JOIN item_templates t ON t.template_id = i.template_id
		WHERE l.listing_id = $1
	`

	var l domain.Listing
	var inst domain.OwnedInstance
	var tmpl domain.ItemTemplate
	err := db.QueryRow(ctx, query, listingID).Scan(
		&l.ID,
		&l.InstanceID,
		&l.SellerID,
		&l.Price,
		&l.Status,
		&l.CreatedAt,
		&l.ClosedAt,
		&inst.ID,
		&inst.TemplateID,
		&inst.AccountID,
		&inst.Locked,
		&inst.AcquiredAt,
		&tmpl.ID,
		&tmpl.Name,
		&tmpl.Rarity,
		&tmpl.Collection,
		&tmpl.ImageURL,
		&tmpl.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}

	inst.Template = &tmpl
	l.Instance = &inst
	return &l, nil
}

// ListActiveListings retrieves a page of ACTIVE listings, newest first
func (r *MarketRepository) ListActiveListings(ctx context.Context, limit, offset int) ([]domain.Listing, error) {
	query := `
		SELECT l.listing_id, l.instance_id, l.seller_id, l.price, l.status, l.created_at,
		       t.template_id, t.name, t.rarity, t.collection, t.image_url, t.created_at
		FROM listings l
		JOIN owned_instances i ON i.instance_id = l.instance_id
		JOIN item_templates t ON t.template_id = i.template_id
		WHERE l.status = 'ACTIVE'
		ORDER BY l.created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		var l domain.Listing
		var tmpl domain.ItemTemplate
		err := rows.Scan(
			&l.ID,
			&l.InstanceID,
			&l.SellerID,
			&l.Price,
			&l.Status,
			&l.CreatedAt,
			&tmpl.ID,
			&tmpl.Name,
			&tmpl.Rarity,
			&tmpl.Collection,
			&tmpl.ImageURL,
			&tmpl.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		l.Instance = &domain.OwnedInstance{ID: l.InstanceID, TemplateID: tmpl.ID, Template: &tmpl}
		listings = append(listings, l)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return listings, nil
}

// MarkListingCancelled transitions ACTIVE -> CANCELLED. Returns false if the
// listing was no longer ACTIVE.
func (r *MarketRepository) MarkListingCancelled(ctx context.Context, listingID string) (bool, error) {
	query := `
		UPDATE listings
		SET status = 'CANCELLED', closed_at = now()
		WHERE listing_id = $1 AND status = 'ACTIVE'
	`

	tag, err := r.db.Exec(ctx, query, listingID)
	if err != nil {
		return false, fmt.Errorf("failed to cancel listing: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// GetListing retrieves a listing inside the purchase transaction
func (t *MarketTx) GetListing(ctx context.Context, listingID string) (*domain.Listing, error) {
	return getListing(ctx, t.tx, listingID)
}

// MarkListingSold transitions ACTIVE -> SOLD. The status guard in the WHERE
// clause is the check-and-set that lets exactly one concurrent purchase win.
func (t *MarketTx) MarkListingSold(ctx context.Context, listingID string) (bool, error) {
	query := `
		UPDATE listings
		SET status = 'SOLD', closed_at = now()
		WHERE listing_id = $1 AND status = 'ACTIVE'
	`

	tag, err := t.tx.Exec(ctx, query, listingID)
	if err != nil {
		return false, fmt.Errorf("failed to mark listing sold: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// TransferInstance reassigns the instance to a new owning account. The owner
// predicate guards against a stale listing whose seller parted with the
// instance after listing it; false aborts the purchase.
func (t *MarketTx) TransferInstance(ctx context.Context, instanceID, fromAccountID, toAccountID string) (bool, error) {
	query := `
		UPDATE owned_instances
		SET account_id = $3
		WHERE instance_id = $1 AND account_id = $2
	`

	tag, err := t.tx.Exec(ctx, query, instanceID, fromAccountID, toAccountID)
	if err != nil {
		return false, fmt.Errorf("failed to transfer instance: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// LockBalance locks the account row and returns its balance
func (t *MarketTx) LockBalance(ctx context.Context, accountID string) (int64, error) {
	return lockBalance(ctx, t.tx, accountID)
}

// DebitBalance subtracts amount and returns the new balance
func (t *MarketTx) DebitBalance(ctx context.Context, accountID string, amount int64) (int64, error) {
	return debitBalance(ctx, t.tx, accountID, amount)
}

// CreditBalance adds amount to the account balance
func (t *MarketTx) CreditBalance(ctx context.Context, accountID string, amount int64) error {
	return creditBalance(ctx, t.tx, accountID, amount)
}

// AppendLedgerEntry inserts one immutable ledger row
func (t *MarketTx) AppendLedgerEntry(ctx context.Context, entry domain.LedgerEntry) error {
	return appendLedgerEntry(ctx, t.tx, entry)
}
