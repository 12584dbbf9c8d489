package domain

import "time"

// ListingStatus is the lifecycle state of a marketplace listing.
// ACTIVE is the only non-terminal state.
type ListingStatus string

const (
	ListingActive    ListingStatus = "ACTIVE"
	ListingSold      ListingStatus = "SOLD"
	ListingCancelled ListingStatus = "CANCELLED"
)

// Listing is an offer to sell one owned instance at a fixed price.
// At most one ACTIVE listing may exist per instance; the database enforces
// this with a partial unique index.
type Listing struct {
	ID         string        `json:"listing_id" db:"listing_id"`
	InstanceID string        `json:"instance_id" db:"instance_id"`
	SellerID   string        `json:"seller_id" db:"seller_id"`
	Price      int64         `json:"price" db:"price"`
	Status     ListingStatus `json:"status" db:"status"`
	CreatedAt  time.Time     `json:"created_at" db:"created_at"`
	ClosedAt   *time.Time    `json:"closed_at,omitempty" db:"closed_at"`

	// Instance (with template) metadata, populated on joined reads.
	Instance *OwnedInstance `json:"instance,omitempty"`
}
