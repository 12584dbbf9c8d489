package domain

import "time"

// EntryType classifies a ledger entry by the operation that produced it.
type EntryType string

const (
	EntryPackPurchase   EntryType = "pack_purchase"
	EntryMarketPurchase EntryType = "market_purchase"
	EntryMarketSale     EntryType = "market_sale"
)

// LedgerEntry is an immutable, append-only record of a balance change.
// Entries exist for audit and reconciliation and are never mutated or
// deleted.
type LedgerEntry struct {
	ID          int64     `json:"entry_id" db:"entry_id"`
	AccountID   string    `json:"account_id" db:"account_id"`
	Amount      int64     `json:"amount" db:"amount"`
	Type        EntryType `json:"entry_type" db:"entry_type"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
