package repository

import (
	"context"

	"github.com/mangapulse/economy-engine/internal/domain"
)

// Tx defines the interface for transactional operations
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// BalanceTx groups the balance and ledger operations shared by the pack
// opening and purchase transactions. LockBalance takes a row lock so the
// balance check and the debit happen inside one atomic unit; DebitBalance is
// additionally guarded so a balance can never go negative.
type BalanceTx interface {
	LockBalance(ctx context.Context, accountID string) (int64, error)
	DebitBalance(ctx context.Context, accountID string, amount int64) (int64, error)
	CreditBalance(ctx context.Context, accountID string, amount int64) error
	AppendLedgerEntry(ctx context.Context, entry domain.LedgerEntry) error
}
