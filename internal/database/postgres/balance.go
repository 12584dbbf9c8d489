package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mangapulse/economy-engine/internal/domain"
)

// Balance and ledger helpers shared by the gacha and market transactions.

// lockBalance takes a row lock on the account and returns its balance.
// Callers hold the lock until commit, which serializes concurrent debits
// against the same account.
func lockBalance(ctx context.Context, db dbtx, accountID string) (int64, error) {
	query := `
		SELECT balance
		FROM accounts
		WHERE account_id = $1
		FOR UPDATE
	`

	var balance int64
	err := db.QueryRow(ctx, query, accountID).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, accountID)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to lock balance: %w", err)
	}
	return balance, nil
}

// debitBalance subtracts amount and returns the new balance. The balance
// guard in the WHERE clause makes a negative balance impossible even if a
// caller skipped the preceding lock-and-check.
func debitBalance(ctx context.Context, db dbtx, accountID string, amount int64) (int64, error) {
	query := `
		UPDATE accounts
		SET balance = balance - $2
		WHERE account_id = $1 AND balance >= $2
		RETURNING balance
	`

	var balance int64
	err := db.QueryRow(ctx, query, accountID, amount).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("%w: account %s", domain.ErrInsufficientFunds, accountID)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to debit balance: %w", err)
	}
	return balance, nil
}

// creditBalance adds amount to the account balance.
func creditBalance(ctx context.Context, db dbtx, accountID string, amount int64) error {
	query := `
		UPDATE accounts
		SET balance = balance + $2
		WHERE account_id = $1
	`

	tag, err := db.Exec(ctx, query, accountID, amount)
	if err != nil {
		return fmt.Errorf("failed to credit balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrAccountNotFound, accountID)
	}
	return nil
}

// appendLedgerEntry inserts one immutable ledger row.
func appendLedgerEntry(ctx context.Context, db dbtx, entry domain.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entries (account_id, amount, entry_type, description)
		VALUES ($1, $2, $3, $4)
	`

	_, err := db.Exec(ctx, query, entry.AccountID, entry.Amount, entry.Type, entry.Description)
	if err != nil {
		return fmt.Errorf("failed to append ledger entry: %w", err)
	}
	return nil
}
