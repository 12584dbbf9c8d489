package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mangapulse/economy-engine/internal/domain"
	"github.com/mangapulse/economy-engine/internal/repository"
)

// GachaRepository implements the pack opening repository for PostgreSQL
type GachaRepository struct {
	db *pgxpool.Pool
}

// NewGachaRepository creates a new GachaRepository
func NewGachaRepository(db *pgxpool.Pool) *GachaRepository {
	return &GachaRepository{db: db}
}

// GachaTx implements repository.GachaTx
type GachaTx struct {
	tx pgx.Tx
}

// BeginTx starts a new transaction
func (r *GachaRepository) BeginTx(ctx context.Context) (repository.GachaTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &GachaTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *GachaTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *GachaTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// GetPackType retrieves the pack configuration, or nil if not configured
func (r *GachaRepository) GetPackType(ctx context.Context, packType string) (*domain.PackType, error) {
	return getPackType(ctx, r.db, packType)
}

// GetTemplatesByRarity retrieves all item templates of the given rarity
func (r *GachaRepository) GetTemplatesByRarity(ctx context.Context, rarity domain.Rarity) ([]domain.ItemTemplate, error) {
	query := `
		SELECT template_id, name, rarity, collection, image_url, created_at
		FROM item_templates
		WHERE rarity = $1
		ORDER BY template_id
	`

	rows, err := r.db.Query(ctx, query, rarity)
	if err != nil {
		return nil, fmt.Errorf("failed to query templates: %w", err)
	}
	defer rows.Close()

	var templates []domain.ItemTemplate
	for rows.Next() {
		var t domain.ItemTemplate
		err := rows.Scan(
			&t.ID,
			&t.Name,
			&t.Rarity,
			&t.Collection,
			&t.ImageURL,
			&t.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		templates = append(templates, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return templates, nil
}

// LockBalance locks the account row and returns its balance
func (t *GachaTx) LockBalance(ctx context.Context, accountID string) (int64, error) {
	return lockBalance(ctx, t.tx, accountID)
}

// DebitBalance subtracts amount and returns the new balance
func (t *GachaTx) DebitBalance(ctx context.Context, accountID string, amount int64) (int64, error) {
	return debitBalance(ctx, t.tx, accountID, amount)
}

// CreditBalance adds amount to the account balance
func (t *GachaTx) CreditBalance(ctx context.Context, accountID string, amount int64) error {
	return creditBalance(ctx, t.tx, accountID, amount)
}

// AppendLedgerEntry inserts one immutable ledger row
func (t *GachaTx) AppendLedgerEntry(ctx context.Context, entry domain.LedgerEntry) error {
	return appendLedgerEntry(ctx, t.tx, entry)
}

// InsertInstance creates a new owned instance bound to the account
func (t *GachaTx) InsertInstance(ctx context.Context, accountID string, templateID int) (*domain.OwnedInstance, error) {
	query := `
		INSERT INTO owned_instances (template_id, account_id)
		VALUES ($1, $2)
		RETURNING instance_id, template_id, account_id, locked, acquired_at
	`

	var inst domain.OwnedInstance
	err := t.tx.QueryRow(ctx, query, templateID, accountID).Scan(
		&inst.ID,
		&inst.TemplateID,
		&inst.AccountID,
		&inst.Locked,
		&inst.AcquiredAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert instance: %w", err)
	}
	return &inst, nil
}
