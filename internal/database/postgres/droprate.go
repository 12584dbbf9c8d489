package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mangapulse/economy-engine/internal/domain"
)

// DropRateRepository implements the drop-rate repository for PostgreSQL
type DropRateRepository struct {
	db *pgxpool.Pool
}

// NewDropRateRepository creates a new DropRateRepository
func NewDropRateRepository(db *pgxpool.Pool) *DropRateRepository {
	return &DropRateRepository{db: db}
}

// GetPackType retrieves the full pack configuration, or nil if the pack type
// is not configured.
func (r *DropRateRepository) GetPackType(ctx context.Context, packType string) (*domain.PackType, error) {
	return getPackType(ctx, r.db, packType)
}

// getPackType is shared with the gacha repository.
func getPackType(ctx context.Context, db dbtx, packType string) (*domain.PackType, error) {
	query := `
		SELECT pack_type, cost, card_count, rates, version
		FROM pack_types
		WHERE pack_type = $1
	`

	var pt domain.PackType
	var ratesJSON []byte
	err := db.QueryRow(ctx, query, packType).Scan(
		&pt.Name,
		&pt.Cost,
		&pt.CardCount,
		&ratesJSON,
		&pt.Version,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pack type: %w", err)
	}

	if err := json.Unmarshal(ratesJSON, &pt.Rates); err != nil {
		return nil, fmt.Errorf("failed to decode drop rates: %w", err)
	}
	return &pt, nil
}

// ReplaceRates atomically replaces the drop-rate table of a pack type and
// bumps its version. A single UPDATE keeps readers from ever observing a
// partially written table.
func (r *DropRateRepository) ReplaceRates(ctx context.Context, packType string, rates domain.DropTable) error {
	ratesJSON, err := json.Marshal(rates)
	if err != nil {
		return fmt.Errorf("failed to encode drop rates: %w", err)
	}

	query := `
		UPDATE pack_types
		SET rates = $2, version = version + 1, updated_at = now()
		WHERE pack_type = $1
	`

	tag, err := r.db.Exec(ctx, query, packType, ratesJSON)
	if err != nil {
		return fmt.Errorf("failed to replace drop rates: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrPackTypeNotConfigured, packType)
	}
	return nil
}
