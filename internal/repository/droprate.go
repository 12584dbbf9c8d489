package repository

import (
	"context"

	"github.com/mangapulse/economy-engine/internal/domain"
)

// DropRate defines the interface for drop-rate table persistence
type DropRate interface {
	// GetPackType returns the full pack configuration, or nil if the pack
	// type is not configured.
	GetPackType(ctx context.Context, packType string) (*domain.PackType, error)

	// ReplaceRates atomically replaces the drop-rate table of a pack type
	// and bumps its version. The previous table stays authoritative if the
	// replace fails.
	ReplaceRates(ctx context.Context, packType string, rates domain.DropTable) error
}
