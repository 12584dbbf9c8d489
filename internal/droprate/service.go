// Package droprate manages the per-pack-type drop-rate tables.
package droprate

import (
	"context"
	"fmt"

	"github.com/mangapulse/economy-engine/internal/domain"
	"github.com/mangapulse/economy-engine/internal/logger"
	"github.com/mangapulse/economy-engine/internal/repository"
)

// DefaultTable is returned for pack types with no configured table. Falling
// back is deterministic and logged; it never silently masks a missing
// configuration.
var DefaultTable = domain.DropTable{
	domain.RarityCommon: 60,
	domain.RarityRare:   25,
	domain.RaritySR:     10,
	domain.RaritySSR:    4,
	domain.RarityUR:     1,
}

// Service defines the interface for drop-rate table operations
type Service interface {
	GetRates(ctx context.Context, packType string) (domain.DropTable, error)
	SetRates(ctx context.Context, packType string, rates domain.DropTable) error
}

type service struct {
	repo repository.DropRate
}

// NewService creates a new drop-rate service
func NewService(repo repository.DropRate) Service {
	return &service{repo: repo}
}

func (s *service) GetRates(ctx context.Context, packType string) (domain.DropTable, error) {
	log := logger.FromContext(ctx)

	pt, err := s.repo.GetPackType(ctx, packType)
	if err != nil {
		log.Error("Failed to get pack type", "pack_type", packType, "error", err)
		return nil, fmt.Errorf("failed to get pack type: %w", err)
	}
	if pt == nil {
		log.Warn("Unknown pack type, falling back to default drop table", "pack_type", packType)
		return DefaultTable.Clone(), nil
	}

	return pt.Rates.Clone(), nil
}

func (s *service) SetRates(ctx context.Context, packType string, rates domain.DropTable) error {
	log := logger.FromContext(ctx)

	if err := rates.Validate(); err != nil {
		log.Warn("Rejected drop-rate update", "pack_type", packType, "sum", rates.Sum())
		return fmt.Errorf("%w: sum is %.4f", err, rates.Sum())
	}

	if err := s.repo.ReplaceRates(ctx, packType, rates.Clone()); err != nil {
		log.Error("Failed to replace drop rates", "pack_type", packType, "error", err)
		return err
	}

	log.Info("Drop rates updated", "pack_type", packType)
	return nil
}
