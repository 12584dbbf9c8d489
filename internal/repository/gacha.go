package repository

import (
	"context"

	"github.com/mangapulse/economy-engine/internal/domain"
)

// Gacha defines the interface for pack opening persistence
type Gacha interface {
	GetPackType(ctx context.Context, packType string) (*domain.PackType, error)
	GetTemplatesByRarity(ctx context.Context, r domain.Rarity) ([]domain.ItemTemplate, error)
	BeginTx(ctx context.Context) (GachaTx, error)
}

// GachaTx defines the interface for the atomic pack opening unit
type GachaTx interface {
	Tx
	BalanceTx
	InsertInstance(ctx context.Context, accountID string, templateID int) (*domain.OwnedInstance, error)
}
