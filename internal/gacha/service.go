// Package gacha implements pack opening: probabilistic reward generation
// from configurable drop-rate tables, executed as one atomic unit of work.
package gacha

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/mangapulse/economy-engine/internal/domain"
	"github.com/mangapulse/economy-engine/internal/logger"
	"github.com/mangapulse/economy-engine/internal/metrics"
	"github.com/mangapulse/economy-engine/internal/rarity"
	"github.com/mangapulse/economy-engine/internal/repository"
)

// PackResult contains the outcome of a successful pack opening
type PackResult struct {
	Instances            []domain.OwnedInstance `json:"instances"`
	ContainsRareOrBetter bool                   `json:"contains_rare_or_better"`
	NewBalance           int64                  `json:"new_balance"`
}

// Service defines the interface for pack opening operations
type Service interface {
	OpenPack(ctx context.Context, accountID, packType string) (*PackResult, error)
}

type service struct {
	repo          repository.Gacha
	rnd           rarity.RandFunc // For rolling RNG
	templateCache *expirable.LRU[domain.Rarity, []domain.ItemTemplate]
}

// NewService creates a new gacha service
func NewService(repo repository.Gacha) Service {
	return &service{
		repo:          repo,
		rnd:           rand.Float64,
		templateCache: expirable.NewLRU[domain.Rarity, []domain.ItemTemplate](templateCacheSize, nil, templateCacheTTL),
	}
}

// OpenPack opens one pack for the account: validate funds, roll rarities,
// bind each to a template, persist the new instances, debit the cost, and
// append the ledger entry. All writes happen in one transaction; either the
// whole pack is visible or none of it is.
func (s *service) OpenPack(ctx context.Context, accountID, packType string) (*PackResult, error) {
	log := logger.FromContext(ctx)
	log.Info("OpenPack called", "account_id", accountID, "pack_type", packType)

	pack, err := s.repo.GetPackType(ctx, packType)
	if err != nil {
		log.Error("Failed to get pack type", "error", err)
		return nil, fmt.Errorf("failed to get pack type: %w", err)
	}
	if pack == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrPackTypeNotConfigured, packType)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	// Balance check and debit share the row lock taken here, so the balance
	// can never go negative under concurrent opens.
	balance, err := tx.LockBalance(ctx, accountID)
	if err != nil {
		log.Error("Failed to lock balance", "error", err)
		return nil, err
	}
	if balance < pack.Cost {
		return nil, fmt.Errorf("%w: balance %d, cost %d", domain.ErrInsufficientFunds, balance, pack.Cost)
	}

	rolled := rarity.RollMany(pack.Rates, pack.CardCount, s.rnd)

	instances := make([]domain.OwnedInstance, 0, len(rolled))
	containsRare := false
	for _, tier := range rolled {
		tmpl, err := s.pickTemplate(ctx, tier)
		if err != nil {
			return nil, err
		}

		inst, err := tx.InsertInstance(ctx, accountID, tmpl.ID)
		if err != nil {
			log.Error("Failed to insert instance", "error", err)
			return nil, fmt.Errorf("failed to insert instance: %w", err)
		}
		inst.Template = tmpl
		instances = append(instances, *inst)

		if tier.AtLeast(domain.NotableRarity) {
			containsRare = true
		}
	}

	newBalance, err := tx.DebitBalance(ctx, accountID, pack.Cost)
	if err != nil {
		log.Error("Failed to debit balance", "error", err)
		return nil, err
	}

	err = tx.AppendLedgerEntry(ctx, domain.LedgerEntry{
		AccountID:   accountID,
		Amount:      -pack.Cost,
		Type:        domain.EntryPackPurchase,
		Description: fmt.Sprintf(packPurchaseDescription, packType),
	})
	if err != nil {
		log.Error("Failed to append ledger entry", "error", err)
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", "error", err)
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.PacksOpened.WithLabelValues(packType).Inc()
	metrics.RubiesSpent.Add(float64(pack.Cost))
	if containsRare {
		metrics.NotablePulls.WithLabelValues(packType).Inc()
	}

	log.Info("Pack opened", "account_id", accountID, "pack_type", packType,
		"cards", len(instances), "contains_rare_or_better", containsRare, "new_balance", newBalance)

	return &PackResult{
		Instances:            instances,
		ContainsRareOrBetter: containsRare,
		NewBalance:           newBalance,
	}, nil
}

// pickTemplate selects one template uniformly among all templates of the
// rolled rarity. A rarity with zero templates is an operator error and
// aborts the whole open; the engine never substitutes a different rarity.
func (s *service) pickTemplate(ctx context.Context, tier domain.Rarity) (*domain.ItemTemplate, error) {
	templates, err := s.templatesFor(ctx, tier)
	if err != nil {
		return nil, err
	}
	if len(templates) == 0 {
		logger.FromContext(ctx).Error("No item templates for enabled rarity", "rarity", tier)
		return nil, fmt.Errorf("%w: %s", domain.ErrNoTemplatesForRarity, tier)
	}

	idx := int(s.rnd() * float64(len(templates)))
	if idx >= len(templates) {
		idx = len(templates) - 1
	}
	tmpl := templates[idx]
	return &tmpl, nil
}

func (s *service) templatesFor(ctx context.Context, tier domain.Rarity) ([]domain.ItemTemplate, error) {
	if templates, ok := s.templateCache.Get(tier); ok {
		return templates, nil
	}

	templates, err := s.repo.GetTemplatesByRarity(ctx, tier)
	if err != nil {
		return nil, fmt.Errorf("failed to get templates: %w", err)
	}
	// An empty list is an operator error; don't cache it so a data fix
	// takes effect immediately.
	if len(templates) > 0 {
		s.templateCache.Add(tier, templates)
	}
	return templates, nil
}
