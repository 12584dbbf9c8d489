package gacha

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mangapulse/economy-engine/internal/domain"
	"github.com/mangapulse/economy-engine/internal/repository"
)

// MockRepository implements repository.Gacha for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetPackType(ctx context.Context, packType string) (*domain.PackType, error) {
	args := m.Called(ctx, packType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PackType), args.Error(1)
}

func (m *MockRepository) GetTemplatesByRarity(ctx context.Context, r domain.Rarity) ([]domain.ItemTemplate, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ItemTemplate), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.GachaTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.GachaTx), args.Error(1)
}

// MockTx implements repository.GachaTx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) LockBalance(ctx context.Context, accountID string) (int64, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTx) DebitBalance(ctx context.Context, accountID string, amount int64) (int64, error) {
	args := m.Called(ctx, accountID, amount)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTx) CreditBalance(ctx context.Context, accountID string, amount int64) error {
	args := m.Called(ctx, accountID, amount)
	return args.Error(0)
}

func (m *MockTx) AppendLedgerEntry(ctx context.Context, entry domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockTx) InsertInstance(ctx context.Context, accountID string, templateID int) (*domain.OwnedInstance, error) {
	args := m.Called(ctx, accountID, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OwnedInstance), args.Error(1)
}
