package market

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mangapulse/economy-engine/internal/domain"
	"github.com/mangapulse/economy-engine/internal/repository"
)

// MockRepository implements repository.Market for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetInstance(ctx context.Context, instanceID string) (*domain.OwnedInstance, error) {
	args := m.Called(ctx, instanceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OwnedInstance), args.Error(1)
}

func (m *MockRepository) CreateListing(ctx context.Context, sellerID, instanceID string, price int64) (*domain.Listing, error) {
	args := m.Called(ctx, sellerID, instanceID, price)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockRepository) GetListing(ctx context.Context, listingID string) (*domain.Listing, error) {
	args := m.Called(ctx, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockRepository) ListActiveListings(ctx context.Context, limit, offset int) ([]domain.Listing, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Listing), args.Error(1)
}

func (m *MockRepository) MarkListingCancelled(ctx context.Context, listingID string) (bool, error) {
	args := m.Called(ctx, listingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.MarketTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.MarketTx), args.Error(1)
}

// MockTx implements repository.MarketTx for testing
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

func (m *MockTx) GetListing(ctx context.Context, listingID string) (*domain.Listing, error) {
	args := m.Called(ctx, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockTx) MarkListingSold(ctx context.Context, listingID string) (bool, error) {
	args := m.Called(ctx, listingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTx) TransferInstance(ctx context.Context, instanceID, fromAccountID, toAccountID string) (bool, error) {
	args := m.Called(ctx, instanceID, fromAccountID, toAccountID)
	return args.Bool(0), args.Error(1)
}
