package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mangapulse/economy-engine/internal/domain"
	"github.com/mangapulse/economy-engine/internal/gacha"
	"github.com/mangapulse/economy-engine/internal/market"
)

// MockDropRateService implements droprate.Service for testing
type MockDropRateService struct {
	mock.Mock
}

func (m *MockDropRateService) GetRates(ctx context.Context, packType string) (domain.DropTable, error) {
	args := m.Called(ctx, packType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.DropTable), args.Error(1)
}

func (m *MockDropRateService) SetRates(ctx context.Context, packType string, rates domain.DropTable) error {
	args := m.Called(ctx, packType, rates)
	return args.Error(0)
}

// MockGachaService implements gacha.Service for testing
type MockGachaService struct {
	mock.Mock
}

func (m *MockGachaService) OpenPack(ctx context.Context, accountID, packType string) (*gacha.PackResult, error) {
	args := m.Called(ctx, accountID, packType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gacha.PackResult), args.Error(1)
}

// MockMarketService implements market.Service for testing
type MockMarketService struct {
	mock.Mock
}

func (m *MockMarketService) CreateListing(ctx context.Context, sellerID, instanceID string, price int64) (*domain.Listing, error) {
	args := m.Called(ctx, sellerID, instanceID, price)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockMarketService) CancelListing(ctx context.Context, sellerID, listingID string) error {
	args := m.Called(ctx, sellerID, listingID)
	return args.Error(0)
}

func (m *MockMarketService) GetListing(ctx context.Context, listingID string) (*domain.Listing, error) {
	args := m.Called(ctx, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockMarketService) ListActiveListings(ctx context.Context, limit, offset int) ([]domain.Listing, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Listing), args.Error(1)
}

func (m *MockMarketService) PurchaseListing(ctx context.Context, buyerID, listingID string) (*market.PurchaseResult, error) {
	args := m.Called(ctx, buyerID, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*market.PurchaseResult), args.Error(1)
}
