package state

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/Stashkeeper_Go/internal/domain"
	"github.com/osse101/Stashkeeper_Go/internal/inventory"
	"github.com/osse101/Stashkeeper_Go/internal/media"
)

// MockService is a mock implementation of the Service interface
type MockService struct {
	mock.Mock
}

func (m *MockService) result(args mock.Arguments) (*Result, error) {
	res, _ := args.Get(0).(*Result)
	return res, args.Error(1)
}

func (m *MockService) Version() uint64 {
	args := m.Called()
	return args.Get(0).(uint64)
}

func (m *MockService) Snapshot() domain.State {
	args := m.Called()
	return args.Get(0).(domain.State)
}

func (m *MockService) ResolveUser(ctx context.Context, actorID string) (*domain.User, error) {
	args := m.Called(ctx, actorID)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *MockService) ListUsers(ctx context.Context) []domain.User {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User)
}

func (m *MockService) ListInventories(ctx context.Context, actorID string) ([]domain.Inventory, error) {
	args := m.Called(ctx, actorID)
	invs, _ := args.Get(0).([]domain.Inventory)
	return invs, args.Error(1)
}

func (m *MockService) GetInventory(ctx context.Context, actorID, inventoryID string) (*domain.Inventory, error) {
	args := m.Called(ctx, actorID, inventoryID)
	inv, _ := args.Get(0).(*domain.Inventory)
	return inv, args.Error(1)
}

func (m *MockService) GetShop(ctx context.Context) domain.Shop {
	args := m.Called(ctx)
	return args.Get(0).(domain.Shop)
}

func (m *MockService) ListWeapons(ctx context.Context) []domain.Weapon {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Weapon)
}

func (m *MockService) RenameFixedCategory(ctx context.Context, actorID, inventoryID string, index int, name string) (*Result, error) {
	return m.result(m.Called(ctx, actorID, inventoryID, index, name))
}

func (m *MockService) CreateCustomCategory(ctx context.Context, actorID, inventoryID, fixedID, name string) (*Result, error) {
	return m.result(m.Called(ctx, actorID, inventoryID, fixedID, name))
}

func (m *MockService) RenameCustomCategory(ctx context.Context, actorID, inventoryID, categoryID, name string) (*Result, error) {
	return m.result(m.Called(ctx, actorID, inventoryID, categoryID, name))
}

func (m *MockService) DeleteCustomCategory(ctx context.Context, actorID, inventoryID, categoryID string, confirm bool) (*Result, error) {
	return m.result(m.Called(ctx, actorID, inventoryID, categoryID, confirm))
}

func (m *MockService) CreateItem(ctx context.Context, actorID, inventoryID, fixedID, categoryID string, in domain.NewItem) (*Result, error) {
	return m.result(m.Called(ctx, actorID, inventoryID, fixedID, categoryID, in))
}

func (m *MockService) EditItem(ctx context.Context, actorID, inventoryID, itemID string, patch domain.ItemPatch) (*Result, error) {
	return m.result(m.Called(ctx, actorID, inventoryID, itemID, patch))
}

func (m *MockService) DeleteItem(ctx context.Context, actorID, inventoryID, categoryID, itemID string) (*Result, error) {
	return m.result(m.Called(ctx, actorID, inventoryID, categoryID, itemID))
}

func (m *MockService) MoveItem(ctx context.Context, actorID, inventoryID, fromCategoryID, toCategoryID, itemID string) (*Result, error) {
	return m.result(m.Called(ctx, actorID, inventoryID, fromCategoryID, toCategoryID, itemID))
}

func (m *MockService) TransferItem(ctx context.Context, actorID, sourceID string, req inventory.TransferRequest, targetID string) (*Result, error) {
	return m.result(m.Called(ctx, actorID, sourceID, req, targetID))
}

func (m *MockService) SetMoney(ctx context.Context, actorID, inventoryID string, amount int) (*Result, error) {
	return m.result(m.Called(ctx, actorID, inventoryID, amount))
}

func (m *MockService) SetMeta(ctx context.Context, actorID, inventoryID string, meta domain.Meta) (*Result, error) {
	return m.result(m.Called(ctx, actorID, inventoryID, meta))
}

func (m *MockService) Shoot(ctx context.Context, actorID, inventoryID, itemID string) (*Result, error) {
	return m.result(m.Called(ctx, actorID, inventoryID, itemID))
}

func (m *MockService) ReloadWeapon(ctx context.Context, actorID, inventoryID, itemID string) (*Result, error) {
	return m.result(m.Called(ctx, actorID, inventoryID, itemID))
}

func (m *MockService) CreateWeapon(ctx context.Context, actorID string, in domain.NewWeapon, image *media.Upload) (*Result, error) {
	return m.result(m.Called(ctx, actorID, in, image))
}

func (m *MockService) DeleteWeapon(ctx context.Context, actorID, weaponID string, confirm bool) (*Result, error) {
	return m.result(m.Called(ctx, actorID, weaponID, confirm))
}

func (m *MockService) AddWeaponToStand(ctx context.Context, actorID, standID, weaponID string) (*Result, error) {
	return m.result(m.Called(ctx, actorID, standID, weaponID))
}

func (m *MockService) RemoveWeaponFromStand(ctx context.Context, actorID, standID, weaponID string) (*Result, error) {
	return m.result(m.Called(ctx, actorID, standID, weaponID))
}

func (m *MockService) RandomizeStand(ctx context.Context, actorID, standID string) (*Result, error) {
	return m.result(m.Called(ctx, actorID, standID))
}

func (m *MockService) Purchase(ctx context.Context, actorID, standID, weaponID, buyerID string) (*Result, error) {
	return m.result(m.Called(ctx, actorID, standID, weaponID, buyerID))
}

func (m *MockService) Reload(ctx context.Context, source string) error {
	args := m.Called(ctx, source)
	return args.Error(0)
}

func (m *MockService) AdminReload(ctx context.Context, actorID string) error {
	args := m.Called(ctx, actorID)
	return args.Error(0)
}
