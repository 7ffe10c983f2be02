package warehouse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fleetrental/internal/domain"
)

type mockItemRepo struct {
	mock.Mock
}

func (m *mockItemRepo) CreateItem(ctx context.Context, item *domain.WarehouseItem) error {
	args := m.Called(ctx, item)
	item.ID = 1
	return args.Error(0)
}

func (m *mockItemRepo) GetItemByID(ctx context.Context, id int64) (*domain.WarehouseItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WarehouseItem), args.Error(1)
}

func (m *mockItemRepo) ListItems(ctx context.Context) ([]domain.WarehouseItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.WarehouseItem), args.Error(1)
}

func (m *mockItemRepo) SaveItem(ctx context.Context, item *domain.WarehouseItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockItemRepo) DeleteItem(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockItemRepo) DeleteItems(ctx context.Context, ids []int64) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func (m *mockItemRepo) AppendLog(ctx context.Context, log *domain.WarehouseLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *mockItemRepo) ListLogs(ctx context.Context) ([]domain.WarehouseLog, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.WarehouseLog), args.Error(1)
}

func TestAddItem_LogsInitialQuantity(t *testing.T) {
	repo := new(mockItemRepo)
	svc := NewService(repo)

	repo.On("CreateItem", mock.Anything, mock.Anything).Return(nil)
	repo.On("AppendLog", mock.Anything, mock.Anything).Return(nil)

	actor := Actor{ID: 7, Username: "manager"}
	item, err := svc.AddItem(context.Background(), AddItemRequest{
		Name:      "Brake pads",
		Quantity:  12,
		DateState: "2024-05-01",
	}, actor)

	assert.NoError(t, err)
	assert.Equal(t, 12, item.Quantity)

	log := repo.Calls[1].Arguments.Get(1).(*domain.WarehouseLog)
	assert.Equal(t, 12, log.QuantityTaken)
	assert.Equal(t, "manager added 12 pcs of item 'Brake pads'.", log.Message)
	assert.Equal(t, int64(7), *log.UserID)
}

func TestAddItem_InvalidDate(t *testing.T) {
	repo := new(mockItemRepo)
	svc := NewService(repo)

	_, err := svc.AddItem(context.Background(), AddItemRequest{
		Name:      "Bolts",
		Quantity:  5,
		DateState: "05/01/2024",
	}, Actor{ID: 1, Username: "admin"})

	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "CreateItem")
}

func TestUpdateQuantity_TakeLogsNegativeDelta(t *testing.T) {
	repo := new(mockItemRepo)
	svc := NewService(repo)

	repo.On("GetItemByID", mock.Anything, int64(3)).
		Return(&domain.WarehouseItem{ID: 3, Name: "Tires", Quantity: 10}, nil)
	repo.On("SaveItem", mock.Anything, mock.Anything).Return(nil)
	repo.On("AppendLog", mock.Anything, mock.Anything).Return(nil)

	item, err := svc.UpdateQuantity(context.Background(), 3, UpdateQuantityRequest{Quantity: 6}, Actor{ID: 2, Username: "kate"})

	assert.NoError(t, err)
	assert.Equal(t, 6, item.Quantity)

	log := repo.Calls[2].Arguments.Get(1).(*domain.WarehouseLog)
	assert.Equal(t, -4, log.QuantityTaken)
	assert.Equal(t, "kate took 4 pcs from item 'Tires'.", log.Message)
}

func TestUpdateQuantity_AddLogsPositiveDelta(t *testing.T) {
	repo := new(mockItemRepo)
	svc := NewService(repo)

	repo.On("GetItemByID", mock.Anything, int64(3)).
		Return(&domain.WarehouseItem{ID: 3, Name: "Tires", Quantity: 10}, nil)
	repo.On("SaveItem", mock.Anything, mock.Anything).Return(nil)
	repo.On("AppendLog", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.UpdateQuantity(context.Background(), 3, UpdateQuantityRequest{Quantity: 15}, Actor{ID: 2, Username: "kate"})

	assert.NoError(t, err)

	log := repo.Calls[2].Arguments.Get(1).(*domain.WarehouseLog)
	assert.Equal(t, 5, log.QuantityTaken)
	assert.Equal(t, "kate added 5 pcs to item 'Tires'.", log.Message)
}

func TestUpdateQuantity_UnchangedSkipsLog(t *testing.T) {
	repo := new(mockItemRepo)
	svc := NewService(repo)

	repo.On("GetItemByID", mock.Anything, int64(3)).
		Return(&domain.WarehouseItem{ID: 3, Name: "Tires", Quantity: 10}, nil)
	repo.On("SaveItem", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.UpdateQuantity(context.Background(), 3, UpdateQuantityRequest{Quantity: 10}, Actor{ID: 2, Username: "kate"})

	assert.NoError(t, err)
	repo.AssertNotCalled(t, "AppendLog")
}
