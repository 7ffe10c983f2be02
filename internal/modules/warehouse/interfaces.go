package warehouse

import (
	"context"

	"fleetrental/internal/domain"
)

type ItemRepository interface {
	CreateItem(ctx context.Context, item *domain.WarehouseItem) error
	GetItemByID(ctx context.Context, id int64) (*domain.WarehouseItem, error)
	ListItems(ctx context.Context) ([]domain.WarehouseItem, error)
	SaveItem(ctx context.Context, item *domain.WarehouseItem) error
	DeleteItem(ctx context.Context, id int64) error
	DeleteItems(ctx context.Context, ids []int64) error
	AppendLog(ctx context.Context, log *domain.WarehouseLog) error
	ListLogs(ctx context.Context) ([]domain.WarehouseLog, error)
}
