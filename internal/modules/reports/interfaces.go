package reports

import (
	"context"

	"fleetrental/internal/domain"
)

type TrailerReader interface {
	List(ctx context.Context) ([]domain.Trailer, error)
}

type RentalReader interface {
	ListAll(ctx context.Context) ([]domain.Rental, error)
}

type StockReader interface {
	ListItems(ctx context.Context) ([]domain.WarehouseItem, error)
}

type ServiceHistoryReader interface {
	List(ctx context.Context) ([]domain.ServiceHistory, error)
}
