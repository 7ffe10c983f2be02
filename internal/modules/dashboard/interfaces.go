package dashboard

import (
	"context"
	"time"

	"fleetrental/internal/domain"
)

type TrailerReader interface {
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.TrailerStatus) (int64, error)
	ListWithCoordinates(ctx context.Context) ([]domain.Trailer, error)
}

type RentalReader interface {
	StartDates(ctx context.Context) ([]time.Time, error)
}

type AssignmentReader interface {
	DistinctTrailerIDs(ctx context.Context) ([]int64, error)
}

type StockCounter interface {
	CountItemsBelow(ctx context.Context, threshold int) (int64, error)
}

type UserCounter interface {
	Count(ctx context.Context) (int64, error)
}
