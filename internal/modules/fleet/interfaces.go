package fleet

import (
	"context"

	"fleetrental/internal/domain"
)

type TrailerRepository interface {
	Create(ctx context.Context, t *domain.Trailer) error
	GetByID(ctx context.Context, id int64) (*domain.Trailer, error)
	List(ctx context.Context) ([]domain.Trailer, error)
	Update(ctx context.Context, t *domain.Trailer) error
	Delete(ctx context.Context, id int64) error
}

type AuditWriter interface {
	AppendTrailerLog(ctx context.Context, log *domain.TrailerLog) error
	ListTrailerLogsByTrailer(ctx context.Context, trailerID int64) ([]domain.TrailerLog, error)
}

type ServiceHistoryReader interface {
	ListByTrailer(ctx context.Context, trailerID int64) ([]domain.ServiceHistory, error)
}
