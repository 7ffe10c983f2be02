package logs

import (
	"context"

	"fleetrental/internal/domain"
)

type AuditReader interface {
	ListTrailerLogs(ctx context.Context, eventType domain.TrailerLogEvent) ([]domain.TrailerLog, error)
	ListTrailerLogsByTrailer(ctx context.Context, trailerID int64) ([]domain.TrailerLog, error)
	TrailerLogEventTypes(ctx context.Context) ([]string, error)
	ListRentalHistory(ctx context.Context, rentalID int64) ([]domain.RentalHistory, error)
}
