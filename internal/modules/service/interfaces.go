package service

import (
	"context"

	"fleetrental/internal/domain"
)

type TrailerStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Trailer, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]any) error
	ListByStatus(ctx context.Context, status domain.TrailerStatus) ([]domain.Trailer, error)
}

type HistoryRepository interface {
	Create(ctx context.Context, sh *domain.ServiceHistory) error
	List(ctx context.Context) ([]domain.ServiceHistory, error)
}

type AuditWriter interface {
	AppendTrailerLog(ctx context.Context, log *domain.TrailerLog) error
}

type AssignmentRemover interface {
	DeleteByTrailer(ctx context.Context, trailerID int64) error
}
