package logs

import (
	"context"

	"fleetrental/internal/domain"
)

// Service exposes the read side of the audit trail. Writes happen at the
// point of mutation in the owning modules, never here.
type Service struct {
	audit AuditReader
}

func NewService(audit AuditReader) *Service {
	return &Service{audit: audit}
}

// TrailerLogPage carries the filtered rows plus the event kinds present,
// so the client can render the filter without a second round trip.
type TrailerLogPage struct {
	Logs       []domain.TrailerLog `json:"logs"`
	EventTypes []string            `json:"event_types"`
	Selected   string              `json:"selected"`
}

func (s *Service) TrailerLogs(ctx context.Context, eventType string) (*TrailerLogPage, error) {
	rows, err := s.audit.ListTrailerLogs(ctx, domain.TrailerLogEvent(eventType))
	if err != nil {
		return nil, err
	}
	types, err := s.audit.TrailerLogEventTypes(ctx)
	if err != nil {
		return nil, err
	}
	return &TrailerLogPage{Logs: rows, EventTypes: types, Selected: eventType}, nil
}

func (s *Service) TrailerLogsByTrailer(ctx context.Context, trailerID int64) ([]domain.TrailerLog, error) {
	return s.audit.ListTrailerLogsByTrailer(ctx, trailerID)
}

// RentalHistory with rentalID 0 returns history across all rentals.
func (s *Service) RentalHistory(ctx context.Context, rentalID int64) ([]domain.RentalHistory, error) {
	return s.audit.ListRentalHistory(ctx, rentalID)
}
