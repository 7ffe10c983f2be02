package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"fleetrental/internal/domain"
)

// Service implements the maintenance workflow. It is the only writer of
// entry into and exit from the maintenance status; the liveness monitor
// never touches trailers while they are in it.
type Service struct {
	trailers    TrailerStore
	histories   HistoryRepository
	audits      AuditWriter
	assignments AssignmentRemover
	center      ServiceCenter
}

func NewService(
	trailers TrailerStore,
	histories HistoryRepository,
	audits AuditWriter,
	assignments AssignmentRemover,
	center ServiceCenter,
) *Service {
	return &Service{
		trailers:    trailers,
		histories:   histories,
		audits:      audits,
		assignments: assignments,
		center:      center,
	}
}

// SendForService puts the trailer into maintenance and relocates it to
// the service center. A "transport" service additionally pulls the
// trailer out of every rental it is assigned to.
func (s *Service) SendForService(ctx context.Context, trailerID int64, req SendForServiceRequest) (*domain.Trailer, error) {
	t, err := s.trailers.GetByID(ctx, trailerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	err = s.trailers.UpdateFields(ctx, t.ID, map[string]any{
		"status":    domain.TrailerMaintenance,
		"notes":     req.Note,
		"latitude":  s.center.Latitude,
		"longitude": s.center.Longitude,
	})
	if err != nil {
		return nil, err
	}

	id := t.ID
	if err := s.audits.AppendTrailerLog(ctx, &domain.TrailerLog{
		TrailerID: &id,
		EventType: domain.EventStatusChange,
		Message: fmt.Sprintf("Trailer sent for service (%s) - %s. Location: %s, %s",
			req.ServiceType, req.Note, s.center.Name, s.center.Address),
	}); err != nil {
		return nil, err
	}

	if err := s.histories.Create(ctx, &domain.ServiceHistory{
		TrailerID:   t.ID,
		ServiceDate: today(),
		Description: fmt.Sprintf("%s - %s (location: %s)", req.ServiceType, req.Note, s.center.Name),
		Cost:        0,
	}); err != nil {
		return nil, err
	}

	if strings.EqualFold(req.ServiceType, "transport") {
		if err := s.assignments.DeleteByTrailer(ctx, t.ID); err != nil {
			return nil, err
		}
	}

	return s.trailers.GetByID(ctx, t.ID)
}

// MarkServiceDone closes the maintenance episode. The trailer comes back
// as inactive; the next liveness sweep promotes it if it is reachable.
func (s *Service) MarkServiceDone(ctx context.Context, trailerID int64, req MarkDoneRequest) (*domain.Trailer, error) {
	t, err := s.trailers.GetByID(ctx, trailerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	description := strings.TrimSpace(req.Comment)
	if description == "" {
		description = "Service finished without notes."
	}

	if err := s.histories.Create(ctx, &domain.ServiceHistory{
		TrailerID:   t.ID,
		ServiceDate: today(),
		Description: description,
		Cost:        0,
	}); err != nil {
		return nil, err
	}

	if err := s.trailers.UpdateFields(ctx, t.ID, map[string]any{
		"status": domain.TrailerInactive,
	}); err != nil {
		return nil, err
	}

	id := t.ID
	if err := s.audits.AppendTrailerLog(ctx, &domain.TrailerLog{
		TrailerID: &id,
		EventType: domain.EventStatusChange,
		Message:   fmt.Sprintf("Trailer %s finished service. Note: %s", t.Name, req.Comment),
	}); err != nil {
		return nil, err
	}

	return s.trailers.GetByID(ctx, t.ID)
}

// ActiveServices lists the trailers currently in maintenance.
func (s *Service) ActiveServices(ctx context.Context) ([]domain.Trailer, error) {
	return s.trailers.ListByStatus(ctx, domain.TrailerMaintenance)
}

func (s *Service) History(ctx context.Context) ([]domain.ServiceHistory, error) {
	return s.histories.List(ctx)
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
