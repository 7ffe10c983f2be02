package fleet

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"fleetrental/internal/domain"
	"fleetrental/internal/logger"
)

// Service owns trailer CRUD. Every mutation appends exactly one audit
// row, so no duplicate log rows appear when several call sites mutate
// the same trailer.
type Service struct {
	trailers  TrailerRepository
	audits    AuditWriter
	histories ServiceHistoryReader
}

func NewService(trailers TrailerRepository, audits AuditWriter, histories ServiceHistoryReader) *Service {
	return &Service{
		trailers:  trailers,
		audits:    audits,
		histories: histories,
	}
}

func (s *Service) CreateTrailer(ctx context.Context, req TrailerRequest, actor string) (*domain.Trailer, error) {
	status := domain.TrailerStatus(req.Status)
	if status == "" {
		status = domain.TrailerActive
	}

	t := &domain.Trailer{
		Name:               req.Name,
		IPAddress:          req.IPAddress,
		SerialNumber:       req.SerialNumber,
		RegistrationNumber: req.RegistrationNumber,
		OperatorPhone:      req.OperatorPhone,
		LocationLink:       req.LocationLink,
		Notes:              req.Notes,
		Latitude:           req.Latitude,
		Longitude:          req.Longitude,
		Status:             status,
	}

	if err := s.trailers.Create(ctx, t); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateSerial
		}
		return nil, err
	}

	s.appendLog(ctx, t.ID, domain.EventAdded,
		fmt.Sprintf("Trailer '%s' was added by %s.", t.Name, actor))

	return t, nil
}

func (s *Service) GetTrailer(ctx context.Context, id int64) (*TrailerDetail, error) {
	t, err := s.trailers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	histories, err := s.histories.ListByTrailer(ctx, id)
	if err != nil {
		return nil, err
	}

	logs, err := s.audits.ListTrailerLogsByTrailer(ctx, id)
	if err != nil {
		return nil, err
	}

	return &TrailerDetail{
		Trailer:          *t,
		ServiceHistories: histories,
		Logs:             logs,
	}, nil
}

func (s *Service) ListTrailers(ctx context.Context) ([]domain.Trailer, error) {
	return s.trailers.List(ctx)
}

func (s *Service) UpdateTrailer(ctx context.Context, id int64, req TrailerRequest, actor string) (*domain.Trailer, error) {
	t, err := s.trailers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	oldStatus := t.Status

	t.Name = req.Name
	t.IPAddress = req.IPAddress
	t.SerialNumber = req.SerialNumber
	t.RegistrationNumber = req.RegistrationNumber
	t.OperatorPhone = req.OperatorPhone
	t.LocationLink = req.LocationLink
	t.Notes = req.Notes
	t.Latitude = req.Latitude
	t.Longitude = req.Longitude
	if req.Status != "" {
		t.Status = domain.TrailerStatus(req.Status)
	}

	if err := s.trailers.Update(ctx, t); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateSerial
		}
		return nil, err
	}

	s.appendLog(ctx, t.ID, domain.EventEdited,
		fmt.Sprintf("Trailer '%s' was edited by %s.", t.Name, actor))

	if oldStatus != t.Status {
		s.appendLog(ctx, t.ID, domain.EventStatusChange,
			fmt.Sprintf("Status changed to '%s' by %s at %s.", t.Status, actor, time.Now().Format("15:04")))
	}

	return t, nil
}

func (s *Service) DeleteTrailer(ctx context.Context, id int64, actor string) error {
	t, err := s.trailers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	// The audit row keeps a nullable reference, so it outlives the trailer.
	s.appendLog(ctx, t.ID, domain.EventDeleted,
		fmt.Sprintf("Trailer '%s' was deleted by %s.", t.Name, actor))

	return s.trailers.Delete(ctx, id)
}

func (s *Service) appendLog(ctx context.Context, trailerID int64, event domain.TrailerLogEvent, msg string) {
	id := trailerID
	err := s.audits.AppendTrailerLog(ctx, &domain.TrailerLog{
		TrailerID: &id,
		EventType: event,
		Message:   msg,
	})
	if err != nil {
		logger.Error("failed to append trailer log", "trailer_id", trailerID, "event", event, "error", err)
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	// sqlite in local development
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
