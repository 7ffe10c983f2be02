package monitor

import (
	"context"
	"fmt"
	"log/slog"

	"fleetrental/internal/domain"
	"fleetrental/internal/logger"
	"fleetrental/internal/modules/livefeed"
)

type TrailerStore interface {
	List(ctx context.Context) ([]domain.Trailer, error)
	UpdateStatus(ctx context.Context, id int64, status domain.TrailerStatus) error
}

type AuditWriter interface {
	AppendTrailerLog(ctx context.Context, log *domain.TrailerLog) error
}

type Broadcaster interface {
	Broadcast(event livefeed.Event)
}

// Monitor keeps trailer statuses in step with reachability. Trailers in
// maintenance are never touched; the service workflow owns that status.
type Monitor struct {
	trailers TrailerStore
	audit    AuditWriter
	prober   Prober
	feed     Broadcaster
	log      *slog.Logger
}

func New(trailers TrailerStore, audit AuditWriter, prober Prober, feed Broadcaster) *Monitor {
	return &Monitor{
		trailers: trailers,
		audit:    audit,
		prober:   prober,
		feed:     feed,
		log:      logger.WithComponent("monitor"),
	}
}

// Sweep probes every trailer once. A failure on one trailer never stops
// the rest of the sweep.
func (m *Monitor) Sweep(ctx context.Context) error {
	trailers, err := m.trailers.List(ctx)
	if err != nil {
		return fmt.Errorf("list trailers: %w", err)
	}

	var transitions int
	for _, t := range trailers {
		if t.Status == domain.TrailerMaintenance {
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if m.sweepOne(ctx, t) {
			transitions++
		}
	}

	m.log.Info("sweep finished", "trailers", len(trailers), "transitions", transitions)
	return nil
}

func (m *Monitor) sweepOne(ctx context.Context, t domain.Trailer) bool {
	newStatus := domain.TrailerActive
	probeErr := m.prober.Probe(ctx, t.IPAddress)
	if probeErr != nil {
		newStatus = domain.TrailerInactive
	}

	if newStatus == t.Status {
		return false
	}

	if err := m.trailers.UpdateStatus(ctx, t.ID, newStatus); err != nil {
		m.log.Error("status update failed", "trailer_id", t.ID, "error", err)
		return false
	}

	message := fmt.Sprintf("Trailer %s came online.", t.Name)
	if newStatus == domain.TrailerInactive {
		message = fmt.Sprintf("Trailer %s went offline: %v.", t.Name, probeErr)
	}

	trailerID := t.ID
	if err := m.audit.AppendTrailerLog(ctx, &domain.TrailerLog{
		TrailerID: &trailerID,
		EventType: domain.EventPing,
		Message:   message,
	}); err != nil {
		m.log.Error("audit append failed", "trailer_id", t.ID, "error", err)
	}

	m.feed.Broadcast(livefeed.Event{
		Type:      livefeed.EventStatusChanged,
		TrailerID: t.ID,
		Trailer:   t.Name,
		Status:    newStatus,
		Message:   message,
	})

	m.log.Info("trailer status changed",
		"trailer_id", t.ID,
		"from", t.Status,
		"to", newStatus,
	)
	return true
}
