package repository

import (
	"context"

	"gorm.io/gorm"

	"fleetrental/internal/domain"
)

// AuditRepository appends and reads the append-only log tables. Rows are
// never updated or deleted here; they only go away when their parent
// entity cascades.
type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) AppendTrailerLog(ctx context.Context, log *domain.TrailerLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *AuditRepository) ListTrailerLogs(ctx context.Context, eventType domain.TrailerLogEvent) ([]domain.TrailerLog, error) {
	q := r.db.WithContext(ctx).Model(&domain.TrailerLog{})
	if eventType != "" {
		q = q.Where("event_type = ?", eventType)
	}

	var logs []domain.TrailerLog
	if err := q.Order("timestamp DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *AuditRepository) ListTrailerLogsByTrailer(ctx context.Context, trailerID int64) ([]domain.TrailerLog, error) {
	var logs []domain.TrailerLog
	err := r.db.WithContext(ctx).
		Where("trailer_id = ?", trailerID).
		Order("timestamp DESC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// TrailerLogEventTypes returns the distinct event kinds present, for the
// log screen's filter dropdown.
func (r *AuditRepository) TrailerLogEventTypes(ctx context.Context) ([]string, error) {
	var types []string
	err := r.db.WithContext(ctx).
		Model(&domain.TrailerLog{}).
		Distinct("event_type").
		Pluck("event_type", &types).Error
	if err != nil {
		return nil, err
	}
	return types, nil
}

func (r *AuditRepository) ListRentalHistory(ctx context.Context, rentalID int64) ([]domain.RentalHistory, error) {
	q := r.db.WithContext(ctx).Model(&domain.RentalHistory{})
	if rentalID != 0 {
		q = q.Where("rental_id = ?", rentalID)
	}

	var history []domain.RentalHistory
	if err := q.Order("created_at DESC").Find(&history).Error; err != nil {
		return nil, err
	}
	return history, nil
}
