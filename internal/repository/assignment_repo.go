package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"fleetrental/internal/domain"
)

// AssignmentRepository manages rental-trailer links and their paired
// rental history rows.
type AssignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

func (r *AssignmentRepository) GetByID(ctx context.Context, id int64) (*domain.RentalTrailer, error) {
	var rt domain.RentalTrailer
	err := r.db.WithContext(ctx).
		Preload("Rental").
		Preload("Trailer").
		First(&rt, id).Error
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

// CountOverlappingForTrailer counts assignments of the trailer to any
// rental whose inclusive date range intersects [start, end]. This is the
// authoritative collision guard; the caller rejects when it is nonzero.
func (r *AssignmentRepository) CountOverlappingForTrailer(ctx context.Context, trailerID int64, start, end time.Time) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.RentalTrailer{}).
		Joins("JOIN rentals ON rentals.id = rental_trailers.rental_id").
		Where("rental_trailers.trailer_id = ?", trailerID).
		Where("rentals.start_date <= ? AND rentals.end_date >= ?", end, start).
		Count(&cnt).Error
	return cnt, err
}

// CreateWithAudit inserts the link and its audit row in one transaction.
// Neither survives without the other.
func (r *AssignmentRepository) CreateWithAudit(ctx context.Context, rt *domain.RentalTrailer, audit *domain.RentalHistory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rt).Error; err != nil {
			return err
		}
		if err := tx.Create(audit).Error; err != nil {
			return err
		}
		return nil
	})
}

// DeleteWithAudit removes the link and appends its audit row atomically.
func (r *AssignmentRepository) DeleteWithAudit(ctx context.Context, id int64, audit *domain.RentalHistory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&domain.RentalTrailer{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Create(audit).Error; err != nil {
			return err
		}
		return nil
	})
}

// DeleteByTrailer drops every assignment of the trailer. Used when a
// trailer is pulled out of circulation for transport.
func (r *AssignmentRepository) DeleteByTrailer(ctx context.Context, trailerID int64) error {
	return r.db.WithContext(ctx).
		Where("trailer_id = ?", trailerID).
		Delete(&domain.RentalTrailer{}).Error
}

// DistinctTrailerIDs returns the ids of trailers with at least one
// assignment, for the rented/free dashboard split.
func (r *AssignmentRepository) DistinctTrailerIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&domain.RentalTrailer{}).
		Distinct("trailer_id").
		Pluck("trailer_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
