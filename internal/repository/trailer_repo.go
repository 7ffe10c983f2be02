package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"fleetrental/internal/domain"
)

type TrailerRepository struct {
	db *gorm.DB
}

func NewTrailerRepository(db *gorm.DB) *TrailerRepository {
	return &TrailerRepository{db: db}
}

func (r *TrailerRepository) Create(ctx context.Context, t *domain.Trailer) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TrailerRepository) GetByID(ctx context.Context, id int64) (*domain.Trailer, error) {
	var t domain.Trailer
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TrailerRepository) List(ctx context.Context) ([]domain.Trailer, error) {
	var trailers []domain.Trailer
	if err := r.db.WithContext(ctx).Order("name").Find(&trailers).Error; err != nil {
		return nil, err
	}
	return trailers, nil
}

func (r *TrailerRepository) Update(ctx context.Context, t *domain.Trailer) error {
	return r.db.WithContext(ctx).Save(t).Error
}

// UpdateFields applies a partial update without touching other columns.
func (r *TrailerRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	tx := r.db.WithContext(ctx).Model(&domain.Trailer{}).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TrailerRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Trailer{}, id).Error
}

func (r *TrailerRepository) UpdateStatus(ctx context.Context, id int64, status domain.TrailerStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.Trailer{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *TrailerRepository) CountByStatus(ctx context.Context, status domain.TrailerStatus) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.Trailer{}).
		Where("status = ?", status).
		Count(&cnt).Error
	return cnt, err
}

func (r *TrailerRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Trailer{}).Count(&cnt).Error
	return cnt, err
}

func (r *TrailerRepository) ListByStatus(ctx context.Context, status domain.TrailerStatus) ([]domain.Trailer, error) {
	var trailers []domain.Trailer
	err := r.db.WithContext(ctx).Where("status = ?", status).Order("name").Find(&trailers).Error
	if err != nil {
		return nil, err
	}
	return trailers, nil
}

// ListWithCoordinates returns trailers that have a known position.
func (r *TrailerRepository) ListWithCoordinates(ctx context.Context) ([]domain.Trailer, error) {
	var trailers []domain.Trailer
	err := r.db.WithContext(ctx).
		Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Find(&trailers).Error
	if err != nil {
		return nil, err
	}
	return trailers, nil
}

// ListAvailableForRange returns trailers not assigned to any rental whose
// date range intersects [start, end], both bounds inclusive. The rental
// being edited is excluded so its own assignments never count against it.
func (r *TrailerRepository) ListAvailableForRange(ctx context.Context, excludeRentalID int64, start, end time.Time) ([]domain.Trailer, error) {
	sub := r.db.
		Model(&domain.RentalTrailer{}).
		Select("rental_trailers.trailer_id").
		Joins("JOIN rentals ON rentals.id = rental_trailers.rental_id").
		Where("rentals.id <> ?", excludeRentalID).
		Where("rentals.start_date <= ? AND rentals.end_date >= ?", end, start)

	var trailers []domain.Trailer
	err := r.db.WithContext(ctx).
		Where("id NOT IN (?)", sub).
		Order("name").
		Find(&trailers).Error
	if err != nil {
		return nil, err
	}
	return trailers, nil
}
