package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"fleetrental/internal/domain"
)

type RentalRepository struct {
	db *gorm.DB
}

func NewRentalRepository(db *gorm.DB) *RentalRepository {
	return &RentalRepository{db: db}
}

func (r *RentalRepository) Create(ctx context.Context, rental *domain.Rental) error {
	return r.db.WithContext(ctx).Create(rental).Error
}

func (r *RentalRepository) Save(ctx context.Context, rental *domain.Rental) error {
	return r.db.WithContext(ctx).Save(rental).Error
}

func (r *RentalRepository) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	var rental domain.Rental
	if err := r.db.WithContext(ctx).First(&rental, id).Error; err != nil {
		return nil, err
	}
	return &rental, nil
}

func (r *RentalRepository) ListByCompany(ctx context.Context, companyID int64) ([]domain.Rental, error) {
	var rentals []domain.Rental
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Preload("Trailers.Trailer").
		Order("start_date").
		Find(&rentals).Error
	if err != nil {
		return nil, err
	}
	return rentals, nil
}

func (r *RentalRepository) ListAll(ctx context.Context) ([]domain.Rental, error) {
	var rentals []domain.Rental
	err := r.db.WithContext(ctx).
		Preload("Company").
		Preload("Trailers.Trailer").
		Order("start_date").
		Find(&rentals).Error
	if err != nil {
		return nil, err
	}
	return rentals, nil
}

func (r *RentalRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Rental{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// StartDates returns every rental start date, for monthly bucketing.
func (r *RentalRepository) StartDates(ctx context.Context) ([]time.Time, error) {
	var dates []time.Time
	err := r.db.WithContext(ctx).
		Model(&domain.Rental{}).
		Order("start_date").
		Pluck("start_date", &dates).Error
	if err != nil {
		return nil, err
	}
	return dates, nil
}
