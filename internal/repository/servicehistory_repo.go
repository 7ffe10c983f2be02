package repository

import (
	"context"

	"gorm.io/gorm"

	"fleetrental/internal/domain"
)

type ServiceHistoryRepository struct {
	db *gorm.DB
}

func NewServiceHistoryRepository(db *gorm.DB) *ServiceHistoryRepository {
	return &ServiceHistoryRepository{db: db}
}

func (r *ServiceHistoryRepository) Create(ctx context.Context, sh *domain.ServiceHistory) error {
	return r.db.WithContext(ctx).Create(sh).Error
}

func (r *ServiceHistoryRepository) List(ctx context.Context) ([]domain.ServiceHistory, error) {
	var histories []domain.ServiceHistory
	err := r.db.WithContext(ctx).
		Preload("Trailer").
		Order("service_date DESC").
		Find(&histories).Error
	if err != nil {
		return nil, err
	}
	return histories, nil
}

func (r *ServiceHistoryRepository) ListByTrailer(ctx context.Context, trailerID int64) ([]domain.ServiceHistory, error) {
	var histories []domain.ServiceHistory
	err := r.db.WithContext(ctx).
		Where("trailer_id = ?", trailerID).
		Order("service_date DESC").
		Find(&histories).Error
	if err != nil {
		return nil, err
	}
	return histories, nil
}
