package repository

import (
	"context"

	"gorm.io/gorm"

	"fleetrental/internal/domain"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(ctx context.Context, c *domain.Company) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CompanyRepository) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	var c domain.Company
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CompanyRepository) List(ctx context.Context) ([]domain.Company, error) {
	var companies []domain.Company
	if err := r.db.WithContext(ctx).Order("name").Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

// ListWithRentals preloads each company's rentals for aggregate views.
func (r *CompanyRepository) ListWithRentals(ctx context.Context) ([]domain.Company, error) {
	var companies []domain.Company
	err := r.db.WithContext(ctx).
		Preload("Rentals").
		Order("name").
		Find(&companies).Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}

// Delete removes the company; rentals, assignments and history cascade.
func (r *CompanyRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Company{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
