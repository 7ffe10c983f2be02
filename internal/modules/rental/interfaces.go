package rental

import (
	"context"
	"time"

	"fleetrental/internal/domain"
)

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	ListByCompany(ctx context.Context, companyID int64) ([]domain.Rental, error)
	ListAll(ctx context.Context) ([]domain.Rental, error)
	Delete(ctx context.Context, id int64) error
}

type AssignmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.RentalTrailer, error)
	CountOverlappingForTrailer(ctx context.Context, trailerID int64, start, end time.Time) (int64, error)
	CreateWithAudit(ctx context.Context, rt *domain.RentalTrailer, audit *domain.RentalHistory) error
	DeleteWithAudit(ctx context.Context, id int64, audit *domain.RentalHistory) error
}

type CompanyRepository interface {
	Create(ctx context.Context, c *domain.Company) error
	GetByID(ctx context.Context, id int64) (*domain.Company, error)
	List(ctx context.Context) ([]domain.Company, error)
	ListWithRentals(ctx context.Context) ([]domain.Company, error)
	Delete(ctx context.Context, id int64) error
}

type TrailerReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Trailer, error)
	ListAvailableForRange(ctx context.Context, excludeRentalID int64, start, end time.Time) ([]domain.Trailer, error)
}
