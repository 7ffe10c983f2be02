package rental

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"fleetrental/internal/domain"
)

const dateLayout = "2006-01-02"

// Service implements rental management and the trailer availability
// engine: which trailers are free for a date range, and the collision
// guard that prevents double-booking.
type Service struct {
	rentals     RentalRepository
	assignments AssignmentRepository
	companies   CompanyRepository
	trailers    TrailerReader
}

func NewService(
	rentals RentalRepository,
	assignments AssignmentRepository,
	companies CompanyRepository,
	trailers TrailerReader,
) *Service {
	return &Service{
		rentals:     rentals,
		assignments: assignments,
		companies:   companies,
		trailers:    trailers,
	}
}

/* ---------- companies ---------- */

func (s *Service) CreateCompany(ctx context.Context, req CreateCompanyRequest) (*domain.Company, error) {
	company := &domain.Company{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	if err := s.companies.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// ListCompanies returns every company with its rental count and the sum
// of derived rental costs.
func (s *Service) ListCompanies(ctx context.Context) ([]CompanySummary, error) {
	companies, err := s.companies.ListWithRentals(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]CompanySummary, 0, len(companies))
	for _, c := range companies {
		var total float64
		for _, r := range c.Rentals {
			total += r.Cost
		}
		summary := CompanySummary{
			Company:      c,
			TotalRentals: len(c.Rentals),
			TotalIncome:  total,
		}
		summary.Company.Rentals = nil
		out = append(out, summary)
	}
	return out, nil
}

func (s *Service) DeleteCompany(ctx context.Context, id int64) error {
	if err := s.companies.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// CompanyRentDetail returns the company's rentals, each with the
// trailers currently free for its date range.
func (s *Service) CompanyRentDetail(ctx context.Context, companyID int64) (*CompanyDetail, error) {
	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rentals, err := s.rentals.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	detail := &CompanyDetail{Company: *company, Rentals: make([]RentalDetail, 0, len(rentals))}
	for _, r := range rentals {
		available, err := s.trailers.ListAvailableForRange(ctx, r.ID, r.StartDate, r.EndDate)
		if err != nil {
			return nil, err
		}
		detail.Rentals = append(detail.Rentals, RentalDetail{Rental: r, AvailableTrailers: available})
	}
	return detail, nil
}

/* ---------- rentals ---------- */

func (s *Service) CreateRental(ctx context.Context, req CreateRentalRequest) (*domain.Rental, error) {
	start, err := parseDate(req.StartDate)
	if err != nil {
		return nil, ErrValidation
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return nil, ErrValidation
	}
	if end.Before(start) {
		return nil, ErrValidation
	}

	if _, err := s.companies.GetByID(ctx, req.CompanyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rental := &domain.Rental{
		Name:         req.Name,
		CompanyID:    req.CompanyID,
		StartDate:    start,
		EndDate:      end,
		MonthlyPrice: req.MonthlyPrice,
	}
	rental.DeriveCost()

	if err := s.rentals.Create(ctx, rental); err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *Service) ListRentals(ctx context.Context) ([]domain.Rental, error) {
	return s.rentals.ListAll(ctx)
}

func (s *Service) DeleteRental(ctx context.Context, id int64) error {
	if err := s.rentals.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

/* ---------- availability engine ---------- */

// FindAvailableTrailers returns the trailers not committed to any rental
// overlapping the given rental's date range. Pure read; the result is a
// hint for callers and is re-validated by AssignTrailer.
func (s *Service) FindAvailableTrailers(ctx context.Context, rentalID int64) ([]domain.Trailer, error) {
	rental, err := s.rentals.GetByID(ctx, rentalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.trailers.ListAvailableForRange(ctx, rental.ID, rental.StartDate, rental.EndDate)
}

// AssignTrailer links the trailer to the rental after re-running the
// collision check, and writes the audit row in the same transaction.
func (s *Service) AssignTrailer(ctx context.Context, rentalID, trailerID int64, actorID int64) (*domain.RentalTrailer, error) {
	rental, err := s.rentals.GetByID(ctx, rentalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	trailer, err := s.trailers.GetByID(ctx, trailerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// Authoritative guard. Both bounds inclusive: a rental ending on
	// day X collides with one starting on day X.
	cnt, err := s.assignments.CountOverlappingForTrailer(ctx, trailerID, rental.StartDate, rental.EndDate)
	if err != nil {
		return nil, err
	}
	if cnt > 0 {
		return nil, ErrConflict
	}

	rt := &domain.RentalTrailer{
		RentalID:  rental.ID,
		TrailerID: trailer.ID,
	}
	audit := &domain.RentalHistory{
		RentalID:    rental.ID,
		Description: fmt.Sprintf("Trailer %s was added to the rental.", trailer.Name),
		UserID:      actorRef(actorID),
	}

	if err := s.assignments.CreateWithAudit(ctx, rt, audit); err != nil {
		return nil, err
	}
	return rt, nil
}

// UnassignTrailer removes the link and writes the audit row atomically.
func (s *Service) UnassignTrailer(ctx context.Context, rentalTrailerID int64, actorID int64) error {
	rt, err := s.assignments.GetByID(ctx, rentalTrailerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	name := fmt.Sprintf("#%d", rt.TrailerID)
	if rt.Trailer != nil {
		name = rt.Trailer.Name
	}

	audit := &domain.RentalHistory{
		RentalID:    rt.RentalID,
		Description: fmt.Sprintf("Trailer %s was removed from the rental.", name),
		UserID:      actorRef(actorID),
	}

	if err := s.assignments.DeleteWithAudit(ctx, rt.ID, audit); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), nil
}

func actorRef(id int64) *int64 {
	if id == 0 {
		return nil
	}
	return &id
}
