package rental

import "fleetrental/internal/domain"

type CreateCompanyRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone"`
}

type CreateRentalRequest struct {
	Name         string  `json:"name"`
	CompanyID    int64   `json:"company_id" binding:"required"`
	StartDate    string  `json:"start_date" binding:"required"`
	EndDate      string  `json:"end_date" binding:"required"`
	MonthlyPrice float64 `json:"monthly_price" binding:"required,gt=0"`
}

type AssignTrailerRequest struct {
	TrailerID int64 `json:"trailer_id" binding:"required"`
}

// CompanySummary carries per-company rental aggregates for list views.
type CompanySummary struct {
	Company      domain.Company `json:"company"`
	TotalRentals int            `json:"total_rentals"`
	TotalIncome  float64        `json:"total_income"`
}

// RentalDetail pairs a rental with the trailers still free to assign
// to it. The available set is an optimistic hint; AssignTrailer re-runs
// the collision check before committing.
type RentalDetail struct {
	Rental            domain.Rental    `json:"rental"`
	AvailableTrailers []domain.Trailer `json:"available_trailers"`
}

type CompanyDetail struct {
	Company domain.Company `json:"company"`
	Rentals []RentalDetail `json:"rentals"`
}
