package domain

import (
	"math"
	"time"
)

type Company struct {
	ID    int64  `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"size:100;not null" validate:"required"`
	Email string `json:"email,omitempty" gorm:"size:255" validate:"omitempty,email"`
	Phone string `json:"phone,omitempty" gorm:"size:30"`

	Rentals []Rental `json:"rentals,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

func (Company) TableName() string { return "companies" }

// Rental is a lease of trailers to a company over an inclusive date range.
type Rental struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:255"`
	CompanyID    int64     `json:"company_id" gorm:"index;not null" validate:"required"`
	StartDate    time.Time `json:"start_date" gorm:"not null" validate:"required"`
	EndDate      time.Time `json:"end_date" gorm:"not null" validate:"required"`
	MonthlyPrice float64   `json:"monthly_price" validate:"required,gt=0"`
	Cost         float64   `json:"cost"`
	CreatedAt    time.Time `json:"created_at"`

	Company  *Company        `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	Trailers []RentalTrailer `json:"trailers,omitempty" gorm:"foreignKey:RentalID;constraint:OnDelete:CASCADE"`
}

func (Rental) TableName() string { return "rentals" }

// Days returns the number of rented days, both boundary dates counted.
func (r *Rental) Days() int {
	return int(r.EndDate.Sub(r.StartDate).Hours()/24) + 1
}

// DeriveCost recomputes the rental cost from the date range and monthly
// price. Called on every save so the stored value never goes stale.
func (r *Rental) DeriveCost() {
	dailyRate := r.MonthlyPrice / 30
	r.Cost = math.Round(float64(r.Days())*dailyRate*100) / 100
}

// Overlaps reports whether the two rentals share at least one day.
// Both bounds are inclusive: a rental ending on day X overlaps one
// starting on day X, so a trailer is never dispatched twice the same day.
func (r *Rental) Overlaps(start, end time.Time) bool {
	return !r.StartDate.After(end) && !r.EndDate.Before(start)
}

// RentalTrailer links one trailer to one rental.
type RentalTrailer struct {
	ID        int64 `json:"id" gorm:"primaryKey"`
	RentalID  int64 `json:"rental_id" gorm:"index;not null"`
	TrailerID int64 `json:"trailer_id" gorm:"index;not null"`

	Rental  *Rental  `json:"rental,omitempty" gorm:"foreignKey:RentalID"`
	Trailer *Trailer `json:"trailer,omitempty" gorm:"foreignKey:TrailerID;constraint:OnDelete:CASCADE"`
}

func (RentalTrailer) TableName() string { return "rental_trailers" }

// RentalHistory is the append-only audit trail for rental mutations.
type RentalHistory struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	RentalID    int64     `json:"rental_id" gorm:"index;not null"`
	Description string    `json:"description" gorm:"type:text"`
	UserID      *int64    `json:"user_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`

	Rental *Rental `json:"rental,omitempty" gorm:"foreignKey:RentalID;constraint:OnDelete:CASCADE"`
}

func (RentalHistory) TableName() string { return "rental_histories" }
