package dashboard

import (
	"context"
	"time"

	"fleetrental/internal/domain"
)

// Items with fewer pieces than this show up in the restock counter.
const lowStockThreshold = 5

type Service struct {
	trailers    TrailerReader
	rentals     RentalReader
	assignments AssignmentReader
	stock       StockCounter
	users       UserCounter
	now         func() time.Time
}

func NewService(trailers TrailerReader, rentals RentalReader, assignments AssignmentReader, stock StockCounter, users UserCounter) *Service {
	return &Service{
		trailers:    trailers,
		rentals:     rentals,
		assignments: assignments,
		stock:       stock,
		users:       users,
		now:         time.Now,
	}
}

type Summary struct {
	TotalTrailers    int64          `json:"total_trailers"`
	InactiveTrailers int64          `json:"inactive_trailers"`
	RentedTrailers   int64          `json:"rented_trailers"`
	FreeTrailers     int64          `json:"free_trailers"`
	LowStockItems    int64          `json:"low_stock_items"`
	TotalUsers       int64          `json:"total_users"`
	RentalsByMonth   []MonthlyCount `json:"rentals_by_month"`
}

type MonthlyCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type MapMarker struct {
	TrailerID int64                `json:"trailer_id"`
	Name      string               `json:"name"`
	Status    domain.TrailerStatus `json:"status"`
	Latitude  float64              `json:"latitude"`
	Longitude float64              `json:"longitude"`
}

func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	total, err := s.trailers.Count(ctx)
	if err != nil {
		return nil, err
	}
	inactive, err := s.trailers.CountByStatus(ctx, domain.TrailerInactive)
	if err != nil {
		return nil, err
	}
	rentedIDs, err := s.assignments.DistinctTrailerIDs(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.stock.CountItemsBelow(ctx, lowStockThreshold)
	if err != nil {
		return nil, err
	}
	userCount, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	byMonth, err := s.rentalsByMonth(ctx)
	if err != nil {
		return nil, err
	}

	rented := int64(len(rentedIDs))
	free := total - rented
	if free < 0 {
		free = 0
	}

	return &Summary{
		TotalTrailers:    total,
		InactiveTrailers: inactive,
		RentedTrailers:   rented,
		FreeTrailers:     free,
		LowStockItems:    lowStock,
		TotalUsers:       userCount,
		RentalsByMonth:   byMonth,
	}, nil
}

// rentalsByMonth buckets rental start dates into the twelve months of
// the current year. Bucketing happens here rather than in SQL so the
// query stays portable across drivers.
func (s *Service) rentalsByMonth(ctx context.Context) ([]MonthlyCount, error) {
	starts, err := s.rentals.StartDates(ctx)
	if err != nil {
		return nil, err
	}

	year := s.now().UTC().Year()
	counts := make([]int, 12)
	for _, start := range starts {
		start = start.UTC()
		if start.Year() != year {
			continue
		}
		counts[int(start.Month())-1]++
	}

	out := make([]MonthlyCount, 12)
	for i := range counts {
		out[i] = MonthlyCount{
			Month: time.Month(i + 1).String()[:3],
			Count: counts[i],
		}
	}
	return out, nil
}

// MapMarkers lists every trailer that has both coordinates set.
func (s *Service) MapMarkers(ctx context.Context) ([]MapMarker, error) {
	trailers, err := s.trailers.ListWithCoordinates(ctx)
	if err != nil {
		return nil, err
	}

	markers := make([]MapMarker, 0, len(trailers))
	for _, t := range trailers {
		if t.Latitude == nil || t.Longitude == nil {
			continue
		}
		markers = append(markers, MapMarker{
			TrailerID: t.ID,
			Name:      t.Name,
			Status:    t.Status,
			Latitude:  *t.Latitude,
			Longitude: *t.Longitude,
		})
	}
	return markers, nil
}
