package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fleetrental/internal/domain"
)

type mockTrailerReader struct {
	mock.Mock
}

func (m *mockTrailerReader) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTrailerReader) CountByStatus(ctx context.Context, status domain.TrailerStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTrailerReader) ListWithCoordinates(ctx context.Context) ([]domain.Trailer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Trailer), args.Error(1)
}

type mockRentalReader struct {
	mock.Mock
}

func (m *mockRentalReader) StartDates(ctx context.Context) ([]time.Time, error) {
	args := m.Called(ctx)
	return args.Get(0).([]time.Time), args.Error(1)
}

type mockAssignmentReader struct {
	mock.Mock
}

func (m *mockAssignmentReader) DistinctTrailerIDs(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).([]int64), args.Error(1)
}

type mockStockCounter struct {
	mock.Mock
}

func (m *mockStockCounter) CountItemsBelow(ctx context.Context, threshold int) (int64, error) {
	args := m.Called(ctx, threshold)
	return args.Get(0).(int64), args.Error(1)
}

type mockUserCounter struct {
	mock.Mock
}

func (m *mockUserCounter) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func newTestService() (*Service, *mockTrailerReader, *mockRentalReader, *mockAssignmentReader, *mockStockCounter, *mockUserCounter) {
	trailers := new(mockTrailerReader)
	rentals := new(mockRentalReader)
	assignments := new(mockAssignmentReader)
	stock := new(mockStockCounter)
	users := new(mockUserCounter)
	svc := NewService(trailers, rentals, assignments, stock, users)
	svc.now = func() time.Time {
		return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	}
	return svc, trailers, rentals, assignments, stock, users
}

func TestSummary_RentedAndFreeSplit(t *testing.T) {
	svc, trailers, rentals, assignments, stock, users := newTestService()

	trailers.On("Count", mock.Anything).Return(int64(10), nil)
	trailers.On("CountByStatus", mock.Anything, domain.TrailerInactive).Return(int64(2), nil)
	assignments.On("DistinctTrailerIDs", mock.Anything).Return([]int64{1, 4, 7}, nil)
	stock.On("CountItemsBelow", mock.Anything, 5).Return(int64(1), nil)
	users.On("Count", mock.Anything).Return(int64(4), nil)
	rentals.On("StartDates", mock.Anything).Return([]time.Time{}, nil)

	summary, err := svc.Summary(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(10), summary.TotalTrailers)
	assert.Equal(t, int64(3), summary.RentedTrailers)
	assert.Equal(t, int64(7), summary.FreeTrailers)
	assert.Equal(t, int64(1), summary.LowStockItems)
}

func TestSummary_MonthlyBucketsSkipOtherYears(t *testing.T) {
	svc, trailers, rentals, assignments, stock, users := newTestService()

	trailers.On("Count", mock.Anything).Return(int64(0), nil)
	trailers.On("CountByStatus", mock.Anything, mock.Anything).Return(int64(0), nil)
	assignments.On("DistinctTrailerIDs", mock.Anything).Return([]int64{}, nil)
	stock.On("CountItemsBelow", mock.Anything, mock.Anything).Return(int64(0), nil)
	users.On("Count", mock.Anything).Return(int64(0), nil)
	rentals.On("StartDates", mock.Anything).Return([]time.Time{
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 11, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 3, 2, 0, 0, 0, 0, time.UTC),
	}, nil)

	summary, err := svc.Summary(context.Background())

	assert.NoError(t, err)
	assert.Len(t, summary.RentalsByMonth, 12)
	assert.Equal(t, MonthlyCount{Month: "Mar", Count: 2}, summary.RentalsByMonth[2])
	assert.Equal(t, MonthlyCount{Month: "Nov", Count: 1}, summary.RentalsByMonth[10])
	assert.Equal(t, 0, summary.RentalsByMonth[0].Count)
}

func TestMapMarkers_SkipsMissingCoordinates(t *testing.T) {
	svc, trailers, _, _, _, _ := newTestService()

	lat, lon := 52.23, 21.01
	trailers.On("ListWithCoordinates", mock.Anything).Return([]domain.Trailer{
		{ID: 1, Name: "T-100", Status: domain.TrailerActive, Latitude: &lat, Longitude: &lon},
		{ID: 2, Name: "T-200", Status: domain.TrailerActive, Latitude: &lat},
	}, nil)

	markers, err := svc.MapMarkers(context.Background())

	assert.NoError(t, err)
	assert.Len(t, markers, 1)
	assert.Equal(t, int64(1), markers[0].TrailerID)
	assert.Equal(t, 52.23, markers[0].Latitude)
}
