package reports

import (
	"bytes"
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

func (m *mockTrailerReader) List(ctx context.Context) ([]domain.Trailer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Trailer), args.Error(1)
}

type mockRentalReader struct {
	mock.Mock
}

func (m *mockRentalReader) ListAll(ctx context.Context) ([]domain.Rental, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Rental), args.Error(1)
}

type mockStockReader struct {
	mock.Mock
}

func (m *mockStockReader) ListItems(ctx context.Context) ([]domain.WarehouseItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.WarehouseItem), args.Error(1)
}

type mockServiceHistoryReader struct {
	mock.Mock
}

func (m *mockServiceHistoryReader) List(ctx context.Context) ([]domain.ServiceHistory, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ServiceHistory), args.Error(1)
}

func TestFleetReport_ProducesPDF(t *testing.T) {
	trailers := new(mockTrailerReader)
	rentals := new(mockRentalReader)
	stock := new(mockStockReader)
	services := new(mockServiceHistoryReader)

	trailers.On("List", mock.Anything).Return([]domain.Trailer{
		{ID: 1, Name: "T-100", SerialNumber: "SN-1", RegistrationNumber: "WX 1234", IPAddress: "10.0.0.1", Status: domain.TrailerActive},
	}, nil)
	rentals.On("ListAll", mock.Anything).Return([]domain.Rental{
		{
			ID:        1,
			Name:      "Spring lease",
			CompanyID: 2,
			StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			Cost:      100,
		},
	}, nil)
	stock.On("ListItems", mock.Anything).Return([]domain.WarehouseItem{
		{ID: 1, Name: "Brake pads", Quantity: 8, DateState: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
	}, nil)
	services.On("List", mock.Anything).Return([]domain.ServiceHistory{}, nil)

	svc := NewService(trailers, rentals, stock, services)

	var buf bytes.Buffer
	err := svc.FleetReport(context.Background(), &buf)

	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestFleetReport_PropagatesLoadErrors(t *testing.T) {
	trailers := new(mockTrailerReader)
	rentals := new(mockRentalReader)
	stock := new(mockStockReader)
	services := new(mockServiceHistoryReader)

	trailers.On("List", mock.Anything).Return([]domain.Trailer(nil), assert.AnError)

	svc := NewService(trailers, rentals, stock, services)

	var buf bytes.Buffer
	err := svc.FleetReport(context.Background(), &buf)

	assert.Error(t, err)
	assert.Zero(t, buf.Len())
	rentals.AssertNotCalled(t, "ListAll")
}
