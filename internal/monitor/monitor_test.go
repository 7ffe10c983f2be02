package monitor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fleetrental/internal/domain"
	"fleetrental/internal/modules/livefeed"
)

type mockTrailerStore struct {
	mock.Mock
}

func (m *mockTrailerStore) List(ctx context.Context) ([]domain.Trailer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Trailer), args.Error(1)
}

func (m *mockTrailerStore) UpdateStatus(ctx context.Context, id int64, status domain.TrailerStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type mockAuditWriter struct {
	mock.Mock
}

func (m *mockAuditWriter) AppendTrailerLog(ctx context.Context, log *domain.TrailerLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

type mockBroadcaster struct {
	mock.Mock
}

func (m *mockBroadcaster) Broadcast(event livefeed.Event) {
	m.Called(event)
}

type stubProber struct {
	down map[string]error
}

func (p *stubProber) Probe(_ context.Context, ip string) error {
	if err, ok := p.down[ip]; ok {
		return err
	}
	return nil
}

func newTestMonitor(prober Prober) (*Monitor, *mockTrailerStore, *mockAuditWriter, *mockBroadcaster) {
	trailers := new(mockTrailerStore)
	audit := new(mockAuditWriter)
	feed := new(mockBroadcaster)
	return New(trailers, audit, prober, feed), trailers, audit, feed
}

func TestSweep_UnreachableTrailerGoesInactive(t *testing.T) {
	prober := &stubProber{down: map[string]error{"10.0.0.1": errors.New("connection refused")}}
	mon, trailers, audit, feed := newTestMonitor(prober)

	trailers.On("List", mock.Anything).Return([]domain.Trailer{
		{ID: 1, Name: "T-100", IPAddress: "10.0.0.1", Status: domain.TrailerActive},
	}, nil)
	trailers.On("UpdateStatus", mock.Anything, int64(1), domain.TrailerInactive).Return(nil)
	audit.On("AppendTrailerLog", mock.Anything, mock.Anything).Return(nil)
	feed.On("Broadcast", mock.Anything).Return()

	err := mon.Sweep(context.Background())

	assert.NoError(t, err)
	trailers.AssertExpectations(t)

	log := audit.Calls[0].Arguments.Get(1).(*domain.TrailerLog)
	assert.Equal(t, domain.EventPing, log.EventType)
	assert.Contains(t, log.Message, "went offline")

	event := feed.Calls[0].Arguments.Get(0).(livefeed.Event)
	assert.Equal(t, livefeed.EventStatusChanged, event.Type)
	assert.Equal(t, domain.TrailerInactive, event.Status)
}

func TestSweep_ReachableTrailerComesBackOnline(t *testing.T) {
	mon, trailers, audit, feed := newTestMonitor(&stubProber{})

	trailers.On("List", mock.Anything).Return([]domain.Trailer{
		{ID: 2, Name: "T-200", IPAddress: "10.0.0.2", Status: domain.TrailerInactive},
	}, nil)
	trailers.On("UpdateStatus", mock.Anything, int64(2), domain.TrailerActive).Return(nil)
	audit.On("AppendTrailerLog", mock.Anything, mock.Anything).Return(nil)
	feed.On("Broadcast", mock.Anything).Return()

	err := mon.Sweep(context.Background())

	assert.NoError(t, err)
	trailers.AssertExpectations(t)

	log := audit.Calls[0].Arguments.Get(1).(*domain.TrailerLog)
	assert.Contains(t, log.Message, "came online")
}

func TestSweep_MaintenanceTrailerIsNeverProbed(t *testing.T) {
	prober := &stubProber{down: map[string]error{"10.0.0.3": errors.New("timeout")}}
	mon, trailers, audit, feed := newTestMonitor(prober)

	trailers.On("List", mock.Anything).Return([]domain.Trailer{
		{ID: 3, Name: "T-300", IPAddress: "10.0.0.3", Status: domain.TrailerMaintenance},
	}, nil)

	err := mon.Sweep(context.Background())

	assert.NoError(t, err)
	trailers.AssertNotCalled(t, "UpdateStatus")
	audit.AssertNotCalled(t, "AppendTrailerLog")
	feed.AssertNotCalled(t, "Broadcast")
}

func TestSweep_UnchangedStatusWritesNothing(t *testing.T) {
	mon, trailers, audit, feed := newTestMonitor(&stubProber{})

	trailers.On("List", mock.Anything).Return([]domain.Trailer{
		{ID: 4, Name: "T-400", IPAddress: "10.0.0.4", Status: domain.TrailerActive},
	}, nil)

	err := mon.Sweep(context.Background())

	assert.NoError(t, err)
	trailers.AssertNotCalled(t, "UpdateStatus")
	audit.AssertNotCalled(t, "AppendTrailerLog")
	feed.AssertNotCalled(t, "Broadcast")
}

func TestSweep_OneFailureDoesNotStopTheRest(t *testing.T) {
	prober := &stubProber{down: map[string]error{
		"10.0.0.1": errors.New("refused"),
		"10.0.0.2": errors.New("refused"),
	}}
	mon, trailers, audit, feed := newTestMonitor(prober)

	trailers.On("List", mock.Anything).Return([]domain.Trailer{
		{ID: 1, Name: "T-100", IPAddress: "10.0.0.1", Status: domain.TrailerActive},
		{ID: 2, Name: "T-200", IPAddress: "10.0.0.2", Status: domain.TrailerActive},
	}, nil)
	trailers.On("UpdateStatus", mock.Anything, int64(1), domain.TrailerInactive).Return(errors.New("db gone"))
	trailers.On("UpdateStatus", mock.Anything, int64(2), domain.TrailerInactive).Return(nil)
	audit.On("AppendTrailerLog", mock.Anything, mock.Anything).Return(nil)
	feed.On("Broadcast", mock.Anything).Return()

	err := mon.Sweep(context.Background())

	assert.NoError(t, err)
	trailers.AssertExpectations(t)
	audit.AssertNumberOfCalls(t, "AppendTrailerLog", 1)
	feed.AssertNumberOfCalls(t, "Broadcast", 1)
}
