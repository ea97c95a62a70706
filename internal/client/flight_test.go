package client

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/flight"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/23skdu/arrayfire-go/af"
	"github.com/23skdu/arrayfire-go/internal/arrowio"
)

type mockFlightServer struct {
	flight.BaseFlightServer
	mu      sync.Mutex
	paths   [][]string
	records []arrow.RecordBatch
}

func (s *mockFlightServer) DoPut(server flight.FlightService_DoPutServer) error {
	reader, err := flight.NewRecordReader(server)
	if err != nil {
		return err
	}
	defer reader.Release()

	s.mu.Lock()
	defer s.mu.Unlock()
	if desc := reader.LatestFlightDescriptor(); desc != nil {
		s.paths = append(s.paths, desc.Path)
	}
	for reader.Next() {
		rec := reader.Record()
		rec.Retain()
		s.records = append(s.records, rec)
	}
	return reader.Err()
}

func (s *mockFlightServer) release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.records {
		r.Release()
	}
}

func newArray(t *testing.T) *af.Array {
	t.Helper()
	a, err := af.NewArray([]float32{1, 2, 3, 4, 5, 6}, af.NewDim4(3, 2))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Release() })
	return a
}

func TestFlightClient_DoPut(t *testing.T) {
	srv := &mockFlightServer{}
	server := flight.NewServerWithMiddleware(nil)
	server.RegisterFlightService(srv)
	require.NoError(t, server.Init("localhost:0"))
	go func() { _ = server.Serve() }()
	defer server.Shutdown()
	defer srv.release()

	c, err := NewFlightClient(server.Addr().String())
	require.NoError(t, err)
	p := NewPusher(c, nil, "arrays")
	defer p.Close()

	require.NoError(t, p.Push(context.Background(), "m", newArray(t)))

	srv.mu.Lock()
	defer srv.mu.Unlock()
	require.Len(t, srv.records, 1)
	assert.Equal(t, [][]string{{"arrays"}}, srv.paths)

	back, err := arrowio.Array(srv.records[0])
	require.NoError(t, err)
	defer back.Release()
	got, err := af.Host[float32](back)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, got)
}

type mockFlightClient struct {
	mock.Mock
}

func (m *mockFlightClient) DoPut(ctx context.Context, dataset string, record arrow.RecordBatch) error {
	return m.Called(ctx, dataset, record).Error(0)
}

func (m *mockFlightClient) Close() error {
	return m.Called().Error(0)
}

func TestPusher(t *testing.T) {
	ctx := context.Background()

	t.Run("Metadata", func(t *testing.T) {
		m := &mockFlightClient{}
		m.On("DoPut", ctx, "ds", mock.MatchedBy(func(r arrow.RecordBatch) bool {
			name, typ, dims, err := arrowio.Describe(r.Schema())
			return err == nil && name == "weights" && typ == af.F32 && dims == af.NewDim4(3, 2)
		})).Return(nil).Once()
		m.On("Close").Return(nil)

		p := NewPusher(m, nil, "ds")
		require.NoError(t, p.Push(ctx, "weights", newArray(t)))
		require.NoError(t, p.Close())
		m.AssertExpectations(t)
	})

	t.Run("BreakerOpens", func(t *testing.T) {
		boom := errors.New("unavailable")
		m := &mockFlightClient{}
		m.On("DoPut", ctx, "ds", mock.Anything).Return(boom).Twice()

		cb, _ := newTestBreaker(2)
		p := NewPusher(m, cb, "ds")
		a := newArray(t)
		assert.ErrorIs(t, p.Push(ctx, "x", a), boom)
		assert.ErrorIs(t, p.Push(ctx, "x", a), boom)
		assert.ErrorIs(t, p.Push(ctx, "x", a), ErrCircuitOpen)
		m.AssertNumberOfCalls(t, "DoPut", 2)
	})

	t.Run("Released", func(t *testing.T) {
		m := &mockFlightClient{}
		a, err := af.NewArray([]float32{1}, af.NewDim4(1))
		require.NoError(t, err)
		require.NoError(t, a.Release())

		p := NewPusher(m, nil, "ds")
		assert.ErrorIs(t, p.Push(ctx, "x", a), af.ErrReleased)
		m.AssertNotCalled(t, "DoPut", mock.Anything, mock.Anything, mock.Anything)
	})
}
