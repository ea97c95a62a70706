package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/flight"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/23skdu/arrayfire-go/af"
	"github.com/23skdu/arrayfire-go/internal/arrowio"
)

// FlightClientInterface is the part of a Flight client the Pusher needs.
type FlightClientInterface interface {
	DoPut(ctx context.Context, dataset string, record arrow.RecordBatch) error
	Close() error
}

// FlightClient sends array records to an Arrow Flight endpoint.
type FlightClient struct {
	client flight.Client
	conn   *grpc.ClientConn
}

// NewFlightClient creates a Flight client for addr.
func NewFlightClient(addr string) (*FlightClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return &FlightClient{
		client: flight.NewClientFromConn(conn, nil),
		conn:   conn,
	}, nil
}

// DoPut streams record to the dataset path on the server.
func (c *FlightClient) DoPut(ctx context.Context, dataset string, record arrow.RecordBatch) error {
	stream, err := c.client.DoPut(ctx)
	if err != nil {
		return err
	}

	writer := flight.NewRecordWriter(stream)
	writer.SetFlightDescriptor(&flight.FlightDescriptor{
		Type: flight.DescriptorPATH,
		Path: []string{dataset},
	})
	if err := writer.Write(record); err != nil {
		_ = writer.Close()
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}
	if err := stream.CloseSend(); err != nil {
		return err
	}
	// drain put results; the call status arrives with the final Recv
	for {
		if _, err := stream.Recv(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// Close closes the connection.
func (c *FlightClient) Close() error {
	return c.conn.Close()
}

// Pusher converts arrays to Arrow records and sends them through a
// CircuitBreaker to a Flight dataset.
type Pusher struct {
	client  FlightClientInterface
	breaker *CircuitBreaker
	conv    *arrowio.Converter
	dataset string
}

// NewPusher returns a Pusher writing to dataset. A nil breaker never opens.
func NewPusher(c FlightClientInterface, cb *CircuitBreaker, dataset string) *Pusher {
	return &Pusher{client: c, breaker: cb, conv: arrowio.NewConverter(nil), dataset: dataset}
}

// Push sends a under name. It returns ErrCircuitOpen without contacting the
// server while the breaker is open.
func (p *Pusher) Push(ctx context.Context, name string, a *af.Array) error {
	rec, err := p.conv.Record(name, a)
	if err != nil {
		pushTotal.WithLabelValues("invalid").Inc()
		return fmt.Errorf("client: convert %s: %w", name, err)
	}
	defer rec.Release()

	put := func() error { return p.client.DoPut(ctx, p.dataset, rec) }
	if p.breaker != nil {
		err = p.breaker.Execute(put)
	} else {
		err = put()
	}
	switch {
	case err == nil:
		pushTotal.WithLabelValues("ok").Inc()
		if n, t, derr := size(a); derr == nil {
			pushBytes.Add(float64(n * int64(t.Size())))
		}
		log.Debug().Str("dataset", p.dataset).Str("name", name).Msg("array pushed")
		return nil
	case errors.Is(err, ErrCircuitOpen):
		pushTotal.WithLabelValues("rejected").Inc()
		return err
	default:
		pushTotal.WithLabelValues("error").Inc()
		log.Warn().Err(err).Str("dataset", p.dataset).Str("name", name).Msg("push failed")
		return fmt.Errorf("client: push %s: %w", name, err)
	}
}

// Close closes the underlying client.
func (p *Pusher) Close() error {
	return p.client.Close()
}

func size(a *af.Array) (int64, af.DType, error) {
	n, err := a.Elements()
	if err != nil {
		return 0, 0, err
	}
	t, err := a.Type()
	return n, t, err
}
