package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/23skdu/arrayfire-go/af"
	"github.com/23skdu/arrayfire-go/internal/arrowio"
)

// arrayPusher is the part of client.Pusher the CLI uses.
type arrayPusher interface {
	Push(ctx context.Context, name string, a *af.Array) error
}

// writeOutput writes a as a one-record Arrow IPC stream to path, or to
// stdout when path is "-".
func writeOutput(path, name string, a *af.Array) error {
	var w io.Writer = os.Stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer func() {
			if err := f.Close(); err != nil {
				log.Warn().Err(err).Str("path", path).Msg("Failed to close output")
			}
		}()
		w = f
	}
	if err := arrowio.NewConverter(nil).WriteStream(w, name, a); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	log.Info().Str("path", path).Str("name", name).Msg("Wrote Arrow stream")
	return nil
}

func push(ctx context.Context, p arrayPusher, name string, a *af.Array) error {
	ctx, span := tracer.Start(ctx, "push")
	defer span.End()
	if err := p.Push(ctx, name, a); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}
