// Package stream turns a raw agent event source into a safely drainable
// sequence. It absorbs two kinds of disruption: mid-stream failures from the
// source, and consumers that stop iterating before the source is exhausted.
package stream

import (
	"context"
	"errors"
	"io"
	"iter"
	"log/slog"
	"time"

	"roadtrip/internal/event"
)

// Source is a pull-based sequence of agent events. Recv returns io.EOF when
// the source is exhausted. Close releases the source's resources; it must be
// safe to call after Recv has returned an error.
type Source interface {
	Recv(ctx context.Context) (event.Event, error)
	Close(ctx context.Context) error
}

// closeTimeout bounds the shielded close so an unresponsive source cannot
// hold the caller forever once the surrounding context is gone.
const closeTimeout = 10 * time.Second

// Drain forwards every event from src in order. A mid-stream Recv failure
// is logged and ends the sequence cleanly; it never surfaces to the
// consumer. Whatever ends the iteration, src is closed exactly once, and
// that close is shielded: it runs under a context detached from ctx's
// cancellation, so the cancellation that made the consumer abandon the
// loop cannot also cancel the teardown. Close errors are swallowed.
func Drain(ctx context.Context, src Source) iter.Seq[event.Event] {
	return func(yield func(event.Event) bool) {
		defer shieldedClose(ctx, src)

		for {
			ev, err := src.Recv(ctx)
			if err != nil {
				if !errors.Is(err, io.EOF) {
					slog.Error("stream error", "error", err)
				}
				return
			}
			if !yield(ev) {
				return
			}
		}
	}
}

func shieldedClose(ctx context.Context, src Source) {
	// The source's teardown releases network connections asynchronously;
	// letting the outer cancellation reach it would race that teardown.
	closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), closeTimeout)
	defer cancel()

	if err := src.Close(closeCtx); err != nil {
		slog.Debug("stream close failed", "error", err)
	}
}
