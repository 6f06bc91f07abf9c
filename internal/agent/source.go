package agent

import (
	"context"
	"io"

	"roadtrip/internal/event"
)

// runSource adapts one in-flight agent run to the stream.Source contract.
// The producing goroutine sends events until the run finishes, then parks
// its terminal error (if any) and closes the channel.
type runSource struct {
	events chan event.Event
	errCh  chan error
	cancel context.CancelFunc
	done   chan struct{}
}

func newRunSource(cancel context.CancelFunc) *runSource {
	return &runSource{
		events: make(chan event.Event),
		errCh:  make(chan error, 1),
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

// emit delivers one event to the consumer. Returns false once the run
// context is gone, so the producer can stop early.
func (s *runSource) emit(ctx context.Context, ev event.Event) bool {
	select {
	case s.events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

// finish records the terminal state and releases the consumer. Called
// exactly once by the producer.
func (s *runSource) finish(err error) {
	if err != nil {
		s.errCh <- err
	}
	close(s.events)
	close(s.done)
}

func (s *runSource) Recv(ctx context.Context) (event.Event, error) {
	select {
	case ev, ok := <-s.events:
		if !ok {
			select {
			case err := <-s.errCh:
				return event.Event{}, err
			default:
				return event.Event{}, io.EOF
			}
		}
		return ev, nil
	case <-ctx.Done():
		return event.Event{}, ctx.Err()
	}
}

// Close stops the run and waits for the producer to wind down. The wait
// respects ctx so a shielded close with a deadline cannot hang forever.
func (s *runSource) Close(ctx context.Context) error {
	s.cancel()
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
